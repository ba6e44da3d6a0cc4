// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/business-service/internal/authorization"
	"github.com/canonical/business-service/internal/config"
	"github.com/canonical/business-service/internal/db"
	httptypes "github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring/prometheus"
	"github.com/canonical/business-service/internal/notifier"
	"github.com/canonical/business-service/internal/password"
	"github.com/canonical/business-service/internal/session"
	"github.com/canonical/business-service/internal/storage"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/pkg/account"
	"github.com/canonical/business-service/pkg/authentication"
	"github.com/canonical/business-service/pkg/business"
	"github.com/canonical/business-service/pkg/hierarchy"
	"github.com/canonical/business-service/pkg/membership"
	"github.com/canonical/business-service/pkg/status"
	"github.com/canonical/business-service/pkg/users"
	"github.com/canonical/business-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("business-service", nil, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	redisClient, err := session.NewRedisClient(ctx, specs.RedisURL)
	if err != nil {
		return err
	}

	sessionStore := session.NewRedisStore(redisClient, tracer, monitor, logger)
	defer sessionStore.Close()

	sessions := session.NewManager(
		sessionStore,
		session.Config{
			CookieName: specs.SessionCookieName,
			Secure:     specs.SessionCookieSecure,
			Lifetime:   specs.SessionLifetime,
		},
		tracer, monitor, logger,
	)

	var notify notifier.NotifierInterface
	if specs.NotifierURL != "" {
		notify = notifier.NewWebhookNotifier(specs.NotifierURL, specs.NotifierToken, tracer, monitor, logger)
	} else {
		logger.Info("No notifier url configured, notifications are only logged")
		notify = notifier.NewNoopNotifier(logger)
	}

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)
	passwords := password.NewHasher(specs.PasswordHashCost)

	accountService := account.NewService(s, authorizer, notify, passwords, specs.PasswordResetLifetime, tracer, monitor, logger)
	businessService := business.NewService(s, passwords, tracer, monitor, logger)
	hierarchyService := hierarchy.NewService(s, tracer, monitor, logger)
	membershipService := membership.NewService(s, notify, specs.InvitationLifetime, specs.PasswordResetLifetime, tracer, monitor, logger)
	usersService := users.NewService(s, tracer, monitor, logger)

	router, err := web.NewRouter(
		web.RouterConfig{
			APIs: []httptypes.RouterInterface{
				account.NewAPI(accountService, sessions, logger),
				business.NewAPI(businessService, sessions, logger),
				hierarchy.NewAPI(hierarchyService, logger),
				membership.NewAPI(membershipService, logger),
				users.NewAPI(usersService, logger),
			},
			Dependencies: map[string]status.PingerInterface{
				"postgres": dbClient,
				"redis":    sessionStore,
			},
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
		},
		authentication.NewMiddleware(sessions, specs.ClientURL, tracer, monitor, logger),
		authorizer,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
