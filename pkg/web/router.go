// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/business-service/internal/authorization"
	"github.com/canonical/business-service/internal/http/types"
	"github.com/canonical/business-service/internal/logging"
	"github.com/canonical/business-service/internal/monitoring"
	"github.com/canonical/business-service/internal/tracing"
	"github.com/canonical/business-service/pkg/metrics"
	"github.com/canonical/business-service/pkg/status"
)

type RouterConfig struct {
	APIs               []types.RouterInterface
	Dependencies       map[string]status.PingerInterface
	CORSAllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	gate GateInterface,
	authorizer authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (http.Handler, error) {
	routes, err := BuildRoutes(cfg.APIs...)
	if err != nil {
		return nil, err
	}

	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	notFound := func(w http.ResponseWriter, r *http.Request) {
		types.WriteMessage(w, http.StatusNotFound, types.MessageNotFound)
	}
	// a known path with an unknown method is still no route
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.Dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	authz := NewAuthorizationMiddleware(authorizer, tracer, monitor, logger)
	for _, route := range routes {
		router.With(
			gate.Gate(route.RequireAuth),
			authz.Authorize(route),
		).Method(route.Method, route.Pattern, route.Handler)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router), nil
}
