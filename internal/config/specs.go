// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisURL string `envconfig:"redis_url" required:"true"`

	SessionCookieName   string        `envconfig:"session_cookie_name" default:"sid"`
	SessionCookieSecure bool          `envconfig:"session_cookie_secure" default:"true"`
	SessionLifetime     time.Duration `envconfig:"session_lifetime" default:"24h"`

	// ClientURL is where forced logouts are redirected to
	ClientURL string `envconfig:"client_url" default:"/"`

	InvitationLifetime    time.Duration `envconfig:"invitation_lifetime" default:"72h"`
	PasswordResetLifetime time.Duration `envconfig:"password_reset_lifetime" default:"1h"`

	PasswordHashCost int `envconfig:"password_hash_cost" default:"12"`

	NotifierURL   string `envconfig:"notifier_url"`
	NotifierToken string `envconfig:"notifier_token"`
}
