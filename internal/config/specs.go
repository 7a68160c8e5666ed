// Copyright 2025 Canonical Ltd.
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

	ApiToken string `envconfig:"api_token" default:""`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer  string `envconfig:"authentication_issuer" default:""`
	AuthenticationJwksURL string `envconfig:"authentication_jwks_url" default:""`

	ManageURL    string `envconfig:"manage_url"`
	ManageUser   string `envconfig:"manage_user" default:""`
	ManageSecret string `envconfig:"manage_secret" default:""`

	MailEnabled  bool   `envconfig:"mail_enabled" default:"true"`
	MailHost     string `envconfig:"mail_host" default:"localhost"`
	MailPort     int    `envconfig:"mail_port" default:"25"`
	MailUser     string `envconfig:"mail_user" default:""`
	MailPassword string `envconfig:"mail_password" default:""`
	MailFrom     string `envconfig:"mail_from" default:"no-reply@provisioning.local"`
	MailWorkers  int    `envconfig:"mail_workers" default:"4"`

	RemoteTimeout time.Duration `envconfig:"remote_timeout" default:"60s"`

	DSN               string        `envconfig:"DSN" default:""`
	DBMaxConns        int           `envconfig:"db_max_conns" default:"10"`
	DBMinConns        int           `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"15m"`
}
