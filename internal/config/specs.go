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

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// SuperAdminEmails grants the global super-admin role to the listed
	// identities on top of any role stored in the users table.
	SuperAdminEmails []string `envconfig:"super_admin_emails"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	// AppURL is the externally reachable base URL, used to build the accept
	// links embedded in invitation emails.
	AppURL string `envconfig:"app_url" default:"http://localhost:8080"`

	MailAPIKey     string `envconfig:"mail_api_key"`
	MailSender     string `envconfig:"mail_sender" default:"StrainTrack <onboarding@resend.dev>"`
	MailPermissive bool   `envconfig:"mail_permissive" default:"false"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope"`
}
