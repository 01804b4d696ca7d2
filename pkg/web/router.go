// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/surveillance-service/internal/db"
	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/monitoring"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/pkg/invitation"
	"github.com/canonical/surveillance-service/pkg/member"
	"github.com/canonical/surveillance-service/pkg/metrics"
	"github.com/canonical/surveillance-service/pkg/organization"
	"github.com/canonical/surveillance-service/pkg/report"
	"github.com/canonical/surveillance-service/pkg/status"
	"github.com/canonical/surveillance-service/pkg/webhooks"
)

// APIs groups the endpoint registrars composed into the router.
type APIs struct {
	Organization *organization.API
	Member       *member.API
	Invitation   *invitation.API
	Report       *report.API
	Webhooks     *webhooks.API
	Status       *status.API
	Metrics      *metrics.API
}

// NewRouter assembles the middleware chain and mounts every API.
// identityMdw resolves the caller's identity; it is either the kratos header
// middleware or the JWT bearer middleware, selected by configuration.
func NewRouter(
	apis APIs,
	identityMdw func(http.Handler) http.Handler,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		identityMdw,
		// Mutating requests run inside a lazily started transaction.
		db.TransactionMiddleware(dbClient, logger),
	)

	apis.Organization.RegisterEndpoints(router)
	apis.Member.RegisterEndpoints(router)
	apis.Invitation.RegisterEndpoints(router)
	apis.Report.RegisterEndpoints(router)
	apis.Webhooks.RegisterEndpoints(router)
	apis.Status.RegisterEndpoints(router)
	apis.Metrics.RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
