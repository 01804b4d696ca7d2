// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/surveillance-service/internal/authorization"
	"github.com/canonical/surveillance-service/internal/config"
	"github.com/canonical/surveillance-service/internal/db"
	"github.com/canonical/surveillance-service/internal/identity"
	"github.com/canonical/surveillance-service/internal/kratos"
	"github.com/canonical/surveillance-service/internal/logging"
	"github.com/canonical/surveillance-service/internal/mail"
	"github.com/canonical/surveillance-service/internal/monitoring/prometheus"
	"github.com/canonical/surveillance-service/internal/storage"
	"github.com/canonical/surveillance-service/internal/tracing"
	"github.com/canonical/surveillance-service/pkg/authentication"
	"github.com/canonical/surveillance-service/pkg/invitation"
	"github.com/canonical/surveillance-service/pkg/member"
	"github.com/canonical/surveillance-service/pkg/metrics"
	"github.com/canonical/surveillance-service/pkg/organization"
	"github.com/canonical/surveillance-service/pkg/report"
	"github.com/canonical/surveillance-service/pkg/status"
	"github.com/canonical/surveillance-service/pkg/web"
	"github.com/canonical/surveillance-service/pkg/webhooks"
)

const serviceName = "surveillance-service"

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the API",
	Long:  `Launch the web server serving the surveillance API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %w", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer func() { _ = logger.Sync() }()

	monitor := prometheus.NewMonitor(serviceName, logger)

	tracer := tracing.NewTracer(tracing.NewConfig(
		specs.TracingEnabled,
		specs.OtelGRPCEndpoint,
		specs.OtelHTTPEndpoint,
		logger,
	))

	dbClient, err := db.NewDBClient(db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}, tracer, monitor, logger)
	if err != nil {
		logger.Fatalf("failed to create db client: %v", err)
	}
	defer dbClient.Close()

	store := storage.NewStorage(dbClient, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(store, specs.SuperAdminEmails, tracer, monitor, logger)
	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	var mailClient mail.EmailClientInterface
	if specs.MailAPIKey != "" {
		mailClient = mail.NewClient(specs.MailAPIKey, specs.MailSender, tracer, monitor, logger)
	}
	dispatcher := invitation.NewDispatcher(mailClient, specs.AppURL, specs.MailPermissive, tracer, logger)

	identityMdw := identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			logger.Fatalf("failed to initialize JWT authentication: %v", err)
		}
		identityMdw = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	}

	apis := web.APIs{
		Organization: organization.NewAPI(
			organization.NewService(store, authorizer, tracer, monitor, logger),
		),
		Member: member.NewAPI(
			member.NewService(store, authorizer, tracer, monitor, logger),
		),
		Invitation: invitation.NewAPI(
			invitation.NewService(store, authorizer, dispatcher, kratosClient, specs.InvitationLifetime, tracer, monitor, logger),
		),
		Report: report.NewAPI(
			report.NewService(store, authorizer, tracer, monitor, logger),
		),
		Webhooks: webhooks.NewAPI(
			webhooks.NewService(store, tracer, monitor, logger),
		),
		Status:  status.NewAPI(logger),
		Metrics: metrics.NewAPI(logger),
	}

	router := web.NewRouter(apis, identityMdw, dbClient, tracer, monitor, logger)

	logger.Infof("Starting server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err)
		}
	}()

	logger.Security().SystemStartup()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	<-c
	logger.Security().SystemShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown failed: %v", err)
	}

	logger.Info("Shutting down")
	os.Exit(0)
}
