// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/tenant-context-service/internal/audit"
	"github.com/canonical/tenant-context-service/internal/db"
	"github.com/canonical/tenant-context-service/internal/identity"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/pkg/authentication"
	"github.com/canonical/tenant-context-service/pkg/contexts"
	"github.com/canonical/tenant-context-service/pkg/customers"
	"github.com/canonical/tenant-context-service/pkg/flags"
	"github.com/canonical/tenant-context-service/pkg/impersonation"
	"github.com/canonical/tenant-context-service/pkg/metrics"
	"github.com/canonical/tenant-context-service/pkg/quota"
	"github.com/canonical/tenant-context-service/pkg/status"
	"github.com/canonical/tenant-context-service/pkg/webhooks"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	cache contexts.CacheInterface,
	codec *impersonation.Codec,
	holder *impersonation.CredentialHolder,
	oidcVerifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	auditor := audit.NewAuditor(s, tracer, logger)

	contextsService := contexts.NewService(s, cache, auditor, tracer, monitor, logger)
	impersonationService := impersonation.NewService(s, contextsService, codec, holder, auditor, tracer, monitor, logger)
	flagsService := flags.NewService(s, auditor, tracer, monitor, logger)
	quotaService := quota.NewService(s, dbClient, auditor, tracer, monitor, logger)
	customersService := customers.NewService(s, flagsService, quotaService, auditor, tracer, monitor, logger)
	webhooksService := webhooks.NewService(s, contextsService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooksService, tracer, logger).RegisterEndpoints(router)

	apiRouter := chi.NewMux()

	if oidcVerifier != nil {
		// Impersonation tokens are minted by this service, so they are
		// accepted alongside the identity provider's tokens.
		verifier := authentication.NewChainVerifier(
			impersonation.NewTokenVerifier(codec),
			oidcVerifier,
		)
		apiRouter.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())
	} else {
		apiRouter.Use(identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)
	}

	apiRouter.Use(db.TransactionMiddleware(dbClient, logger))

	contexts.NewAPI(contextsService, tracer, logger).RegisterEndpoints(apiRouter)
	impersonation.NewAPI(impersonationService, tracer, logger).RegisterEndpoints(apiRouter)
	flags.NewAPI(flagsService, tracer, logger).RegisterEndpoints(apiRouter)
	quota.NewAPI(quotaService, tracer, logger).RegisterEndpoints(apiRouter)
	customers.NewAPI(customersService, tracer, logger).RegisterEndpoints(apiRouter)

	router.Mount("/", apiRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", identity.HeaderName},
			MaxAge:         300,
		},
	)
}
