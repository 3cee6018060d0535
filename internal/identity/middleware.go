// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/pkg/authentication"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID
	// when the service runs behind a trusted gateway with authentication
	// disabled.
	HeaderName = "X-Authenticated-Account-Id"
)

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if accountID := r.Header.Get(HeaderName); accountID != "" {
			ctx = authentication.WithUserID(ctx, accountID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
