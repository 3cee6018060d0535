// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/tenant-context-service/internal/http/types"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
	"github.com/canonical/tenant-context-service/pkg/authentication"
)

type CheckRequest struct {
	Resource string `json:"resource" validate:"required,oneof=seats clients deals tickets"`
	Context  string `json:"context"`
}

type CheckResponse struct {
	Allowed bool `json:"allowed"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/tenants/{tenantID}/quota", a.report)
	mux.Post("/api/v0/tenants/{tenantID}/quota/check", a.check)
}

func (a *API) report(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "quota.API.report")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	report, err := a.service.Report(ctx, chi.URLParam(r, "tenantID"))
	if err != nil {
		a.logger.Debugf("quota report failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "quota.API.check")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.Check(ctx, chi.URLParam(r, "tenantID"), ResourceType(req.Resource), req.Context); err != nil {
		a.logger.Debugf("quota check failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(CheckResponse{Allowed: true})
}
