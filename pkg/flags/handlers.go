// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package flags

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

type SetOverrideRequest struct {
	Enabled bool `json:"enabled"`
}

type FlagResponse struct {
	Key       string `json:"key"`
	Effective bool   `json:"effective"`
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
	mux.Get("/api/v0/tenants/{tenantID}/flags", a.resolveAll)
	mux.Get("/api/v0/tenants/{tenantID}/flags/{flagKey}", a.isEnabled)
	mux.Put("/api/v0/tenants/{tenantID}/flags/{flagKey}/override", a.setOverride)
	mux.Delete("/api/v0/tenants/{tenantID}/flags/{flagKey}/override", a.clearOverride)
}

func (a *API) resolveAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "flags.API.resolveAll")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	resolved, err := a.service.ResolveAll(ctx, chi.URLParam(r, "tenantID"))
	if err != nil {
		a.logger.Debugf("flag resolution failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resolved)
}

func (a *API) isEnabled(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "flags.API.isEnabled")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	flagKey := chi.URLParam(r, "flagKey")

	enabled, err := a.service.IsEnabled(ctx, chi.URLParam(r, "tenantID"), flagKey)
	if err != nil {
		a.logger.Debugf("flag lookup failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(FlagResponse{Key: flagKey, Effective: enabled})
}

func (a *API) setOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "flags.API.setOverride")
	defer span.End()

	accountID, ok := authentication.GetUserID(ctx)
	if !ok || accountID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req SetOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.SetOverride(ctx, chi.URLParam(r, "tenantID"), chi.URLParam(r, "flagKey"), req.Enabled, accountID); err != nil {
		a.logger.Debugf("set override failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) clearOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "flags.API.clearOverride")
	defer span.End()

	accountID, ok := authentication.GetUserID(ctx)
	if !ok || accountID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	if err := a.service.ClearOverride(ctx, chi.URLParam(r, "tenantID"), chi.URLParam(r, "flagKey"), accountID); err != nil {
		a.logger.Debugf("clear override failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
