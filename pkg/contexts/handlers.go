// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contexts

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

type SwitchRequest struct {
	Scope      string `json:"scope" validate:"required,oneof=platform tenant customer"`
	TenantID   string `json:"tenant_id" validate:"required_if=Scope tenant,omitempty,uuid"`
	CustomerID string `json:"customer_id" validate:"required_if=Scope customer,omitempty,uuid"`
}

type ContextResponse struct {
	Scope      types.Scope `json:"scope"`
	TenantID   *string     `json:"tenant_id,omitempty"`
	CustomerID *string     `json:"customer_id,omitempty"`
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
	mux.Get("/api/v0/context", a.resolve)
	mux.Post("/api/v0/context/switch", a.switchContext)
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contexts.API.resolve")
	defer span.End()

	accountID, ok := authentication.GetUserID(ctx)
	if !ok || accountID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	ac, err := a.service.Resolve(ctx, accountID)
	if err != nil {
		a.logger.Debugf("failed to resolve context for %s: %v", accountID, err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ContextResponse{
		Scope:      ac.Scope,
		TenantID:   ac.TenantID,
		CustomerID: ac.CustomerID,
	})
}

func (a *API) switchContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "contexts.API.switchContext")
	defer span.End()

	accountID, ok := authentication.GetUserID(ctx)
	if !ok || accountID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.Switch(ctx, accountID, types.Scope(req.Scope), req.TenantID, req.CustomerID); err != nil {
		a.logger.Debugf("context switch failed for %s: %v", accountID, err)
		httptypes.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
