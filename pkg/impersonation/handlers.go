// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package impersonation

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

type ImpersonateRequest struct {
	TargetAccountID string `json:"target_account_id" validate:"required,uuid"`
}

type StopRequest struct {
	RestoreToken string `json:"restore_token"`
}

type StopResponse struct {
	Credential string `json:"credential,omitempty"`
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
	mux.Post("/api/v0/impersonation", a.impersonate)
	mux.Delete("/api/v0/impersonation", a.stop)
}

func (a *API) impersonate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "impersonation.API.impersonate")
	defer span.End()

	operatorID, ok := authentication.GetUserID(ctx)
	if !ok || operatorID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req ImpersonateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	credential, _ := authentication.GetRawToken(ctx)

	session, err := a.service.Impersonate(ctx, operatorID, req.TargetAccountID, credential)
	if err != nil {
		a.logger.Debugf("impersonation failed for %s: %v", operatorID, err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(session)
}

func (a *API) stop(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "impersonation.API.stop")
	defer span.End()

	accountID, ok := authentication.GetUserID(ctx)
	if !ok || accountID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req StopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	credential, err := a.service.Stop(ctx, accountID, req.RestoreToken)
	if err != nil {
		a.logger.Debugf("stop impersonation failed for %s: %v", accountID, err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(StopResponse{Credential: credential})
}
