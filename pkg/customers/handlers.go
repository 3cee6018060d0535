// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

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

type CreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type LinkAccountRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
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
	mux.Post("/api/v0/tenants/{tenantID}/customers", a.create)
	mux.Get("/api/v0/tenants/{tenantID}/customers", a.list)
	mux.Get("/api/v0/customers/{customerID}", a.get)
	mux.Post("/api/v0/customers/{customerID}/account", a.linkAccount)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "customers.API.create")
	defer span.End()

	accountID, ok := authentication.GetUserID(ctx)
	if !ok || accountID == "" {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := a.service.Create(ctx, accountID, chi.URLParam(r, "tenantID"), req.Name, req.Email)
	if err != nil {
		a.logger.Debugf("customer creation failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(customer)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "customers.API.list")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	customers, err := a.service.List(ctx, chi.URLParam(r, "tenantID"))
	if err != nil {
		a.logger.Debugf("customer listing failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(customers)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "customers.API.get")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	customer, err := a.service.Get(ctx, chi.URLParam(r, "customerID"))
	if err != nil {
		a.logger.Debugf("customer lookup failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(customer)
}

func (a *API) linkAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "customers.API.linkAccount")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		httptypes.WriteError(w, types.ErrUnauthorized)
		return
	}

	var req LinkAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.LinkAccount(ctx, chi.URLParam(r, "customerID"), req.AccountID); err != nil {
		a.logger.Debugf("account linking failed: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
