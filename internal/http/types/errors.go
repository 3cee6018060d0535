// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/types"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Status maps the engine error taxonomy onto HTTP status codes.
// LimitExceeded maps to 402 so the frontend can render the plan-upgrade
// prompt.
func Status(err error) int {
	switch {
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrPreconditionFailed):
		return http.StatusPreconditionFailed
	case errors.Is(err, types.ErrUnknownFlag):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrLimitExceeded):
		return http.StatusPaymentRequired
	case errors.Is(err, types.ErrContextNotConfigured):
		return http.StatusConflict
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as a JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak internals
		message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:  status,
		Message: message,
	})
}
