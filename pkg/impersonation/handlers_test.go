// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package impersonation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
	"github.com/canonical/tenant-context-service/pkg/authentication"
)

const testTargetUUID = "0190b8f6-43f5-7b26-8a5c-7d1f2e3a4b5e"

func setupAPI(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	api := NewAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)

	return mockService, mux
}

func doRequest(mux *chi.Mux, method, target, accountID, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := req.Context()
	if accountID != "" {
		ctx = authentication.WithUserID(ctx, accountID)
	}
	if token != "" {
		ctx = authentication.WithRawToken(ctx, token)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req.WithContext(ctx))
	return rr
}

func TestAPI_Impersonate(t *testing.T) {
	mockService, mux := setupAPI(t)

	session := &Session{Token: "swap-token", ExpiresAt: time.Now().Add(time.Hour), RestoreToken: "sealed"}
	mockService.EXPECT().Impersonate(gomock.Any(), operatorID, testTargetUUID, oidcCredential).Return(session, nil)

	rr := doRequest(mux, http.MethodPost, "/api/v0/impersonation", operatorID, oidcCredential,
		`{"target_account_id": "`+testTargetUUID+`"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp Session
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "swap-token" || resp.RestoreToken != "sealed" {
		t.Errorf("unexpected session payload: %+v", resp)
	}
}

func TestAPI_Impersonate_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		accountID      string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "unauthenticated",
			body:           `{"target_account_id": "` + testTargetUUID + `"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed target id",
			accountID:      operatorID,
			body:           `{"target_account_id": "not-a-uuid"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "operator target",
			accountID: operatorID,
			body:      `{"target_account_id": "` + testTargetUUID + `"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Impersonate(gomock.Any(), operatorID, testTargetUUID, gomock.Any()).Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "already impersonating",
			accountID: operatorID,
			body:      `{"target_account_id": "` + testTargetUUID + `"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Impersonate(gomock.Any(), operatorID, testTargetUUID, gomock.Any()).Return(nil, types.ErrPreconditionFailed)
			},
			expectedStatus: http.StatusPreconditionFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPI(t)
			tc.setupMocks(mockService)

			rr := doRequest(mux, http.MethodPost, "/api/v0/impersonation", tc.accountID, oidcCredential, tc.body)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Stop(t *testing.T) {
	mockService, mux := setupAPI(t)

	mockService.EXPECT().Stop(gomock.Any(), operatorID, "sealed").Return(oidcCredential, nil)

	rr := doRequest(mux, http.MethodDelete, "/api/v0/impersonation", operatorID, "swap-token",
		`{"restore_token": "sealed"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp StopResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Credential != oidcCredential {
		t.Errorf("restored credential is %q, want %q", resp.Credential, oidcCredential)
	}
}
