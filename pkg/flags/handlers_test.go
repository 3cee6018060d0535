// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package flags

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
	"github.com/canonical/tenant-context-service/pkg/authentication"
)

func setupAPI(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	api := NewAPI(mockService, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)

	return mockService, mux
}

func doRequest(mux *chi.Mux, method, target, accountID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if accountID != "" {
		req = req.WithContext(authentication.WithUserID(req.Context(), accountID))
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestAPI_IsEnabled(t *testing.T) {
	mockService, mux := setupAPI(t)

	mockService.EXPECT().IsEnabled(gomock.Any(), tenantID, registryKey).Return(true, nil)

	rr := doRequest(mux, http.MethodGet, "/api/v0/tenants/"+tenantID+"/flags/"+registryKey, adminID, "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp FlagResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Key != registryKey || !resp.Effective {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestAPI_ResolveAll(t *testing.T) {
	mockService, mux := setupAPI(t)

	override := true
	mockService.EXPECT().ResolveAll(gomock.Any(), tenantID).Return([]ResolvedFlag{
		{Key: "api_access", EnabledGlobally: false, Override: &override, Effective: true},
		{Key: registryKey, EnabledGlobally: true, Effective: true},
	}, nil)

	rr := doRequest(mux, http.MethodGet, "/api/v0/tenants/"+tenantID+"/flags", adminID, "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var resp []ResolvedFlag
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(resp))
	}
}

func TestAPI_SetOverride(t *testing.T) {
	testCases := []struct {
		name           string
		flagKey        string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:    "set override",
			flagKey: registryKey,
			body:    `{"enabled": true}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetOverride(gomock.Any(), tenantID, registryKey, true, adminID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "unknown flag",
			flagKey: "no-such-flag",
			body:    `{"enabled": true}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetOverride(gomock.Any(), tenantID, "no-such-flag", true, adminID).Return(types.ErrUnknownFlag)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			flagKey:        registryKey,
			body:           `{`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPI(t)
			tc.setupMocks(mockService)

			rr := doRequest(mux, http.MethodPut, "/api/v0/tenants/"+tenantID+"/flags/"+tc.flagKey+"/override", adminID, tc.body)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_ClearOverride(t *testing.T) {
	mockService, mux := setupAPI(t)

	mockService.EXPECT().ClearOverride(gomock.Any(), tenantID, registryKey, adminID).Return(nil)

	rr := doRequest(mux, http.MethodDelete, "/api/v0/tenants/"+tenantID+"/flags/"+registryKey+"/override", adminID, "")

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}
