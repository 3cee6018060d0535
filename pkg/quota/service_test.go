// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-context-service/internal/audit"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package quota -destination ./mock_quota.go -source=./interfaces.go

const tenantID = "tenant-1"

func int64Ptr(v int64) *int64 { return &v }

// recordingAuditor captures audit events for assertions.
type recordingAuditor struct {
	events []map[string]string
}

func (r *recordingAuditor) Record(_ context.Context, _ string, action string, _ *string, details map[string]string) {
	copied := map[string]string{"action": action}
	for k, v := range details {
		copied[k] = v
	}
	r.events = append(r.events, copied)
}

func newService(t *testing.T, auditor audit.AuditorInterface) (*Service, *MockStorageInterface, *MockTxRunnerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)

	if auditor == nil {
		auditor = audit.NewNoopAuditor()
	}

	s := NewService(
		mockStorage,
		mockTx,
		auditor,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockTx
}

func TestService_Check_Boundaries(t *testing.T) {
	const limit = int64(10)

	testCases := []struct {
		name       string
		usage      int64
		expectDeny bool
	}{
		{name: "one below the limit allows", usage: limit - 1},
		{name: "at the limit denies", usage: limit, expectDeny: true},
		{name: "above the limit denies", usage: limit + 1, expectDeny: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newService(t, nil)

			mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(
				&types.PlanLimits{MaxSeats: limit}, nil)
			mockStorage.EXPECT().CountMembershipsByTenantID(gomock.Any(), tenantID).Return(tc.usage, nil)

			err := s.Check(context.Background(), tenantID, ResourceSeats, "")

			if tc.expectDeny {
				if !errors.Is(err, types.ErrLimitExceeded) {
					t.Fatalf("expected %v, got %v", types.ErrLimitExceeded, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Check_UnlimitedValues(t *testing.T) {
	// Zero and negative plan values mean unlimited, usage is never counted.
	for _, limit := range []int64{0, -1} {
		s, mockStorage, _ := newService(t, nil)

		mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(
			&types.PlanLimits{MaxDeals: limit}, nil)

		if err := s.Check(context.Background(), tenantID, ResourceDeals, ""); err != nil {
			t.Fatalf("limit %d: unexpected error: %v", limit, err)
		}
	}
}

func TestService_Check_ClientLimitReachedEmitsAudit(t *testing.T) {
	auditor := &recordingAuditor{}
	s, mockStorage, _ := newService(t, auditor)

	mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(
		&types.PlanLimits{MaxClients: 5}, nil)
	mockStorage.EXPECT().CountCustomersByTenantID(gomock.Any(), tenantID).Return(int64(5), nil)

	err := s.Check(context.Background(), tenantID, ResourceClients, "customer_create")
	if !errors.Is(err, types.ErrLimitExceeded) {
		t.Fatalf("expected %v, got %v", types.ErrLimitExceeded, err)
	}

	if len(auditor.events) != 1 {
		t.Fatalf("expected exactly one audit event, got %d", len(auditor.events))
	}
	event := auditor.events[0]
	if event["action"] != audit.ActionQuotaDenied || event["current"] != "5" || event["limit"] != "5" || event["context"] != "customer_create" {
		t.Errorf("unexpected audit event: %+v", event)
	}
}

func TestService_Check_LegacyScalarFallback(t *testing.T) {
	t.Run("fallback covers seats", func(t *testing.T) {
		s, mockStorage, _ := newService(t, nil)

		mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(
			&types.Tenant{ID: tenantID, MaxSeats: int64Ptr(3), MaxClients: int64Ptr(8)}, nil)
		mockStorage.EXPECT().CountMembershipsByTenantID(gomock.Any(), tenantID).Return(int64(3), nil)

		err := s.Check(context.Background(), tenantID, ResourceSeats, "")
		if !errors.Is(err, types.ErrLimitExceeded) {
			t.Fatalf("expected %v, got %v", types.ErrLimitExceeded, err)
		}
	})

	t.Run("fallback leaves deals unlimited", func(t *testing.T) {
		s, mockStorage, _ := newService(t, nil)

		mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(
			&types.Tenant{ID: tenantID, MaxSeats: int64Ptr(3), MaxClients: int64Ptr(8)}, nil)

		if err := s.Check(context.Background(), tenantID, ResourceDeals, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		s, mockStorage, _ := newService(t, nil)

		mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)

		err := s.Check(context.Background(), tenantID, ResourceSeats, "")
		if !errors.Is(err, types.ErrNotFound) {
			t.Fatalf("expected %v, got %v", types.ErrNotFound, err)
		}
	})
}

func TestService_CheckAndReserve(t *testing.T) {
	s, mockStorage, mockTx := newService(t, nil)

	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(
		&types.PlanLimits{MaxClients: 5}, nil)
	mockStorage.EXPECT().CountCustomersByTenantID(gomock.Any(), tenantID).Return(int64(2), nil)

	created := false
	err := s.CheckAndReserve(context.Background(), tenantID, ResourceClients, "", func(ctx context.Context) error {
		created = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("creation callback was not invoked")
	}
}

func TestService_CheckAndReserve_DenyShortCircuits(t *testing.T) {
	s, mockStorage, mockTx := newService(t, nil)

	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(
		&types.PlanLimits{MaxClients: 2}, nil)
	mockStorage.EXPECT().CountCustomersByTenantID(gomock.Any(), tenantID).Return(int64(2), nil)

	err := s.CheckAndReserve(context.Background(), tenantID, ResourceClients, "", func(ctx context.Context) error {
		t.Error("creation callback ran despite a denied check")
		return nil
	})
	if !errors.Is(err, types.ErrLimitExceeded) {
		t.Fatalf("expected %v, got %v", types.ErrLimitExceeded, err)
	}
}

func TestService_Report(t *testing.T) {
	s, mockStorage, _ := newService(t, nil)

	limits := &types.PlanLimits{MaxSeats: 10, MaxClients: 5, MaxDeals: 0, MaxTickets: -1}
	mockStorage.EXPECT().GetPlanLimitsByTenantID(gomock.Any(), tenantID).Return(limits, nil).Times(4)
	mockStorage.EXPECT().CountMembershipsByTenantID(gomock.Any(), tenantID).Return(int64(4), nil)
	mockStorage.EXPECT().CountCustomersByTenantID(gomock.Any(), tenantID).Return(int64(5), nil)
	mockStorage.EXPECT().CountDealsByTenantID(gomock.Any(), tenantID).Return(int64(100), nil)
	mockStorage.EXPECT().CountTicketsByTenantID(gomock.Any(), tenantID).Return(int64(7), nil)

	report, err := s.Report(context.Background(), tenantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(report))
	}

	byResource := make(map[ResourceType]Usage, len(report))
	for _, u := range report {
		byResource[u.Resource] = u
	}
	if u := byResource[ResourceSeats]; u.Current != 4 || u.Limit != 10 {
		t.Errorf("seats usage is %+v", u)
	}
	if u := byResource[ResourceTickets]; u.Limit != 0 {
		t.Errorf("negative plan value should report as unlimited, got %+v", u)
	}
}
