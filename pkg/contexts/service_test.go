// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contexts

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

//go:generate mockgen -build_flags=--mod=mod -package contexts -destination ./mock_contexts.go -source=./interfaces.go

const (
	operatorID = "op-1"
	memberID   = "member-1"
	tenantID   = "tenant-1"
	customerID = "customer-1"
)

func strPtr(s string) *string { return &s }

func operatorAccount() *types.Account {
	return &types.Account{ID: operatorID, Role: types.RolePlatformOperator}
}

func newService(t *testing.T) (*Service, *MockStorageInterface, *MockCacheInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockCache := NewMockCacheInterface(ctrl)

	s := NewService(
		mockStorage,
		mockCache,
		audit.NewNoopAuditor(),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockCache
}

func TestService_Resolve_Operator(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface, *MockCacheInterface)
		expectedScope types.Scope
		expectedTenant *string
	}{
		{
			name: "no context row defaults to platform",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), operatorID).Return(nil, storage.ErrNotFound)
			},
			expectedScope: types.ScopePlatform,
		},
		{
			name: "valid tenant binding is returned and cached",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				ac := &types.ActiveContext{AccountID: operatorID, Scope: types.ScopeTenant, TenantID: strPtr(tenantID)}
				st.EXPECT().GetActiveContext(gomock.Any(), operatorID).Return(ac, nil)
				st.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantStatusActive}, nil)
				c.EXPECT().Set(gomock.Any(), operatorID, ac).Return(nil)
			},
			expectedScope:  types.ScopeTenant,
			expectedTenant: strPtr(tenantID),
		},
		{
			name: "dangling tenant binding self-heals to platform",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				ac := &types.ActiveContext{AccountID: operatorID, Scope: types.ScopeTenant, TenantID: strPtr("gone")}
				st.EXPECT().GetActiveContext(gomock.Any(), operatorID).Return(ac, nil)
				st.EXPECT().GetTenantByID(gomock.Any(), "gone").Return(nil, storage.ErrNotFound)
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, repaired *types.ActiveContext) error {
						if repaired.Scope != types.ScopePlatform || repaired.TenantID != nil || repaired.CustomerID != nil {
							t.Errorf("repair wrote %+v, want platform context", repaired)
						}
						return nil
					})
				c.EXPECT().Delete(gomock.Any(), operatorID).Return(nil)
			},
			expectedScope: types.ScopePlatform,
		},
		{
			name: "deleted tenant is treated as dangling",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				ac := &types.ActiveContext{AccountID: operatorID, Scope: types.ScopeTenant, TenantID: strPtr(tenantID)}
				st.EXPECT().GetActiveContext(gomock.Any(), operatorID).Return(ac, nil)
				st.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantStatusDeleted}, nil)
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).Return(nil)
				c.EXPECT().Delete(gomock.Any(), operatorID).Return(nil)
			},
			expectedScope: types.ScopePlatform,
		},
		{
			name: "store failure falls back to cache",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), operatorID).Return(nil, storeErr)
				c.EXPECT().Get(gomock.Any(), operatorID).Return(
					&types.ActiveContext{AccountID: operatorID, Scope: types.ScopeTenant, TenantID: strPtr(tenantID)}, nil)
			},
			expectedScope:  types.ScopeTenant,
			expectedTenant: strPtr(tenantID),
		},
		{
			name: "store failure without cache defaults to platform",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), operatorID).Return(nil, storeErr)
				c.EXPECT().Get(gomock.Any(), operatorID).Return(nil, errors.New("cache miss"))
			},
			expectedScope: types.ScopePlatform,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockCache := newService(t)

			mockStorage.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil)
			tc.setupMocks(mockStorage, mockCache)

			ac, err := s.Resolve(context.Background(), operatorID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ac.Scope != tc.expectedScope {
				t.Errorf("expected scope %s, got %s", tc.expectedScope, ac.Scope)
			}

			if tc.expectedTenant == nil && ac.TenantID != nil {
				t.Errorf("expected no tenant binding, got %s", *ac.TenantID)
			}
			if tc.expectedTenant != nil && (ac.TenantID == nil || *ac.TenantID != *tc.expectedTenant) {
				t.Errorf("expected tenant %s, got %v", *tc.expectedTenant, ac.TenantID)
			}
		})
	}
}

func TestService_Resolve_FixedContext(t *testing.T) {
	testCases := []struct {
		name          string
		account       *types.Account
		setupMocks    func(*MockStorageInterface)
		expectedScope types.Scope
		expectedErr   error
	}{
		{
			name:    "bootstrapped row wins",
			account: &types.Account{ID: memberID, Role: types.RoleTenantMember, TenantID: strPtr(tenantID)},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), memberID).Return(
					&types.ActiveContext{AccountID: memberID, Scope: types.ScopeTenant, TenantID: strPtr(tenantID)}, nil)
			},
			expectedScope: types.ScopeTenant,
		},
		{
			name:    "legacy fallback to owning tenant",
			account: &types.Account{ID: memberID, Role: types.RoleTenantAdmin, TenantID: strPtr(tenantID)},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), memberID).Return(nil, storage.ErrNotFound)
			},
			expectedScope: types.ScopeTenant,
		},
		{
			name:    "legacy fallback to linked customer record",
			account: &types.Account{ID: memberID, Role: types.RoleCustomerUser},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), memberID).Return(nil, storage.ErrNotFound)
				st.EXPECT().GetCustomerByAccountID(gomock.Any(), memberID).Return(
					&types.Customer{ID: customerID, TenantID: tenantID, AccountID: strPtr(memberID)}, nil)
			},
			expectedScope: types.ScopeCustomer,
		},
		{
			name:    "no binding anywhere",
			account: &types.Account{ID: memberID, Role: types.RoleTenantMember},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetActiveContext(gomock.Any(), memberID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrContextNotConfigured,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newService(t)

			mockStorage.EXPECT().GetAccountByID(gomock.Any(), memberID).Return(tc.account, nil)
			tc.setupMocks(mockStorage)

			ac, err := s.Resolve(context.Background(), memberID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ac.Scope != tc.expectedScope {
				t.Errorf("expected scope %s, got %s", tc.expectedScope, ac.Scope)
			}
		})
	}
}

func TestService_Resolve_FixedContextIsIdempotent(t *testing.T) {
	s, mockStorage, _ := newService(t)

	account := &types.Account{ID: memberID, Role: types.RoleTenantMember, TenantID: strPtr(tenantID)}
	row := &types.ActiveContext{AccountID: memberID, Scope: types.ScopeTenant, TenantID: strPtr(tenantID)}

	mockStorage.EXPECT().GetAccountByID(gomock.Any(), memberID).Return(account, nil).Times(3)
	mockStorage.EXPECT().GetActiveContext(gomock.Any(), memberID).Return(row, nil).Times(3)

	for i := 0; i < 3; i++ {
		ac, err := s.Resolve(context.Background(), memberID)
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
		if ac.Scope != types.ScopeTenant || ac.TenantID == nil || *ac.TenantID != tenantID {
			t.Errorf("call %d returned %+v, want tenant context", i, ac)
		}
	}
}

func TestService_Switch(t *testing.T) {
	testCases := []struct {
		name        string
		accountID   string
		scope       types.Scope
		tenantID    string
		customerID  string
		setupMocks  func(*MockStorageInterface, *MockCacheInterface)
		expectedErr error
	}{
		{
			name:      "switch to existing tenant",
			accountID: operatorID,
			scope:     types.ScopeTenant,
			tenantID:  tenantID,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil)
				st.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantStatusActive}, nil)
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ac *types.ActiveContext) error {
						if ac.Scope != types.ScopeTenant || ac.TenantID == nil || *ac.TenantID != tenantID || ac.CustomerID != nil {
							t.Errorf("upsert wrote %+v", ac)
						}
						return nil
					})
				c.EXPECT().Set(gomock.Any(), operatorID, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "switch to nonexistent tenant leaves context unchanged",
			accountID: operatorID,
			scope:     types.ScopeTenant,
			tenantID:  "nonexistent",
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil)
				st.EXPECT().GetTenantByID(gomock.Any(), "nonexistent").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:      "switch to platform clears bindings without existence check",
			accountID: operatorID,
			scope:     types.ScopePlatform,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil)
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ac *types.ActiveContext) error {
						if ac.Scope != types.ScopePlatform || ac.TenantID != nil || ac.CustomerID != nil {
							t.Errorf("upsert wrote %+v, want cleared platform context", ac)
						}
						return nil
					})
				c.EXPECT().Set(gomock.Any(), operatorID, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "switch to existing customer",
			accountID: operatorID,
			scope:     types.ScopeCustomer,
			customerID: customerID,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil)
				st.EXPECT().GetCustomerByID(gomock.Any(), customerID).Return(&types.Customer{ID: customerID, TenantID: tenantID}, nil)
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).Return(nil)
				c.EXPECT().Set(gomock.Any(), operatorID, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "non-operator caller is forbidden",
			accountID: memberID,
			scope:     types.ScopeTenant,
			tenantID:  tenantID,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), memberID).Return(
					&types.Account{ID: memberID, Role: types.RoleTenantMember}, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:      "tenant scope without tenant id",
			accountID: operatorID,
			scope:     types.ScopeTenant,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil)
			},
			expectedErr: types.ErrPreconditionFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockCache := newService(t)
			tc.setupMocks(mockStorage, mockCache)

			err := s.Switch(context.Background(), tc.accountID, tc.scope, tc.tenantID, tc.customerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Switch_TenantAToTenantB(t *testing.T) {
	s, mockStorage, mockCache := newService(t)

	tenantB := "tenant-b"

	mockStorage.EXPECT().GetAccountByID(gomock.Any(), operatorID).Return(operatorAccount(), nil).Times(2)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantStatusActive}, nil)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantB).Return(&types.Tenant{ID: tenantB, Status: types.TenantStatusActive}, nil)
	mockCache.EXPECT().Set(gomock.Any(), operatorID, gomock.Any()).Return(nil).Times(2)

	var last *types.ActiveContext
	mockStorage.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ac *types.ActiveContext) error {
			last = ac
			return nil
		}).Times(2)

	if err := s.Switch(context.Background(), operatorID, types.ScopeTenant, tenantID, ""); err != nil {
		t.Fatalf("first switch failed: %v", err)
	}
	if err := s.Switch(context.Background(), operatorID, types.ScopeTenant, tenantB, ""); err != nil {
		t.Fatalf("second switch failed: %v", err)
	}

	if last == nil || last.TenantID == nil || *last.TenantID != tenantB {
		t.Fatalf("final context is %+v, want binding to %s only", last, tenantB)
	}
	if last.CustomerID != nil {
		t.Errorf("final context retains customer binding %s", *last.CustomerID)
	}
}

func TestService_EnsureFixedContext(t *testing.T) {
	testCases := []struct {
		name        string
		role        types.Role
		tenantID    string
		customerID  string
		setupMocks  func(*MockStorageInterface, *MockCacheInterface)
		expectedErr error
	}{
		{
			name: "operator is a no-op",
			role: types.RolePlatformOperator,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {},
		},
		{
			name:     "tenant member upsert",
			role:     types.RoleTenantMember,
			tenantID: tenantID,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ac *types.ActiveContext) error {
						if ac.Scope != types.ScopeTenant || ac.TenantID == nil || *ac.TenantID != tenantID {
							t.Errorf("bootstrap wrote %+v", ac)
						}
						return nil
					})
				c.EXPECT().Set(gomock.Any(), memberID, gomock.Any()).Return(nil)
			},
		},
		{
			name:       "customer user upsert",
			role:       types.RoleCustomerUser,
			customerID: customerID,
			setupMocks: func(st *MockStorageInterface, c *MockCacheInterface) {
				st.EXPECT().UpsertActiveContext(gomock.Any(), gomock.Any()).Return(nil)
				c.EXPECT().Set(gomock.Any(), memberID, gomock.Any()).Return(nil)
			},
		},
		{
			name:        "tenant role without tenant id",
			role:        types.RoleTenantAdmin,
			setupMocks:  func(st *MockStorageInterface, c *MockCacheInterface) {},
			expectedErr: types.ErrPreconditionFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockCache := newService(t)
			tc.setupMocks(mockStorage, mockCache)

			err := s.EnsureFixedContext(context.Background(), memberID, tc.role, tc.tenantID, tc.customerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
