// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package flags

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

//go:generate mockgen -build_flags=--mod=mod -package flags -destination ./mock_flags.go -source=./interfaces.go

const (
	tenantID = "tenant-1"
	adminID  = "admin-1"

	// client_portal defaults to enabled in the static registry.
	registryKey = "client_portal"
	flagID      = "flag-1"
)

func newService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)

	s := NewService(
		mockStorage,
		audit.NewNoopAuditor(),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage
}

func TestService_IsEnabled_Precedence(t *testing.T) {
	globallyOff := &types.FeatureFlag{ID: flagID, Key: registryKey, EnabledGlobally: false}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "registry default wins when no store row",
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(nil, storage.ErrNotFound)
			},
			expected: true,
		},
		{
			name: "global row overrides registry default",
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(globallyOff, nil)
				st.EXPECT().GetFeatureFlagOverride(gomock.Any(), tenantID, flagID).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "tenant override overrides global row",
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(globallyOff, nil)
				st.EXPECT().GetFeatureFlagOverride(gomock.Any(), tenantID, flagID).Return(
					&types.FeatureFlagOverride{TenantID: tenantID, FlagID: flagID, Enabled: true}, nil)
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newService(t)
			tc.setupMocks(mockStorage)

			enabled, err := s.IsEnabled(context.Background(), tenantID, registryKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if enabled != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, enabled)
			}
		})
	}
}

func TestService_IsEnabled_UnknownKeyIsFalse(t *testing.T) {
	s, mockStorage := newService(t)

	mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), "no-such-flag").Return(nil, storage.ErrNotFound)

	enabled, err := s.IsEnabled(context.Background(), tenantID, "no-such-flag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enabled {
		t.Error("unknown key resolved to true")
	}
}

func TestService_SetOverride(t *testing.T) {
	t.Run("existing flag row", func(t *testing.T) {
		s, mockStorage := newService(t)

		flag := &types.FeatureFlag{ID: flagID, Key: registryKey, EnabledGlobally: false}

		// effective-before lookup, then the write path
		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(flag, nil).Times(2)
		mockStorage.EXPECT().GetFeatureFlagOverride(gomock.Any(), tenantID, flagID).Return(nil, storage.ErrNotFound)
		mockStorage.EXPECT().UpsertFeatureFlagOverride(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *types.FeatureFlagOverride) error {
				if o.TenantID != tenantID || o.FlagID != flagID || !o.Enabled || o.UpdatedBy != adminID {
					t.Errorf("override write was %+v", o)
				}
				return nil
			})

		if err := s.SetOverride(context.Background(), tenantID, registryKey, true, adminID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lazily creates flag row from registry", func(t *testing.T) {
		s, mockStorage := newService(t)

		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(nil, storage.ErrNotFound).Times(2)
		mockStorage.EXPECT().CreateFeatureFlag(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *types.FeatureFlag) (*types.FeatureFlag, error) {
				if f.Key != registryKey || f.Name == "" || !f.EnabledGlobally {
					t.Errorf("flag created from registry was %+v", f)
				}
				created := *f
				created.ID = flagID
				return &created, nil
			})
		mockStorage.EXPECT().UpsertFeatureFlagOverride(gomock.Any(), gomock.Any()).Return(nil)

		if err := s.SetOverride(context.Background(), tenantID, registryKey, false, adminID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		s, mockStorage := newService(t)

		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), "no-such-flag").Return(nil, storage.ErrNotFound).Times(2)

		err := s.SetOverride(context.Background(), tenantID, "no-such-flag", true, adminID)
		if !errors.Is(err, types.ErrUnknownFlag) {
			t.Fatalf("expected %v, got %v", types.ErrUnknownFlag, err)
		}
	})
}

func TestService_ClearOverride(t *testing.T) {
	t.Run("clearing reverts to the global value", func(t *testing.T) {
		s, mockStorage := newService(t)

		flag := &types.FeatureFlag{ID: flagID, Key: registryKey, EnabledGlobally: false}

		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(flag, nil).Times(2)
		mockStorage.EXPECT().GetFeatureFlagOverride(gomock.Any(), tenantID, flagID).Return(
			&types.FeatureFlagOverride{TenantID: tenantID, FlagID: flagID, Enabled: true}, nil)
		mockStorage.EXPECT().DeleteFeatureFlagOverride(gomock.Any(), tenantID, flagID).Return(nil)

		if err := s.ClearOverride(context.Background(), tenantID, registryKey, adminID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// After the delete, resolution falls through to the global row.
		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(flag, nil)
		mockStorage.EXPECT().GetFeatureFlagOverride(gomock.Any(), tenantID, flagID).Return(nil, storage.ErrNotFound)

		enabled, err := s.IsEnabled(context.Background(), tenantID, registryKey)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if enabled {
			t.Error("expected effective value to revert to the global value false")
		}
	})

	t.Run("absent override is a no-op success", func(t *testing.T) {
		s, mockStorage := newService(t)

		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), registryKey).Return(nil, storage.ErrNotFound)

		if err := s.ClearOverride(context.Background(), tenantID, registryKey, adminID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		s, mockStorage := newService(t)

		mockStorage.EXPECT().GetFeatureFlagByKey(gomock.Any(), "no-such-flag").Return(nil, storage.ErrNotFound)

		err := s.ClearOverride(context.Background(), tenantID, "no-such-flag", adminID)
		if !errors.Is(err, types.ErrUnknownFlag) {
			t.Fatalf("expected %v, got %v", types.ErrUnknownFlag, err)
		}
	})
}

func TestService_ResolveAll_Union(t *testing.T) {
	s, mockStorage := newService(t)

	// white_label is in the registry too; deprecated_flag exists only in
	// the store.
	mockStorage.EXPECT().ListFeatureFlags(gomock.Any()).Return([]*types.FeatureFlag{
		{ID: "flag-wl", Key: "white_label", Name: "White labelling", EnabledGlobally: true},
		{ID: "flag-dep", Key: "deprecated_flag", Name: "Old thing", EnabledGlobally: false},
	}, nil)
	mockStorage.EXPECT().ListFeatureFlagOverridesByTenantID(gomock.Any(), tenantID).Return([]*types.FeatureFlagOverride{
		{TenantID: tenantID, FlagID: "flag-dep", Enabled: true},
	}, nil)

	resolved, err := s.ResolveAll(context.Background(), tenantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byKey := make(map[string]ResolvedFlag, len(resolved))
	for _, f := range resolved {
		if _, dup := byKey[f.Key]; dup {
			t.Fatalf("key %s appears more than once", f.Key)
		}
		byKey[f.Key] = f
	}

	// Store-only flag present, with its override applied.
	dep, ok := byKey["deprecated_flag"]
	if !ok {
		t.Fatal("store-only flag missing from resolution")
	}
	if dep.Override == nil || !*dep.Override || !dep.Effective {
		t.Errorf("deprecated_flag resolved to %+v, want overridden true", dep)
	}

	// Store row wins over the registry default for white_label.
	if wl := byKey["white_label"]; !wl.Effective {
		t.Errorf("white_label resolved to %+v, want global true", wl)
	}

	// Registry-only keys appear with their defaults.
	cp, ok := byKey[registryKey]
	if !ok {
		t.Fatalf("registry key %s missing from resolution", registryKey)
	}
	if !cp.Effective || cp.Override != nil {
		t.Errorf("%s resolved to %+v, want registry default true", registryKey, cp)
	}
}
