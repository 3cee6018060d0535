// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package flags

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/types"
)

// ResolvedFlag is one entry of a full tenant flag resolution. Override is
// nil when no per-tenant row exists.
type ResolvedFlag struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	EnabledGlobally bool   `json:"enabled_globally"`
	Override        *bool  `json:"override,omitempty"`
	Effective       bool   `json:"effective"`
}

type ServiceInterface interface {
	// IsEnabled resolves one capability for a tenant. Precedence: tenant
	// override, then global flag row, then registry default, then false.
	IsEnabled(ctx context.Context, tenantID, flagKey string) (bool, error)
	// ResolveAll resolves every key known to either the registry or the
	// store, each exactly once.
	ResolveAll(ctx context.Context, tenantID string) ([]ResolvedFlag, error)
	// SetOverride writes a per-tenant override, lazily creating the global
	// flag row from the registry for keys never toggled before.
	SetOverride(ctx context.Context, tenantID, flagKey string, enabled bool, updatedBy string) error
	// ClearOverride removes a per-tenant override. Clearing an absent
	// override succeeds.
	ClearOverride(ctx context.Context, tenantID, flagKey string, updatedBy string) error
}

// StorageInterface is the subset of the tenant store this package needs.
type StorageInterface interface {
	GetFeatureFlagByKey(ctx context.Context, key string) (*types.FeatureFlag, error)
	ListFeatureFlags(ctx context.Context) ([]*types.FeatureFlag, error)
	CreateFeatureFlag(ctx context.Context, f *types.FeatureFlag) (*types.FeatureFlag, error)
	GetFeatureFlagOverride(ctx context.Context, tenantID, flagID string) (*types.FeatureFlagOverride, error)
	ListFeatureFlagOverridesByTenantID(ctx context.Context, tenantID string) ([]*types.FeatureFlagOverride, error)
	UpsertFeatureFlagOverride(ctx context.Context, o *types.FeatureFlagOverride) error
	DeleteFeatureFlagOverride(ctx context.Context, tenantID, flagID string) error
}
