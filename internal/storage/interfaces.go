// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/types"
)

type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)

	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetPlanLimitsByTenantID(ctx context.Context, tenantID string) (*types.PlanLimits, error)

	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	GetCustomerByAccountID(ctx context.Context, accountID string) (*types.Customer, error)
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	ListCustomersByTenantID(ctx context.Context, tenantID string) ([]*types.Customer, error)
	LinkCustomerAccount(ctx context.Context, customerID, accountID string) error

	GetActiveContext(ctx context.Context, accountID string) (*types.ActiveContext, error)
	UpsertActiveContext(ctx context.Context, ac *types.ActiveContext) error

	GetFeatureFlagByKey(ctx context.Context, key string) (*types.FeatureFlag, error)
	ListFeatureFlags(ctx context.Context) ([]*types.FeatureFlag, error)
	CreateFeatureFlag(ctx context.Context, f *types.FeatureFlag) (*types.FeatureFlag, error)
	GetFeatureFlagOverride(ctx context.Context, tenantID, flagID string) (*types.FeatureFlagOverride, error)
	ListFeatureFlagOverridesByTenantID(ctx context.Context, tenantID string) ([]*types.FeatureFlagOverride, error)
	UpsertFeatureFlagOverride(ctx context.Context, o *types.FeatureFlagOverride) error
	DeleteFeatureFlagOverride(ctx context.Context, tenantID, flagID string) error

	CountMembershipsByTenantID(ctx context.Context, tenantID string) (int64, error)
	CountCustomersByTenantID(ctx context.Context, tenantID string) (int64, error)
	CountDealsByTenantID(ctx context.Context, tenantID string) (int64, error)
	CountTicketsByTenantID(ctx context.Context, tenantID string) (int64, error)

	InsertAuditEvent(ctx context.Context, e *types.AuditEvent) error
}
