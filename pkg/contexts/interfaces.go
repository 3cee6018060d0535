// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contexts

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/types"
)

type ServiceInterface interface {
	// Resolve determines the acting scope and bound tenant/customer for the
	// account. It may perform a repair write when a bound tenant or customer
	// no longer exists.
	Resolve(ctx context.Context, accountID string) (*types.ActiveContext, error)
	// Switch changes a platform operator's acting context. It is the only
	// legitimate writer of another account's acting scope.
	Switch(ctx context.Context, accountID string, scope types.Scope, tenantID, customerID string) error
	// EnsureFixedContext idempotently bootstraps the fixed context of a
	// non-operator account at sign-in time. No-op for operators.
	EnsureFixedContext(ctx context.Context, accountID string, role types.Role, tenantID, customerID string) error
}

// StorageInterface is the subset of the tenant store this package needs.
type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	GetCustomerByAccountID(ctx context.Context, accountID string) (*types.Customer, error)
	GetActiveContext(ctx context.Context, accountID string) (*types.ActiveContext, error)
	UpsertActiveContext(ctx context.Context, ac *types.ActiveContext) error
}

// CacheInterface is the best-effort local copy of active contexts. It is
// never authoritative; every miss or error falls back to store semantics.
type CacheInterface interface {
	Get(ctx context.Context, accountID string) (*types.ActiveContext, error)
	Set(ctx context.Context, accountID string, ac *types.ActiveContext) error
	Delete(ctx context.Context, accountID string) error
}
