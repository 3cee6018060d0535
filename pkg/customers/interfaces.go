// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/types"
	"github.com/canonical/tenant-context-service/pkg/quota"
)

type ServiceInterface interface {
	// Create adds a customer record to a tenant. Creation is gated by the
	// client_portal capability and the clients quota, inside one
	// transaction with the insert.
	Create(ctx context.Context, actorID, tenantID, name, email string) (*types.Customer, error)
	Get(ctx context.Context, customerID string) (*types.Customer, error)
	List(ctx context.Context, tenantID string) ([]*types.Customer, error)
	// LinkAccount attaches a login account to a customer record, making it
	// impersonatable and enterable.
	LinkAccount(ctx context.Context, customerID, accountID string) error
}

// StorageInterface is the subset of the tenant store this package needs.
type StorageInterface interface {
	GetCustomerByID(ctx context.Context, id string) (*types.Customer, error)
	CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error)
	ListCustomersByTenantID(ctx context.Context, tenantID string) ([]*types.Customer, error)
	LinkCustomerAccount(ctx context.Context, customerID, accountID string) error
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
}

// FlagCheckerInterface resolves one capability for a tenant.
type FlagCheckerInterface interface {
	IsEnabled(ctx context.Context, tenantID, flagKey string) (bool, error)
}

// QuotaCheckerInterface guards creation of bounded resources.
type QuotaCheckerInterface interface {
	CheckAndReserve(ctx context.Context, tenantID string, resource quota.ResourceType, contextTag string, create func(context.Context) error) error
}
