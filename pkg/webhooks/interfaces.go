// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetCustomerByAccountID(ctx context.Context, accountID string) (*types.Customer, error)
}

// ContextBootstrapperInterface bootstraps the fixed acting context of a
// non-operator account.
type ContextBootstrapperInterface interface {
	EnsureFixedContext(ctx context.Context, accountID string, role types.Role, tenantID, customerID string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleSignIn(ctx context.Context, accountID string) error
}
