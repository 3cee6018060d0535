// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package impersonation

import (
	"context"
	"time"

	"github.com/canonical/tenant-context-service/internal/types"
)

// Session is the result of a successful identity swap. RestoreToken is the
// sealed original credential the client must present to stop impersonating.
type Session struct {
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expires_at"`
	RestoreToken string    `json:"restore_token"`
}

type ServiceInterface interface {
	// Impersonate mints a time-boxed credential acting as targetAccountID
	// and seals the operator's current credential for later restoration.
	// Either the full swap succeeds or no session state changes.
	Impersonate(ctx context.Context, operatorID, targetAccountID, currentCredential string) (*Session, error)
	// Stop opens the sealed credential and hands it back. An empty restore
	// token is a no-op, Stop is idempotent.
	Stop(ctx context.Context, accountID, restoreToken string) (string, error)
}

// StorageInterface is the subset of the tenant store this package needs.
type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetCustomerByAccountID(ctx context.Context, accountID string) (*types.Customer, error)
}

// ContextSwitcherInterface writes the operator's own acting context when an
// impersonation targets a customer identity.
type ContextSwitcherInterface interface {
	Switch(ctx context.Context, accountID string, scope types.Scope, tenantID, customerID string) error
}
