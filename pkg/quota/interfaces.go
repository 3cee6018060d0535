// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/types"
)

// ResourceType names a bounded resource counted per tenant.
type ResourceType string

const (
	ResourceSeats   ResourceType = "seats"
	ResourceClients ResourceType = "clients"
	ResourceDeals   ResourceType = "deals"
	ResourceTickets ResourceType = "tickets"
)

// Unlimited is the effective limit when a plan value is absent, zero or
// negative.
const Unlimited int64 = 0

// Usage is one resource's live usage against its effective limit. Limit 0
// means unlimited.
type Usage struct {
	Resource ResourceType `json:"resource"`
	Current  int64        `json:"current"`
	Limit    int64        `json:"limit"`
}

type ServiceInterface interface {
	// Check allows or denies creating one more instance of resource for the
	// tenant. Usage is counted live at call time, the decision is
	// check-then-act. Deny returns ErrLimitExceeded.
	Check(ctx context.Context, tenantID string, resource ResourceType, contextTag string) error
	// CheckAndReserve runs Check and the creation callback inside one
	// transaction, closing the check-then-act window at the cost of
	// contention on the tenant's rows.
	CheckAndReserve(ctx context.Context, tenantID string, resource ResourceType, contextTag string, create func(context.Context) error) error
	// Report returns the live usage of every bounded resource type.
	Report(ctx context.Context, tenantID string) ([]Usage, error)
}

// StorageInterface is the subset of the tenant store this package needs.
type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetPlanLimitsByTenantID(ctx context.Context, tenantID string) (*types.PlanLimits, error)
	CountMembershipsByTenantID(ctx context.Context, tenantID string) (int64, error)
	CountCustomersByTenantID(ctx context.Context, tenantID string) (int64, error)
	CountDealsByTenantID(ctx context.Context, tenantID string) (int64, error)
	CountTicketsByTenantID(ctx context.Context, tenantID string) (int64, error)
}

// TxRunnerInterface runs a function inside one database transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
