// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Scope is the kind of acting identity a request resolves to.
type Scope string

const (
	ScopePlatform Scope = "platform"
	ScopeTenant   Scope = "tenant"
	ScopeCustomer Scope = "customer"
)

// Role is fixed at account creation and never mutated by this service.
type Role string

const (
	RolePlatformOperator Role = "platform-operator"
	RoleTenantAdmin      Role = "tenant-admin"
	RoleTenantMember     Role = "tenant-member"
	RoleCustomerUser     Role = "customer-user"
)

// IsCustomer reports whether the role implies a customer identity.
func (r Role) IsCustomer() bool {
	return r == RoleCustomerUser
}

// Tenant lifecycle statuses.
const (
	TenantStatusActive    = "active"
	TenantStatusTrial     = "trial"
	TenantStatusSuspended = "suspended"
	TenantStatusBlocked   = "blocked"
	TenantStatusCancelled = "cancelled"
	TenantStatusDeleted   = "deleted"
)

type Account struct {
	ID         string    `db:"id"`
	Email      string    `db:"email"`
	Role       Role      `db:"role"`
	TenantID   *string   `db:"tenant_id"`
	CustomerID *string   `db:"customer_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type Tenant struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Status     string    `db:"status"`
	PlanID     *string   `db:"plan_id"`
	MaxSeats   *int64    `db:"max_seats"`
	MaxClients *int64    `db:"max_clients"`
	CreatedAt  time.Time `db:"created_at"`
}

type Customer struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	AccountID *string   `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
}

// ActiveContext is the one row per account holding the acting scope.
// Exactly one of TenantID/CustomerID is set for tenant/customer scope,
// both are nil for platform scope.
type ActiveContext struct {
	AccountID  string    `db:"account_id"`
	Scope      Scope     `db:"scope"`
	TenantID   *string   `db:"tenant_id"`
	CustomerID *string   `db:"customer_id"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type FeatureFlag struct {
	ID              string    `db:"id"`
	Key             string    `db:"key"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	EnabledGlobally bool      `db:"enabled_globally"`
	CreatedAt       time.Time `db:"created_at"`
}

type FeatureFlagOverride struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	FlagID    string    `db:"flag_id"`
	Enabled   bool      `db:"enabled"`
	UpdatedBy string    `db:"updated_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Plan struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Limits    PlanLimits `db:"limits"`
	CreatedAt time.Time  `db:"created_at"`
}

// PlanLimits is the JSON-shaped limit block on a plan. Zero or negative
// values mean unlimited.
type PlanLimits struct {
	MaxSeats   int64 `json:"max_seats"`
	MaxClients int64 `json:"max_clients"`
	MaxDeals   int64 `json:"max_deals"`
	MaxTickets int64 `json:"max_tickets"`
}

type Membership struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	AccountID string    `db:"account_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type AuditEvent struct {
	ID             string            `db:"id"`
	ActorAccountID string            `db:"actor_account_id"`
	Action         string            `db:"action"`
	TenantID       *string           `db:"tenant_id"`
	Details        map[string]string `db:"details"`
	CreatedAt      time.Time         `db:"created_at"`
}
