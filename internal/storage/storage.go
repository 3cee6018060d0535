// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-context-service/internal/db"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetAccountByID(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	var a types.Account
	err := s.db.Statement(ctx).
		Select("id", "email", "role", "tenant_id", "customer_id", "created_at").
		From("accounts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.Email, &a.Role, &a.TenantID, &a.CustomerID, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "status", "plan_id", "max_seats", "max_clients", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Status, &t.PlanID, &t.MaxSeats, &t.MaxClients, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) GetPlanLimitsByTenantID(ctx context.Context, tenantID string) (*types.PlanLimits, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanLimitsByTenantID")
	defer span.End()

	var raw []byte
	err := s.db.Statement(ctx).
		Select("p.limits").
		From("plans p").
		Join("tenants t ON t.plan_id = p.id").
		Where(sq.Eq{"t.id": tenantID}).
		QueryRowContext(ctx).
		Scan(&raw)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan limits: %w", err)
	}

	var limits types.PlanLimits
	if err := json.Unmarshal(raw, &limits); err != nil {
		return nil, fmt.Errorf("failed to decode plan limits: %w", err)
	}

	return &limits, nil
}

func (s *Storage) GetCustomerByID(ctx context.Context, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomerByID")
	defer span.End()

	var c types.Customer
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "email", "account_id", "created_at").
		From("customers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.AccountID, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

func (s *Storage) GetCustomerByAccountID(ctx context.Context, accountID string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomerByAccountID")
	defer span.End()

	var c types.Customer
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "email", "account_id", "created_at").
		From("customers").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.AccountID, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer by account: %w", err)
	}

	return &c, nil
}

func (s *Storage) CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomer")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer ID: %w", err)
	}

	var created types.Customer
	err = s.db.Statement(ctx).
		Insert("customers").
		Columns("id", "tenant_id", "name", "email", "account_id").
		Values(id.String(), c.TenantID, c.Name, c.Email, c.AccountID).
		Suffix("RETURNING id, tenant_id, name, email, account_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Name, &created.Email, &created.AccountID, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListCustomersByTenantID(ctx context.Context, tenantID string) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "email", "account_id", "created_at").
		From("customers").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*types.Customer
	for rows.Next() {
		var c types.Customer
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.AccountID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return customers, nil
}

func (s *Storage) LinkCustomerAccount(ctx context.Context, customerID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkCustomerAccount")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("customers").
		Set("account_id", accountID).
		Where(sq.Eq{"id": customerID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to link customer account: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetActiveContext(ctx context.Context, accountID string) (*types.ActiveContext, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveContext")
	defer span.End()

	var ac types.ActiveContext
	err := s.db.Statement(ctx).
		Select("account_id", "scope", "tenant_id", "customer_id", "updated_at").
		From("active_contexts").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx).
		Scan(&ac.AccountID, &ac.Scope, &ac.TenantID, &ac.CustomerID, &ac.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active context: %w", err)
	}

	return &ac, nil
}

// UpsertActiveContext inserts or replaces the single context row owned by
// the account. Last write wins, there is no cross-request locking.
func (s *Storage) UpsertActiveContext(ctx context.Context, ac *types.ActiveContext) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertActiveContext")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("active_contexts").
		Columns("account_id", "scope", "tenant_id", "customer_id", "updated_at").
		Values(ac.AccountID, ac.Scope, ac.TenantID, ac.CustomerID, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET scope = EXCLUDED.scope, tenant_id = EXCLUDED.tenant_id, customer_id = EXCLUDED.customer_id, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert active context: %w", err)
	}

	return nil
}

func (s *Storage) GetFeatureFlagByKey(ctx context.Context, key string) (*types.FeatureFlag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFeatureFlagByKey")
	defer span.End()

	var f types.FeatureFlag
	err := s.db.Statement(ctx).
		Select("id", "key", "name", "description", "enabled_globally", "created_at").
		From("feature_flags").
		Where(sq.Eq{"key": key}).
		QueryRowContext(ctx).
		Scan(&f.ID, &f.Key, &f.Name, &f.Description, &f.EnabledGlobally, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature flag: %w", err)
	}

	return &f, nil
}

func (s *Storage) ListFeatureFlags(ctx context.Context) ([]*types.FeatureFlag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFeatureFlags")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "key", "name", "description", "enabled_globally", "created_at").
		From("feature_flags").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list feature flags: %w", err)
	}
	defer rows.Close()

	var flags []*types.FeatureFlag
	for rows.Next() {
		var f types.FeatureFlag
		if err := rows.Scan(&f.ID, &f.Key, &f.Name, &f.Description, &f.EnabledGlobally, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feature flag: %w", err)
		}
		flags = append(flags, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return flags, nil
}

func (s *Storage) CreateFeatureFlag(ctx context.Context, f *types.FeatureFlag) (*types.FeatureFlag, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateFeatureFlag")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate flag ID: %w", err)
	}

	var created types.FeatureFlag
	err = s.db.Statement(ctx).
		Insert("feature_flags").
		Columns("id", "key", "name", "description", "enabled_globally").
		Values(id.String(), f.Key, f.Name, f.Description, f.EnabledGlobally).
		Suffix("RETURNING id, key, name, description, enabled_globally, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Key, &created.Name, &created.Description, &created.EnabledGlobally, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert feature flag: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetFeatureFlagOverride(ctx context.Context, tenantID, flagID string) (*types.FeatureFlagOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFeatureFlagOverride")
	defer span.End()

	var o types.FeatureFlagOverride
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "flag_id", "enabled", "updated_by", "created_at", "updated_at").
		From("feature_flag_overrides").
		Where(sq.Eq{"tenant_id": tenantID, "flag_id": flagID}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.TenantID, &o.FlagID, &o.Enabled, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flag override: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListFeatureFlagOverridesByTenantID(ctx context.Context, tenantID string) ([]*types.FeatureFlagOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFeatureFlagOverridesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "flag_id", "enabled", "updated_by", "created_at", "updated_at").
		From("feature_flag_overrides").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list flag overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*types.FeatureFlagOverride
	for rows.Next() {
		var o types.FeatureFlagOverride
		if err := rows.Scan(&o.ID, &o.TenantID, &o.FlagID, &o.Enabled, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan flag override: %w", err)
		}
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return overrides, nil
}

func (s *Storage) UpsertFeatureFlagOverride(ctx context.Context, o *types.FeatureFlagOverride) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertFeatureFlagOverride")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate override ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("feature_flag_overrides").
		Columns("id", "tenant_id", "flag_id", "enabled", "updated_by").
		Values(id.String(), o.TenantID, o.FlagID, o.Enabled, o.UpdatedBy).
		Suffix("ON CONFLICT (tenant_id, flag_id) DO UPDATE SET enabled = EXCLUDED.enabled, updated_by = EXCLUDED.updated_by, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert flag override: %w", err)
	}

	return nil
}

func (s *Storage) DeleteFeatureFlagOverride(ctx context.Context, tenantID, flagID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteFeatureFlagOverride")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("feature_flag_overrides").
		Where(sq.Eq{"tenant_id": tenantID, "flag_id": flagID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete flag override: %w", err)
	}

	return nil
}

func (s *Storage) CountMembershipsByTenantID(ctx context.Context, tenantID string) (int64, error) {
	return s.countByTenantID(ctx, "storage.CountMembershipsByTenantID", "memberships", tenantID)
}

func (s *Storage) CountCustomersByTenantID(ctx context.Context, tenantID string) (int64, error) {
	return s.countByTenantID(ctx, "storage.CountCustomersByTenantID", "customers", tenantID)
}

func (s *Storage) CountDealsByTenantID(ctx context.Context, tenantID string) (int64, error) {
	return s.countByTenantID(ctx, "storage.CountDealsByTenantID", "deals", tenantID)
}

func (s *Storage) CountTicketsByTenantID(ctx context.Context, tenantID string) (int64, error) {
	return s.countByTenantID(ctx, "storage.CountTicketsByTenantID", "tickets", tenantID)
}

// countByTenantID returns the live row count for the given table. Quota
// decisions always read this directly, there is no precomputed counter.
func (s *Storage) countByTenantID(ctx context.Context, spanName, table, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return count, nil
}

func (s *Storage) InsertAuditEvent(ctx context.Context, e *types.AuditEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertAuditEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate event ID: %w", err)
	}

	details, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Errorf("failed to encode event details: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_events").
		Columns("id", "actor_account_id", "action", "tenant_id", "details").
		Values(id.String(), e.ActorAccountID, e.Action, e.TenantID, details).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	return nil
}
