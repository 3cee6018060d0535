// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contexts

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/tenant-context-service/internal/audit"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	cache   CacheInterface
	auditor audit.AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	cache CacheInterface,
	auditor audit.AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Resolve(ctx context.Context, accountID string) (*types.ActiveContext, error) {
	ctx, span := s.tracer.Start(ctx, "contexts.Service.Resolve")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.Role == types.RolePlatformOperator {
		return s.resolveOperator(ctx, account)
	}

	return s.resolveFixed(ctx, account)
}

// resolveOperator reads the operator's context store-first with a
// best-effort cache fallback, and repairs dangling tenant/customer bindings
// by resetting the context to platform.
func (s *Service) resolveOperator(ctx context.Context, account *types.Account) (*types.ActiveContext, error) {
	ac, err := s.storage.GetActiveContext(ctx, account.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return platformContext(account.ID), nil
		}

		// The store, not the row, failed. The cache copy is never
		// authoritative but keeps the operator working.
		if cached, cacheErr := s.cache.Get(ctx, account.ID); cacheErr == nil && cached != nil {
			s.logger.Warnf("tenant store unavailable, serving cached context for %s: %v", account.ID, err)
			return cached, nil
		}

		s.logger.Warnf("tenant store unavailable and no cached context for %s, defaulting to platform: %v", account.ID, err)
		return platformContext(account.ID), nil
	}

	dangling, err := s.bindingIsDangling(ctx, ac)
	if err != nil {
		return nil, err
	}
	if dangling {
		return s.repairContext(ctx, account.ID)
	}

	if err := s.cache.Set(ctx, account.ID, ac); err != nil {
		s.logger.Debugf("failed to cache context for %s: %v", account.ID, err)
	}

	return ac, nil
}

// bindingIsDangling reports whether the context references a tenant or
// customer that no longer exists.
func (s *Service) bindingIsDangling(ctx context.Context, ac *types.ActiveContext) (bool, error) {
	switch ac.Scope {
	case types.ScopeTenant:
		if ac.TenantID == nil {
			return true, nil
		}
		t, err := s.storage.GetTenantByID(ctx, *ac.TenantID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return true, nil
			}
			return false, fmt.Errorf("failed to validate tenant binding: %w", err)
		}
		return t.Status == types.TenantStatusDeleted, nil
	case types.ScopeCustomer:
		if ac.CustomerID == nil {
			return true, nil
		}
		if _, err := s.storage.GetCustomerByID(ctx, *ac.CustomerID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return true, nil
			}
			return false, fmt.Errorf("failed to validate customer binding: %w", err)
		}
		return false, nil
	default:
		return false, nil
	}
}

// repairContext resets a dangling context to platform. This is
// self-correction, not an error: it is traced in logs only, never audited,
// and the caller always receives a usable platform context.
func (s *Service) repairContext(ctx context.Context, accountID string) (*types.ActiveContext, error) {
	s.logger.Warnf("dangling context binding for account %s, resetting to platform", accountID)

	repaired := platformContext(accountID)
	if err := s.storage.UpsertActiveContext(ctx, repaired); err != nil {
		s.logger.Errorf("failed to persist context repair for %s: %v", accountID, err)
	}
	if err := s.cache.Delete(ctx, accountID); err != nil {
		s.logger.Debugf("failed to invalidate cached context for %s: %v", accountID, err)
	}

	return repaired, nil
}

// resolveFixed resolves a non-operator account. The bootstrapped row is the
// primary source; the owning tenant/customer relation is the legacy
// fallback for accounts provisioned before bootstrap existed.
func (s *Service) resolveFixed(ctx context.Context, account *types.Account) (*types.ActiveContext, error) {
	ac, err := s.storage.GetActiveContext(ctx, account.ID)
	if err == nil {
		return ac, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load fixed context: %w", err)
	}

	switch account.Role {
	case types.RoleTenantAdmin, types.RoleTenantMember:
		if account.TenantID != nil {
			return &types.ActiveContext{
				AccountID: account.ID,
				Scope:     types.ScopeTenant,
				TenantID:  account.TenantID,
			}, nil
		}
	case types.RoleCustomerUser:
		customer, err := s.storage.GetCustomerByAccountID(ctx, account.ID)
		if err == nil {
			return &types.ActiveContext{
				AccountID:  account.ID,
				Scope:      types.ScopeCustomer,
				CustomerID: &customer.ID,
			}, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up customer record: %w", err)
		}
	}

	return nil, types.ErrContextNotConfigured
}

func (s *Service) Switch(ctx context.Context, accountID string, scope types.Scope, tenantID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "contexts.Service.Switch")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrUnauthorized
		}
		return fmt.Errorf("failed to load account: %w", err)
	}

	if account.Role != types.RolePlatformOperator {
		s.logger.Security().AuthzFailure(accountID, "context_switch")
		return types.ErrForbidden
	}

	ac := &types.ActiveContext{AccountID: accountID, Scope: scope}

	switch scope {
	case types.ScopePlatform:
		// Always allowed, clears both bindings.
	case types.ScopeTenant:
		if tenantID == "" {
			return fmt.Errorf("%w: tenant id is required", types.ErrPreconditionFailed)
		}
		tenant, err := s.storage.GetTenantByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to validate target tenant: %w", err)
		}
		if tenant.Status == types.TenantStatusDeleted {
			return types.ErrNotFound
		}
		ac.TenantID = &tenantID
	case types.ScopeCustomer:
		if customerID == "" {
			return fmt.Errorf("%w: customer id is required", types.ErrPreconditionFailed)
		}
		if _, err := s.storage.GetCustomerByID(ctx, customerID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return fmt.Errorf("failed to validate target customer: %w", err)
		}
		ac.CustomerID = &customerID
	default:
		return fmt.Errorf("%w: unknown scope %q", types.ErrPreconditionFailed, scope)
	}

	if err := s.storage.UpsertActiveContext(ctx, ac); err != nil {
		return fmt.Errorf("failed to switch context: %w", err)
	}

	if err := s.cache.Set(ctx, accountID, ac); err != nil {
		s.logger.Debugf("failed to sync cached context for %s: %v", accountID, err)
	}

	s.logger.Security().ContextSwitch(accountID, string(scope), tenantID)
	s.auditor.Record(ctx, accountID, audit.ActionContextSwitch, ac.TenantID, map[string]string{
		"scope":       string(scope),
		"tenant_id":   tenantID,
		"customer_id": customerID,
	})

	return nil
}

func (s *Service) EnsureFixedContext(ctx context.Context, accountID string, role types.Role, tenantID, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "contexts.Service.EnsureFixedContext")
	defer span.End()

	ac := &types.ActiveContext{AccountID: accountID}

	switch role {
	case types.RolePlatformOperator:
		// Operators manage their context through the switcher.
		return nil
	case types.RoleTenantAdmin, types.RoleTenantMember:
		if tenantID == "" {
			return fmt.Errorf("%w: tenant id is required for role %s", types.ErrPreconditionFailed, role)
		}
		ac.Scope = types.ScopeTenant
		ac.TenantID = &tenantID
	case types.RoleCustomerUser:
		if customerID == "" {
			return fmt.Errorf("%w: customer id is required for role %s", types.ErrPreconditionFailed, role)
		}
		ac.Scope = types.ScopeCustomer
		ac.CustomerID = &customerID
	default:
		return fmt.Errorf("%w: unknown role %q", types.ErrPreconditionFailed, role)
	}

	if err := s.storage.UpsertActiveContext(ctx, ac); err != nil {
		return fmt.Errorf("failed to bootstrap fixed context: %w", err)
	}

	if err := s.cache.Set(ctx, accountID, ac); err != nil {
		s.logger.Debugf("failed to cache bootstrapped context for %s: %v", accountID, err)
	}

	return nil
}

func platformContext(accountID string) *types.ActiveContext {
	return &types.ActiveContext{
		AccountID: accountID,
		Scope:     types.ScopePlatform,
	}
}
