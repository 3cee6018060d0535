// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package impersonation

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

type Service struct {
	storage  StorageInterface
	contexts ContextSwitcherInterface
	codec    *Codec
	holder   *CredentialHolder
	auditor  audit.AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	contexts ContextSwitcherInterface,
	codec *Codec,
	holder *CredentialHolder,
	auditor audit.AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		contexts: contexts,
		codec:    codec,
		holder:   holder,
		auditor:  auditor,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Impersonate(ctx context.Context, operatorID, targetAccountID, currentCredential string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "impersonation.Service.Impersonate")
	defer span.End()

	// A credential that parses as one of ours means the caller is already
	// inside an impersonation session. No nesting.
	if _, err := s.codec.Parse(currentCredential); err == nil {
		return nil, fmt.Errorf("%w: already impersonating", types.ErrPreconditionFailed)
	}

	operator, err := s.storage.GetAccountByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load operator account: %w", err)
	}

	if operator.Role != types.RolePlatformOperator {
		s.logger.Security().AuthzFailure(operatorID, "impersonate")
		return nil, types.ErrForbidden
	}

	target, err := s.storage.GetAccountByID(ctx, targetAccountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load target account: %w", err)
	}

	if target.Role == types.RolePlatformOperator {
		s.logger.Security().AuthzFailure(operatorID, "impersonate_operator")
		return nil, types.ErrForbidden
	}

	// The binding comes from the target's own associations, never from the
	// operator's current context.
	var tenantID, customerID *string
	switch target.Role {
	case types.RoleTenantAdmin, types.RoleTenantMember:
		if target.TenantID == nil {
			return nil, fmt.Errorf("%w: target account has no tenant", types.ErrPreconditionFailed)
		}
		tenantID = target.TenantID
	case types.RoleCustomerUser:
		customer, err := s.storage.GetCustomerByAccountID(ctx, target.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: target has no linked customer record", types.ErrPreconditionFailed)
			}
			return nil, fmt.Errorf("failed to load target customer record: %w", err)
		}
		customerID = &customer.ID
	default:
		return nil, fmt.Errorf("%w: cannot derive binding for role %q", types.ErrPreconditionFailed, target.Role)
	}

	sealed, err := s.holder.Seal(currentCredential)
	if err != nil {
		return nil, fmt.Errorf("failed to seal original credential: %w", err)
	}

	token, expiresAt, err := s.codec.Issue(target.ID, target.Role, tenantID, customerID, operatorID)
	if err != nil {
		return nil, err
	}

	// Impersonating a customer identity pins the operator's own context to
	// that customer so direct customer-area navigation resolves without
	// re-deriving the binding.
	if customerID != nil {
		if err := s.contexts.Switch(ctx, operatorID, types.ScopeCustomer, "", *customerID); err != nil {
			return nil, fmt.Errorf("failed to pin customer context: %w", err)
		}
	}

	boundTenant := ""
	if tenantID != nil {
		boundTenant = *tenantID
	}
	s.logger.Security().Impersonation(operatorID, target.ID, boundTenant)

	details := map[string]string{
		"target_account_id": target.ID,
		"target_role":       string(target.Role),
		"expires_at":        expiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if customerID != nil {
		details["customer_id"] = *customerID
	}
	s.auditor.Record(ctx, operatorID, audit.ActionImpersonateStart, tenantID, details)

	return &Session{
		Token:        token,
		ExpiresAt:    expiresAt,
		RestoreToken: sealed,
	}, nil
}

func (s *Service) Stop(ctx context.Context, accountID, restoreToken string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "impersonation.Service.Stop")
	defer span.End()

	if restoreToken == "" {
		// Nothing to restore, stop is idempotent.
		return "", nil
	}

	credential, err := s.holder.Open(restoreToken)
	if err != nil {
		s.logger.Debugf("failed to restore credential for %s: %v", accountID, err)
		return "", fmt.Errorf("%w: invalid restore token", types.ErrPreconditionFailed)
	}

	return credential, nil
}
