// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package customers

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
	"github.com/canonical/tenant-context-service/pkg/quota"
)

const portalFlagKey = "client_portal"

type Service struct {
	storage StorageInterface
	flags   FlagCheckerInterface
	quota   QuotaCheckerInterface
	auditor audit.AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	flags FlagCheckerInterface,
	quotaChecker QuotaCheckerInterface,
	auditor audit.AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		flags:   flags,
		quota:   quotaChecker,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Create(ctx context.Context, actorID, tenantID, name, email string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.Create")
	defer span.End()

	if _, err := s.storage.GetTenantByID(ctx, tenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	enabled, err := s.flags.IsEnabled(ctx, tenantID, portalFlagKey)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, fmt.Errorf("%w: %s is disabled for this tenant", types.ErrForbidden, portalFlagKey)
	}

	var created *types.Customer
	err = s.quota.CheckAndReserve(ctx, tenantID, quota.ResourceClients, "customer_create", func(txCtx context.Context) error {
		c, err := s.storage.CreateCustomer(txCtx, &types.Customer{
			TenantID: tenantID,
			Name:     name,
			Email:    email,
		})
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionCustomerCreated, &tenantID, map[string]string{
		"customer_id": created.ID,
	})

	return created, nil
}

func (s *Service) Get(ctx context.Context, customerID string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.Get")
	defer span.End()

	customer, err := s.storage.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context, tenantID string) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.List")
	defer span.End()

	customers, err := s.storage.ListCustomersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

func (s *Service) LinkAccount(ctx context.Context, customerID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "customers.Service.LinkAccount")
	defer span.End()

	customer, err := s.storage.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to load customer: %w", err)
	}

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to load account: %w", err)
	}

	if !account.Role.IsCustomer() {
		return fmt.Errorf("%w: account role %s cannot hold a customer login", types.ErrPreconditionFailed, account.Role)
	}

	if err := s.storage.LinkCustomerAccount(ctx, customer.ID, account.ID); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("%w: account is already linked to a customer", types.ErrPreconditionFailed)
		}
		return fmt.Errorf("failed to link customer account: %w", err)
	}

	return nil
}
