// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	contexts ContextBootstrapperInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleSignIn bootstraps the acting context for the account that just
// signed in. The role and bindings are read from the account record, not
// from the webhook payload, so a compromised identity provider cannot
// escalate an account into a scope it does not own.
func (s *Service) HandleSignIn(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleSignIn")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: unknown account", types.ErrNotFound)
		}
		return err
	}

	tenantID := ""
	if account.TenantID != nil {
		tenantID = *account.TenantID
	}

	customerID := ""
	if account.Role.IsCustomer() {
		customer, err := s.storage.GetCustomerByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: account has no linked customer record", types.ErrPreconditionFailed)
			}
			return err
		}
		customerID = customer.ID
	}

	if err := s.contexts.EnsureFixedContext(ctx, account.ID, account.Role, tenantID, customerID); err != nil {
		return err
	}

	s.logger.Debugf("bootstrapped context for account %s (%s)", account.ID, account.Role)

	return nil
}

func NewService(storage StorageInterface, contexts ContextBootstrapperInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.contexts = contexts

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
