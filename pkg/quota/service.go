// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package quota

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/canonical/tenant-context-service/internal/audit"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
	"github.com/canonical/tenant-context-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	auditor audit.AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	auditor audit.AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Check(ctx context.Context, tenantID string, resource ResourceType, contextTag string) error {
	ctx, span := s.tracer.Start(ctx, "quota.Service.Check")
	defer span.End()

	limit, err := s.effectiveLimit(ctx, tenantID, resource)
	if err != nil {
		return err
	}

	if limit <= Unlimited {
		return nil
	}

	usage, err := s.countUsage(ctx, tenantID, resource)
	if err != nil {
		return err
	}

	if usage < limit {
		return nil
	}

	details := map[string]string{
		"resource": string(resource),
		"current":  strconv.FormatInt(usage, 10),
		"limit":    strconv.FormatInt(limit, 10),
	}
	if contextTag != "" {
		details["context"] = contextTag
	}
	actorID, _ := authentication.GetUserID(ctx)
	s.auditor.Record(ctx, actorID, audit.ActionQuotaDenied, &tenantID, details)

	return fmt.Errorf("%w: %s limit of %d reached", types.ErrLimitExceeded, resource, limit)
}

func (s *Service) CheckAndReserve(ctx context.Context, tenantID string, resource ResourceType, contextTag string, create func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "quota.Service.CheckAndReserve")
	defer span.End()

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.Check(txCtx, tenantID, resource, contextTag); err != nil {
			return err
		}
		return create(txCtx)
	})
}

func (s *Service) Report(ctx context.Context, tenantID string) ([]Usage, error) {
	ctx, span := s.tracer.Start(ctx, "quota.Service.Report")
	defer span.End()

	resources := []ResourceType{ResourceSeats, ResourceClients, ResourceDeals, ResourceTickets}

	report := make([]Usage, 0, len(resources))
	for _, resource := range resources {
		limit, err := s.effectiveLimit(ctx, tenantID, resource)
		if err != nil {
			return nil, err
		}
		usage, err := s.countUsage(ctx, tenantID, resource)
		if err != nil {
			return nil, err
		}
		report = append(report, Usage{Resource: resource, Current: usage, Limit: max(limit, 0)})
	}

	return report, nil
}

// effectiveLimit resolves the limit for one resource. Plan-level structured
// limits win; a tenant without a plan falls back to its two legacy scalar
// overrides, which cover only seats and clients. Everything else is
// unlimited under the fallback.
func (s *Service) effectiveLimit(ctx context.Context, tenantID string, resource ResourceType) (int64, error) {
	limits, err := s.storage.GetPlanLimitsByTenantID(ctx, tenantID)
	if err == nil {
		switch resource {
		case ResourceSeats:
			return limits.MaxSeats, nil
		case ResourceClients:
			return limits.MaxClients, nil
		case ResourceDeals:
			return limits.MaxDeals, nil
		case ResourceTickets:
			return limits.MaxTickets, nil
		default:
			return 0, fmt.Errorf("unknown resource type %q", resource)
		}
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, fmt.Errorf("failed to load plan limits: %w", err)
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, types.ErrNotFound
		}
		return 0, fmt.Errorf("failed to load tenant: %w", err)
	}

	switch resource {
	case ResourceSeats:
		if tenant.MaxSeats != nil {
			return *tenant.MaxSeats, nil
		}
	case ResourceClients:
		if tenant.MaxClients != nil {
			return *tenant.MaxClients, nil
		}
	}

	return Unlimited, nil
}

func (s *Service) countUsage(ctx context.Context, tenantID string, resource ResourceType) (int64, error) {
	switch resource {
	case ResourceSeats:
		return s.storage.CountMembershipsByTenantID(ctx, tenantID)
	case ResourceClients:
		return s.storage.CountCustomersByTenantID(ctx, tenantID)
	case ResourceDeals:
		return s.storage.CountDealsByTenantID(ctx, tenantID)
	case ResourceTickets:
		return s.storage.CountTicketsByTenantID(ctx, tenantID)
	default:
		return 0, fmt.Errorf("unknown resource type %q", resource)
	}
}
