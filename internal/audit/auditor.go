// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
)

// Audit actions recorded by the engines.
const (
	ActionContextSwitch    = "context.switch"
	ActionImpersonateStart = "impersonation.start"
	ActionFlagOverrideSet  = "flags.override_set"
	ActionFlagOverrideClear = "flags.override_clear"
	ActionQuotaDenied      = "quota.denied"
	ActionCustomerCreated  = "customers.created"
)

type StorageInterface interface {
	InsertAuditEvent(ctx context.Context, e *types.AuditEvent) error
}

var _ AuditorInterface = (*Auditor)(nil)

type Auditor struct {
	storage StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAuditor(storage StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Auditor {
	return &Auditor{
		storage: storage,
		tracer:  tracer,
		logger:  logger,
	}
}

// Record appends one event. Write failures are logged and swallowed so that
// audit outages never block the primary operation.
func (a *Auditor) Record(ctx context.Context, actorAccountID, action string, tenantID *string, details map[string]string) {
	ctx, span := a.tracer.Start(ctx, "audit.Auditor.Record")
	defer span.End()

	e := &types.AuditEvent{
		ActorAccountID: actorAccountID,
		Action:         action,
		TenantID:       tenantID,
		Details:        details,
	}

	if err := a.storage.InsertAuditEvent(ctx, e); err != nil {
		a.logger.Errorf("failed to record audit event %q for %s: %v", action, actorAccountID, err)
	}
}
