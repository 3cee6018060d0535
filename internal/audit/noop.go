// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
)

var _ AuditorInterface = (*NoopAuditor)(nil)

type NoopAuditor struct{}

func NewNoopAuditor() *NoopAuditor {
	return &NoopAuditor{}
}

func (a *NoopAuditor) Record(ctx context.Context, actorAccountID, action string, tenantID *string, details map[string]string) {
}
