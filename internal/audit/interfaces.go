// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
)

// AuditorInterface is the append-only event sink consumed by every mutating
// operation. Implementations are fire-and-forget: a failed write must never
// fail the calling operation.
type AuditorInterface interface {
	Record(ctx context.Context, actorAccountID, action string, tenantID *string, details map[string]string)
}
