// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

// Error taxonomy shared by every engine. All engines fail closed: ambiguous
// or missing state never defaults to an elevated or unrestricted outcome.
var (
	ErrUnauthorized         = errors.New("no valid acting identity")
	ErrForbidden            = errors.New("insufficient privilege")
	ErrNotFound             = errors.New("referenced entity does not exist")
	ErrPreconditionFailed   = errors.New("operation blocked by business rule")
	ErrUnknownFlag          = errors.New("unknown feature flag")
	ErrLimitExceeded        = errors.New("plan limit reached")
	ErrContextNotConfigured = errors.New("account has no resolvable context")
)
