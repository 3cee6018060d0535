// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// SignInEvent is the payload the identity provider posts after a
// successful sign-in.
type SignInEvent struct {
	AccountID string `json:"account_id" validate:"required"`
}
