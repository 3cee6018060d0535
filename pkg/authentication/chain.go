// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
)

// ChainVerifier tries each verifier in order and accepts the first success.
// It lets impersonation credentials authenticate alongside regular OIDC
// tokens on the same endpoints.
type ChainVerifier struct {
	verifiers []TokenVerifierInterface
}

func NewChainVerifier(verifiers ...TokenVerifierInterface) *ChainVerifier {
	return &ChainVerifier{verifiers: verifiers}
}

func (c *ChainVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	var lastErr error
	for _, v := range c.verifiers {
		userID, err := v.VerifyToken(ctx, rawToken)
		if err == nil {
			return userID, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no verifiers configured")
	}
	return "", lastErr
}
