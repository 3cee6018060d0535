// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package impersonation

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/tenant-context-service/internal/types"
)

const tokenIssuer = "tenant-context-service"

// Claims is the signed payload of an impersonation credential. The acting
// identity is the impersonated account; OriginalAccountID is the back
// reference to the operator who minted it.
type Claims struct {
	ActingAccountID   string     `json:"acting_account_id"`
	Role              types.Role `json:"role"`
	TenantID          *string    `json:"tenant_id,omitempty"`
	CustomerID        *string    `json:"customer_id,omitempty"`
	OriginalAccountID string     `json:"original_account_id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies impersonation credentials with a shared HS256
// secret. Expiry is enforced by the jwt parser on every Parse, there is no
// background sweep.
type Codec struct {
	secret   []byte
	lifetime time.Duration
}

func NewCodec(secret []byte, lifetime time.Duration) *Codec {
	return &Codec{
		secret:   secret,
		lifetime: lifetime,
	}
}

func (c *Codec) Issue(actingAccountID string, role types.Role, tenantID, customerID *string, originalAccountID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.lifetime)

	claims := &Claims{
		ActingAccountID:   actingAccountID,
		Role:              role,
		TenantID:          tenantID,
		CustomerID:        customerID,
		OriginalAccountID: originalAccountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   actingAccountID,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign impersonation token: %w", err)
	}

	return signed, expiresAt, nil
}

func (c *Codec) Parse(rawToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(rawToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse impersonation token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid impersonation token")
	}

	return claims, nil
}
