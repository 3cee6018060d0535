// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package impersonation

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// CredentialHolder seals the operator's original credential for the
// duration of an impersonation session. The sealed blob travels with the
// client, it is never written to the tenant store.
type CredentialHolder struct {
	key []byte
}

// NewCredentialHolder takes a base64-encoded 32-byte AES key.
func NewCredentialHolder(encodedKey string) (*CredentialHolder, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode credential encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("credential encryption key must be 32 bytes, got %d", len(key))
	}

	return &CredentialHolder{key: key}, nil
}

// Seal encrypts the credential with AES-GCM and returns a base64 blob of
// nonce followed by ciphertext.
func (h *CredentialHolder) Seal(credential string) (string, error) {
	block, err := aes.NewCipher(h.key)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(credential), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts a blob produced by Seal.
func (h *CredentialHolder) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode sealed credential: %w", err)
	}

	block, err := aes.NewCipher(h.key)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("sealed credential is truncated")
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to open sealed credential: %w", err)
	}

	return string(plaintext), nil
}
