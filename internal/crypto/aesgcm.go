// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// aesGCMSealer implements [Sealer] with AES-256-GCM. The token is the
// standard base64 encoding of nonce (12 bytes) ‖ ciphertext ‖ tag.
type aesGCMSealer struct {
	gcm cipher.AEAD
}

// NewAESGCMSealer constructs an AES-256-GCM [Sealer] for key.
func NewAESGCMSealer(key Key) (Sealer, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &aesGCMSealer{gcm: gcm}, nil
}

// Seal implements [Sealer]. A fresh random nonce is generated per call.
func (a *aesGCMSealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, a.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrEncrypt, err)
	}

	// nonce || ciphertext
	blob := a.gcm.Seal(nonce, nonce, plaintext, nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(blob)))
	base64.StdEncoding.Encode(out, blob)
	return out, nil
}

// Open implements [Sealer].
func (a *aesGCMSealer) Open(token []byte) ([]byte, error) {
	blob := make([]byte, base64.StdEncoding.DecodedLen(len(token)))
	n, err := base64.StdEncoding.Decode(blob, token)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecrypt, err)
	}
	blob = blob[:n]

	nonceSize := a.gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// An error here almost always means a different machine or account.
	plaintext, err := a.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}
