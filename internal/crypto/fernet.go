// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
)

// fernetMaxAge disables token expiry in practice: stores are long-lived and
// the token timestamp is only the time of the last save.
const fernetMaxAge = 100 * 365 * 24 * time.Hour

// fernetSealer implements [Sealer] with the Fernet token format
// (AES-128-CBC + HMAC-SHA256, URL-safe base64). The first half of the key
// signs, the second half encrypts, so stores written by other Fernet
// implementations with the same derived key stay readable.
type fernetSealer struct {
	keys []*fernet.Key
}

// NewFernetSealer constructs a Fernet [Sealer] for key.
func NewFernetSealer(key Key) Sealer {
	fk := fernet.Key(key)
	return &fernetSealer{keys: []*fernet.Key{&fk}}
}

// Seal implements [Sealer].
func (f *fernetSealer) Seal(plaintext []byte) ([]byte, error) {
	tok, err := fernet.EncryptAndSign(plaintext, f.keys[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncrypt, err)
	}
	return tok, nil
}

// Open implements [Sealer]. fernet-go reports every failure as a nil message.
func (f *fernetSealer) Open(token []byte) ([]byte, error) {
	msg := fernet.VerifyAndDecrypt(token, fernetMaxAge, f.keys)
	if msg == nil {
		return nil, fmt.Errorf("%w: invalid fernet token", ErrDecrypt)
	}
	return msg, nil
}
