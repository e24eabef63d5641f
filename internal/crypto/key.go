// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/easy-otp/internal/identity"
)

const (
	// KeySize is the derived key length in bytes (256 bits).
	KeySize = 32

	// KDFIterations is the PBKDF2-HMAC-SHA256 iteration count.
	KDFIterations = 100_000
)

// kdfSalt is identical on every installation. This is a known weakness: the
// salt only domain-separates, the secrecy comes from the identity string.
// It must stay as is until a migration path exists, otherwise every store
// written so far becomes unreadable.
var kdfSalt = []byte("easyotp_salt_v1")

// Key is a store encryption key. It is recomputed on every start and never
// written to disk or logs.
type Key [KeySize]byte

// DeriveKey computes the store key from the machine and user identity:
//
//	PBKDF2-HMAC-SHA256("{hwid}:{username}", kdfSalt, 100000, 32)
//
// The result is deterministic for one machine and account and differs
// across machines or accounts.
func DeriveKey(id identity.Identity) Key {
	password := []byte(fmt.Sprintf("%s:%s", id.HardwareID, id.Username))

	var key Key
	copy(key[:], pbkdf2.Key(password, kdfSalt, KDFIterations, KeySize, sha256.New))
	return key
}

// String hides the key material from fmt and loggers.
func (k Key) String() string {
	return "crypto.Key(redacted)"
}

// GoString hides the key material from %#v.
func (k Key) GoString() string {
	return k.String()
}
