package store

import (
	"errors"

	"github.com/MKhiriev/easy-otp/internal/crypto"
)

var (
	// ErrDecrypt is returned by Open when the file was sealed with another
	// key (another machine or account) or was modified.
	ErrDecrypt = crypto.ErrDecrypt

	// ErrCorrupted is returned by Open when the decrypted payload is not a
	// list of items.
	ErrCorrupted = errors.New("store content is corrupted")

	// ErrInvalidPlaintext is returned by ImportPlaintext when the file is
	// not a list of items with name and secret.
	ErrInvalidPlaintext = errors.New("invalid plaintext items file")

	// ErrEmptyPath is returned for an empty export or import path.
	ErrEmptyPath = errors.New("path is empty")
)
