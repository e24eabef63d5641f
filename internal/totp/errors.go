package totp

import "errors"

var (
	// ErrEmptySecret is returned for an empty or whitespace-only secret.
	ErrEmptySecret = errors.New("empty secret")
	// ErrInvalidSecret is returned when the secret is not valid Base32.
	ErrInvalidSecret = errors.New("invalid base32 secret")
)
