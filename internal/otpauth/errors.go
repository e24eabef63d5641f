package otpauth

import "errors"

var (
	// ErrUnsupportedURI is returned for anything that is not an
	// otpauth://totp/ URI (other schemes, HOTP).
	ErrUnsupportedURI = errors.New("unsupported otpauth uri")
	// ErrMissingQuery is returned for a URI without a query part.
	ErrMissingQuery = errors.New("otpauth uri has no query")
	// ErrEmptyItem is returned when an item has nothing to encode.
	ErrEmptyItem = errors.New("item has no name or secret")
)
