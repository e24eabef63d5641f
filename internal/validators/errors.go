package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName     = errors.New("name is required")
	ErrEmptySecret   = errors.New("secret is required")
	ErrInvalidSecret = errors.New("secret is not valid base32")
	ErrEmptyItems    = errors.New("items list cannot be empty")
)
