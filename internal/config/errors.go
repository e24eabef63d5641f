package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates an empty directory, a file name
	// containing a path separator or an unknown cipher.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUIConfigs indicates a tick interval outside [100ms, 30s].
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
