package identity

import "errors"

var (
	// ErrNoHardwareID is returned by a [Source] when the platform exposes
	// no usable identifier.
	ErrNoHardwareID = errors.New("hardware id not available")
	// ErrNoUsername is returned by a [Source] when the login name is empty.
	ErrNoUsername = errors.New("username not available")
)
