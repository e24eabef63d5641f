package crypto

import "errors"

var (
	// ErrDecrypt is returned when a token cannot be authenticated or
	// decrypted with the current key.
	ErrDecrypt = errors.New("decryption failed")
	// ErrEncrypt is returned when sealing fails.
	ErrEncrypt = errors.New("encryption failed")
	// ErrUnknownCipher is returned by [NewSealer] for an unsupported name.
	ErrUnknownCipher = errors.New("unknown cipher")
)
