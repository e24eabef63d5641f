package crypto

import "fmt"

// Cipher names understood by [NewSealer].
const (
	CipherFernet = "fernet"
	CipherAESGCM = "aes-gcm"
)

// NewSealer returns the [Sealer] registered under name.
func NewSealer(name string, key Key) (Sealer, error) {
	switch name {
	case CipherFernet, "":
		return NewFernetSealer(key), nil
	case CipherAESGCM:
		return NewAESGCMSealer(key)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}
