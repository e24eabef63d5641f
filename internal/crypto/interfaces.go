package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts and authenticates a whole serialized record set.
//
// Схема работы:
//
//	Key    = DeriveKey(identity)      (PBKDF2, never persisted)
//	Sealer = NewSealer(cipher, Key)
//	blob   = Seal(json)               (written to disk)
//	json   = Open(blob)               (ErrDecrypt on wrong key or tampering)
type Sealer interface {
	// Seal encrypts plaintext and returns a self-contained printable token.
	Seal(plaintext []byte) ([]byte, error)

	// Open verifies and decrypts a token produced by Seal with the same key.
	// Every failure (wrong key, truncated or modified token) is reported as
	// an error wrapping [ErrDecrypt].
	Open(token []byte) ([]byte, error)
}
