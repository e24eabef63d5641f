package crypto

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/easy-otp/internal/identity"
)

func TestDeriveKey_DeterministicForSameIdentity(t *testing.T) {
	id := identity.Identity{HardwareID: "4c4c4544-0042-3510-8057-b4c04f4a4d32", Username: "alice"}

	k1 := DeriveKey(id)
	k2 := DeriveKey(id)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, Key{}, k1)
}

func TestDeriveKey_DifferentIdentityProducesDifferentKey(t *testing.T) {
	base := identity.Identity{HardwareID: "machine-a", Username: "alice"}

	tests := []struct {
		name string
		id   identity.Identity
	}{
		{name: "other machine", id: identity.Identity{HardwareID: "machine-b", Username: "alice"}},
		{name: "other user", id: identity.Identity{HardwareID: "machine-a", Username: "bob"}},
		// "machine-a:alice:" vs "machine-a:alice"
		{name: "separator shift", id: identity.Identity{HardwareID: "machine-a:alice", Username: ""}},
	}

	want := DeriveKey(base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, want, DeriveKey(tt.id))
		})
	}
}

func TestKey_StringIsRedacted(t *testing.T) {
	key := DeriveKey(identity.Identity{HardwareID: "hw", Username: "user"})

	assert.NotContains(t, fmt.Sprint(key), base64.URLEncoding.EncodeToString(key[:]))
	assert.Equal(t, "crypto.Key(redacted)", fmt.Sprintf("%v", key))
	assert.Equal(t, "crypto.Key(redacted)", fmt.Sprintf("%#v", key))
}
