package identity

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWMICUUID(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{
			name: "typical output",
			out:  "UUID                                  \r\n4C4C4544-0042-3510-8052-B4C04F4E5A32  \r\n\r\n",
			want: "4C4C4544-0042-3510-8052-B4C04F4E5A32",
		},
		{name: "header only", out: "UUID\r\n", wantErr: true},
		{name: "empty", out: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWMICUUID(tt.out)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoHardwareID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIORegUUID(t *testing.T) {
	out := `+-o J316sAP  <class IOPlatformExpertDevice, id 0x100000202>
    {
      "IOPlatformSerialNumber" = "C02XXXXXX"
      "IOPlatformUUID" = "6C1B0F1E-2B6C-5A4E-9B1A-0F1E2B6C5A4E"
    }`

	got, err := parseIORegUUID(out)
	require.NoError(t, err)
	assert.Equal(t, "6C1B0F1E-2B6C-5A4E-9B1A-0F1E2B6C5A4E", got)

	_, err = parseIORegUUID(`"IOPlatformSerialNumber" = "C02"`)
	assert.ErrorIs(t, err, ErrNoHardwareID)
}

func TestReadMachineID(t *testing.T) {
	files := map[string]string{
		"/etc/machine-id":          "",
		"/var/lib/dbus/machine-id": "0123456789abcdef\n",
	}
	readFile := func(p string) ([]byte, error) {
		v, ok := files[p]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(v), nil
	}

	got, err := readMachineID(readFile, machineIDPaths)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", got)

	files["/etc/machine-id"] = "primary-id\n"
	got, err = readMachineID(readFile, machineIDPaths)
	require.NoError(t, err)
	assert.Equal(t, "primary-id", got)
}

func TestReadMachineID_NoneReadable(t *testing.T) {
	readFile := func(string) ([]byte, error) { return nil, errors.New("denied") }

	_, err := readMachineID(readFile, machineIDPaths)
	assert.ErrorIs(t, err, ErrNoHardwareID)
}
