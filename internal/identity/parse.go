package identity

import "strings"

// Linux machine-id locations, tried in order.
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// parseWMICUUID extracts the value line from `wmic csproduct get UUID`
// output: a "UUID" header followed by the value.
func parseWMICUUID(out string) (string, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return "", ErrNoHardwareID
	}

	id := strings.TrimSpace(lines[1])
	if id == "" {
		return "", ErrNoHardwareID
	}
	return id, nil
}

// parseIORegUUID finds the IOPlatformUUID entry in `ioreg -rd1 -c
// IOPlatformExpertDevice` output, e.g.
//
//	"IOPlatformUUID" = "6C1B0F1E-...."
func parseIORegUUID(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) > 3 && parts[3] != "" {
			return parts[3], nil
		}
	}
	return "", ErrNoHardwareID
}

// readMachineID returns the trimmed content of the first readable,
// non-empty machine-id file.
func readMachineID(readFile func(string) ([]byte, error), paths []string) (string, error) {
	for _, p := range paths {
		data, err := readFile(p)
		if err != nil {
			continue
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}
	return "", ErrNoHardwareID
}
