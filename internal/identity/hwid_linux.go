//go:build linux

package identity

import "context"

func (s *systemSource) platformHardwareID(_ context.Context) (string, error) {
	return readMachineID(s.readFile, machineIDPaths)
}
