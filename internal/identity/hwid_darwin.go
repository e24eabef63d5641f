//go:build darwin

package identity

import "context"

func (s *systemSource) platformHardwareID(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	if err != nil {
		return "", err
	}
	return parseIORegUUID(out)
}
