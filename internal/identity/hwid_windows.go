//go:build windows

package identity

import "context"

func (s *systemSource) platformHardwareID(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "wmic", "csproduct", "get", "UUID")
	if err != nil {
		return "", err
	}
	return parseWMICUUID(out)
}
