//go:build !linux && !windows && !darwin

package identity

import "context"

func (s *systemSource) platformHardwareID(_ context.Context) (string, error) {
	return "", ErrNoHardwareID
}
