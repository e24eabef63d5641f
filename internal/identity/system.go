package identity

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"time"
)

// commandTimeout bounds the wmic/ioreg lookups.
const commandTimeout = 5 * time.Second

type systemSource struct {
	// run executes an external command and returns its stdout.
	run func(ctx context.Context, name string, args ...string) (string, error)
	// readFile reads a whole file.
	readFile func(path string) ([]byte, error)
}

// NewSystemSource returns the [Source] for the operating system the binary
// was built for.
func NewSystemSource() Source {
	return &systemSource{
		run:      runCommand,
		readFile: os.ReadFile,
	}
}

// HardwareID implements [Source] using the per-OS lookup compiled into this
// binary (see hwid_*.go).
func (s *systemSource) HardwareID() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	return s.platformHardwareID(ctx)
}

// Username implements [Source]. On Windows the DOMAIN\ prefix is dropped so
// the value matches the bare login name.
func (s *systemSource) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("lookup current user: %w", err)
	}

	name := u.Username
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "", ErrNoUsername
	}
	return name, nil
}

// Hostname implements [Source].
func (s *systemSource) Hostname() (string, error) {
	return os.Hostname()
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("run %s: %w", name, err)
	}
	return string(out), nil
}
