// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity gathers the ambient machine and user identity the store
// key is derived from.
//
// A [Source] reports the raw values for the running platform; [Resolve]
// applies the fallback chain so that callers always receive an [Identity]:
//
//	hardware id: platform id -> hostname -> "unknown"
//	username:    OS login name -> $USER -> $USERNAME -> "default"
//
// Resolved values are secret-adjacent: they are key material and must not be
// logged.
package identity

import (
	"os"
	"strings"

	"github.com/MKhiriev/easy-otp/internal/logger"
)

const (
	// DefaultUsername is used when no login name can be determined.
	DefaultUsername = "default"
	// UnknownHost is used when even the hostname lookup fails.
	UnknownHost = "unknown"
)

//go:generate mockgen -source=identity.go -destination=../mock/identity_source_mock.go -package=mock

// Source reports raw identity values of the current machine and account.
// Implementations return an error instead of guessing.
type Source interface {
	// HardwareID returns a stable platform identifier (machine-id on Linux,
	// product UUID on Windows, IOPlatformUUID on macOS).
	HardwareID() (string, error)
	// Username returns the OS login name.
	Username() (string, error)
	// Hostname returns the network host name.
	Hostname() (string, error)
}

// Identity is the resolved (hardware id, username) pair.
type Identity struct {
	HardwareID string
	Username   string
}

// String hides both values.
func (i Identity) String() string {
	return "identity(redacted)"
}

// Resolve queries src and substitutes fallbacks for every value it cannot
// provide. It never fails.
func Resolve(src Source, log *logger.Logger) Identity {
	return Identity{
		HardwareID: resolveHardwareID(src, log),
		Username:   resolveUsername(src, log),
	}
}

func resolveHardwareID(src Source, log *logger.Logger) string {
	hwid, err := src.HardwareID()
	if err == nil && strings.TrimSpace(hwid) != "" {
		return strings.TrimSpace(hwid)
	}
	log.Debug().Err(err).Msg("platform hardware id unavailable, using hostname")

	host, err := src.Hostname()
	if err == nil && host != "" {
		return host
	}
	log.Debug().Err(err).Msg("hostname unavailable, using placeholder")

	return UnknownHost
}

func resolveUsername(src Source, log *logger.Logger) string {
	name, err := src.Username()
	if err == nil && name != "" {
		return name
	}
	log.Debug().Err(err).Msg("login name unavailable, using environment")

	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}

	return DefaultUsername
}
