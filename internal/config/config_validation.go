// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/easy-otp/internal/crypto"
)

// Bounds of UI.TickInterval. Shorter intervals only burn CPU redrawing the
// same second.
const (
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Dir == "" || cfg.Storage.File == "" {
		return fmt.Errorf("%w: store location is empty", ErrInvalidStorageConfigs)
	}
	if strings.ContainsAny(cfg.Storage.File, `/\`) {
		return fmt.Errorf("%w: file %q must be a bare name", ErrInvalidStorageConfigs, cfg.Storage.File)
	}

	switch cfg.Storage.Cipher {
	case crypto.CipherFernet, crypto.CipherAESGCM:
	default:
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidStorageConfigs, cfg.Storage.Cipher)
	}

	if cfg.UI.TickInterval < minTickInterval || cfg.UI.TickInterval > maxTickInterval {
		return fmt.Errorf("%w: tick interval %s", ErrInvalidUIConfigs, cfg.UI.TickInterval)
	}

	return nil
}
