// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for easy-otp.
// It is populated by merging defaults, an optional JSON file, environment
// variables (including a .env file) and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage controls where and how the encrypted store is written.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log controls the zerolog output of the client process.
	Log Log `envPrefix:"LOG_"`

	// UI holds terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion makes the binary print build info and exit (-version).
	ShowVersion bool
}

// Storage groups the settings of the encrypted record store.
type Storage struct {
	// Dir is the per-user directory holding the store, "~" is expanded.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// File is the store file name inside Dir.
	// Env: STORAGE_FILE
	File string `env:"FILE"`

	// Cipher selects the sealing scheme: "fernet" (default, readable by
	// earlier releases) or "aes-gcm".
	// Env: STORAGE_CIPHER
	Cipher string `env:"CIPHER"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the JSON log file. Defaults to easyotp.log inside Storage.Dir.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// UI holds terminal UI settings.
type UI struct {
	// TickInterval is how often the countdown is redrawn.
	// Env: UI_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// NoClipboard disables clipboard integration even when it is supported.
	// Env: UI_NO_CLIPBOARD
	NoClipboard bool `env:"NO_CLIPBOARD"`
}

// StorePath returns the absolute location of the encrypted store file.
func (cfg *StructuredConfig) StorePath() string {
	return filepath.Join(cfg.Storage.Dir, cfg.Storage.File)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources in increasing priority (later non-zero fields win):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables, with a .env file in the working directory
//  4. Command-line flags from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
