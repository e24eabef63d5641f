package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/easy-otp/internal/crypto"
)

const (
	defaultDirName      = ".easyotp"
	defaultStoreFile    = "secrets.enc"
	defaultLogFile      = "easyotp.log"
	defaultLogLevel     = "info"
	defaultTickInterval = time.Second
)

// defaultConfig mirrors the historical layout: ~/.easyotp/secrets.enc
// sealed with Fernet.
func defaultConfig() *StructuredConfig {
	dir := defaultDirName
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, defaultDirName)
	}

	return &StructuredConfig{
		Storage: Storage{
			Dir:    dir,
			File:   defaultStoreFile,
			Cipher: crypto.CipherFernet,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
		UI: UI{
			TickInterval: defaultTickInterval,
		},
	}
}
