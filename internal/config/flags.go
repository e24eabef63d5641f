package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-dir          directory holding the encrypted store
//	-file         store file name inside -dir
//	-cipher       fernet | aes-gcm
//	-log-level    debug, info, warn, error
//	-log-file     JSON log file path
//	-tick         countdown redraw interval (e.g. "1s", "500ms")
//	-no-clipboard disable clipboard integration
//	-c/-config    json file path with configs
//	-version      print build info and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("easyotp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		dir            string
		file           string
		cipher         string
		logLevel       string
		logFile        string
		tickInterval   time.Duration
		noClipboard    bool
		jsonConfigPath string
		showVersion    bool
	)

	fs.StringVar(&dir, "dir", "", "Directory holding the encrypted store")
	fs.StringVar(&file, "file", "", "Store file name")
	fs.StringVar(&cipher, "cipher", "", "Store cipher: fernet or aes-gcm")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&tickInterval, "tick", 0, "Countdown redraw interval (e.g., 1s)")
	fs.BoolVar(&noClipboard, "no-clipboard", false, "Disable clipboard integration")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&showVersion, "version", false, "Print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Dir:    dir,
			File:   file,
			Cipher: cipher,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		UI: UI{
			TickInterval: tickInterval,
			NoClipboard:  noClipboard,
		},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}
