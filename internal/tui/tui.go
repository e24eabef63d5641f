// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of easy-otp: the live
// code list with countdown, search, copy to clipboard, manual and URI
// enrollment, edit, delete, QR display and plaintext export and import.
//
// The UI only talks to [service.OTPService]; it never touches the store or
// the key directly.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/service"
)

// Config holds the capabilities detected at startup.
type Config struct {
	// Clipboard enables copying codes. When false the code is shown in the
	// status line instead.
	Clipboard bool
}

// TUI runs the bubbletea program.
type TUI struct {
	program *tea.Program
	logger  *logger.Logger
}

// New builds the program. It does not start it.
func New(ctx context.Context, services *service.Services, cfg Config, log *logger.Logger) *TUI {
	log = log.WithComponent("tui")

	var copyFn func(string) error
	if cfg.Clipboard {
		copyFn = clipboard.WriteAll
	}

	model := newAppModel(ctx, services, copyFn, log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	return &TUI{program: program, logger: log}
}

// Tick delivers a clock tick to the program. It blocks until the program
// reads it and returns immediately once the program has exited.
func (t *TUI) Tick(now time.Time) {
	t.program.Send(tickMsg(now))
}

// Run blocks until the user quits or ctx is canceled.
func (t *TUI) Run() error {
	_, err := t.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	t.logger.Debug().Msg("tui stopped")
	return nil
}
