package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/workers"
)

var ErrNilUI = errors.New("ui is nil")

type App struct {
	ui      UI
	workers *workers.Workers
	clock   *workers.ClockWorker
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ui UI, tickInterval time.Duration, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	log = log.WithComponent("app")
	clock := workers.NewClockWorker(tickInterval, ui.Tick, log)

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(clock),
		clock:   clock,
		logger:  log,
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())

	a.workers.Run(ctx)
	a.logger.Info().Msg("app started")

	err := a.ui.Run()

	cancel()
	<-a.clock.Done()
	a.logger.Info().Msg("app stopped")

	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
