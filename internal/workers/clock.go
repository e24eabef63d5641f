// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/easy-otp/internal/logger"
)

// ClockWorker calls sink on every interval boundary of the wall clock
// (whole seconds for the default interval), so countdowns change together
// with the real second and codes flip exactly at 30-second steps.
type ClockWorker struct {
	interval time.Duration
	sink     func(time.Time)
	logger   *logger.Logger

	done chan struct{}
	once sync.Once
}

// NewClockWorker constructs a ClockWorker. A non-positive interval means
// one second.
func NewClockWorker(interval time.Duration, sink func(time.Time), log *logger.Logger) *ClockWorker {
	if interval <= 0 {
		interval = time.Second
	}
	return &ClockWorker{
		interval: interval,
		sink:     sink,
		logger:   log.WithComponent("clock"),
		done:     make(chan struct{}),
	}
}

// Run implements [Worker]. Calling it more than once has no effect.
func (c *ClockWorker) Run(ctx context.Context) {
	c.once.Do(func() {
		go c.loop(ctx)
	})
}

// Done is closed once the worker has stopped.
func (c *ClockWorker) Done() <-chan struct{} {
	return c.done
}

func (c *ClockWorker) loop(ctx context.Context) {
	defer close(c.done)

	c.logger.Debug().Dur("interval", c.interval).Msg("clock started")
	defer c.logger.Debug().Msg("clock stopped")

	// align the first tick with the next boundary
	now := time.Now()
	align := time.NewTimer(now.Truncate(c.interval).Add(c.interval).Sub(now))
	defer align.Stop()

	select {
	case <-ctx.Done():
		return
	case t := <-align.C:
		c.sink(t)
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			c.sink(t)
		}
	}
}
