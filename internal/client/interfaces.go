// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "time"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by the app.
type UI interface {
	// Run blocks until the user quits.
	Run() error
	// Tick delivers the current time for countdown rendering.
	Tick(now time.Time)
}
