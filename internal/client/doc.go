// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It starts the background clock that drives the code countdown, runs the
// terminal UI and stops the workers once the UI exits.
package client
