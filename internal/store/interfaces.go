// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the encrypted file holding every enrolled OTP item.
//
// The whole collection is the unit of encryption: each mutation loads the
// file, changes the list in memory and rewrites the file. The store does not
// lock; callers serialize access (see service.OTPService).
package store

import (
	"context"

	"github.com/MKhiriev/easy-otp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OTPStorage is the encrypted record store.
type OTPStorage interface {
	// Open reads and decrypts the store. A missing file is an empty
	// collection. A file that cannot be decrypted or parsed is reported
	// with ErrDecrypt or ErrCorrupted.
	Open(ctx context.Context) ([]models.OTPItem, error)

	// Load is Open for display paths: every failure is logged and yields
	// an empty collection.
	Load(ctx context.Context) []models.OTPItem

	// Save encrypts and atomically replaces the whole collection.
	Save(ctx context.Context, items []models.OTPItem) error

	// Add appends item. Names are not checked for collisions.
	Add(ctx context.Context, item models.OTPItem) error

	// Update replaces the first item named oldName. No match is not an error.
	Update(ctx context.Context, oldName string, item models.OTPItem) error

	// Delete removes every item named name.
	Delete(ctx context.Context, name string) error

	// ExportPlaintext writes the collection UNENCRYPTED to path, as YAML for
	// .yaml/.yml and JSON otherwise.
	ExportPlaintext(ctx context.Context, path string) error

	// ImportPlaintext merges items from a JSON or YAML file. Items whose
	// name is already present are skipped. Returns the number added.
	ImportPlaintext(ctx context.Context, path string) (int, error)

	// Path returns the store file location.
	Path() string
}
