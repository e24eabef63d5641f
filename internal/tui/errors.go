// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/easy-otp/internal/crypto"
	"github.com/MKhiriev/easy-otp/internal/otpauth"
	"github.com/MKhiriev/easy-otp/internal/service"
	"github.com/MKhiriev/easy-otp/internal/store"
	"github.com/MKhiriev/easy-otp/internal/validators"
)

var (
	errInvalidSecretCode = errors.New("this item has an invalid secret, there is no code to copy")
	errClipboard         = errors.New("clipboard write failed")
)

// User-facing texts for errors the user can act on.
const (
	msgDecrypt         = "The store was encrypted on another machine or user account and cannot be read here."
	msgNotFound        = "File not found."
	msgPermission      = "Permission denied."
	msgInvalidURI      = "Not an otpauth://totp/ URI. HOTP and other schemes are not supported."
	msgMissingQuery    = "The URI has no parameters (expected ?secret=...)."
	msgInvalidSecret   = "The secret is not valid Base32 (letters A-Z and digits 2-7)."
	msgEmptyName       = "Name is required."
	msgEmptySecret     = "Secret is required."
	msgInvalidFile     = "The file is not a list of items with name and secret."
	msgEmptyFile       = "The file contains no items."
	msgEmptyPath       = "Enter a file path."
	msgItemNotFound    = "The item no longer exists."
	msgCorruptedStore  = "The store file is damaged and cannot be read."
	msgClipboardFailed = "Could not copy to the clipboard."
)

// humanizeError maps known errors to a sentence for the error overlay.
// Unknown errors are shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, errClipboard):
		return msgClipboardFailed
	case errors.Is(err, crypto.ErrDecrypt):
		return msgDecrypt
	case errors.Is(err, store.ErrCorrupted):
		return msgCorruptedStore
	case errors.Is(err, validators.ErrEmptyItems):
		return msgEmptyFile
	case errors.Is(err, store.ErrInvalidPlaintext):
		return msgInvalidFile
	case errors.Is(err, store.ErrEmptyPath):
		return msgEmptyPath
	case errors.Is(err, fs.ErrNotExist):
		return msgNotFound
	case errors.Is(err, fs.ErrPermission):
		return msgPermission
	case errors.Is(err, otpauth.ErrMissingQuery):
		return msgMissingQuery
	case errors.Is(err, service.ErrInvalidURI):
		return msgInvalidURI
	case errors.Is(err, service.ErrItemNotFound):
		return msgItemNotFound
	case errors.Is(err, validators.ErrInvalidSecret):
		return msgInvalidSecret
	case errors.Is(err, validators.ErrEmptyName):
		return msgEmptyName
	case errors.Is(err, validators.ErrEmptySecret):
		return msgEmptySecret
	}

	return err.Error()
}
