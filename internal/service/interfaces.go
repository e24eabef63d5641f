package service

import (
	"context"
	"time"

	"github.com/MKhiriev/easy-otp/internal/otpauth"
	"github.com/MKhiriev/easy-otp/models"
)

// OTPService is the only entry point the UI uses to reach the store. Every
// call runs under one mutex, so load-modify-save cycles never interleave.
type OTPService interface {
	// List returns the stored items, or an empty list when the store cannot
	// be read.
	List(ctx context.Context) []models.OTPItem

	// Codes returns every item with its code and remaining seconds at now.
	Codes(ctx context.Context, now time.Time) []models.OTPCode

	// Add normalizes the secret, validates the item and appends it.
	Add(ctx context.Context, item models.OTPItem) error

	// AddFromURI parses an otpauth://totp/ URI and adds the item. The
	// decoded key is returned so callers can warn about unsupported
	// algorithm, digits or period values.
	AddFromURI(ctx context.Context, uri string) (otpauth.Key, error)

	// Update replaces the first item named oldName.
	Update(ctx context.Context, oldName string, item models.OTPItem) error

	// Delete removes every item named name.
	Delete(ctx context.Context, name string) error

	// Export writes all items UNENCRYPTED to path.
	Export(ctx context.Context, path string) error

	// Import merges items from a plaintext file and returns how many were
	// added.
	Import(ctx context.Context, path string) (int, error)

	// QR renders the provisioning URI of the first item named name.
	QR(ctx context.Context, name string) (string, error)

	// SaveQR writes the QR code of the first item named name as a PNG to
	// path. The parent directory must exist.
	SaveQR(ctx context.Context, name, path string) error

	// StorePath returns the encrypted store location.
	StorePath() string
}

// AppInfoService exposes build metadata to the UI.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
