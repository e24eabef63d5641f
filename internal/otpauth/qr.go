package otpauth

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/MKhiriev/easy-otp/models"
)

// DefaultPNGSize is used by [PNG] for a non-positive size.
const DefaultPNGSize = 256

// QR renders the provisioning URI of item as a terminal QR code made of
// half-block characters, dark modules on a light background.
func QR(item models.OTPItem) (string, error) {
	if item.Name == "" || item.Secret == "" {
		return "", ErrEmptyItem
	}

	q, err := qrcode.New(Format(item), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("build qr code: %w", err)
	}
	return q.ToSmallString(false), nil
}

// PNG renders the provisioning URI of item as a size x size PNG image.
func PNG(item models.OTPItem, size int) ([]byte, error) {
	if item.Name == "" || item.Secret == "" {
		return nil, ErrEmptyItem
	}
	if size <= 0 {
		size = DefaultPNGSize
	}

	png, err := qrcode.Encode(Format(item), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}
