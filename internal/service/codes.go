package service

import (
	"time"

	"github.com/MKhiriev/easy-otp/internal/totp"
	"github.com/MKhiriev/easy-otp/models"
)

// BuildCodes computes the code of every item at now. An item whose secret
// cannot be decoded gets totp.ErrorCode instead of failing the whole list.
func BuildCodes(items []models.OTPItem, now time.Time) []models.OTPCode {
	remaining := totp.RemainingSeconds(now)

	codes := make([]models.OTPCode, 0, len(items))
	for _, item := range items {
		codes = append(codes, models.OTPCode{
			Item:      item,
			Code:      totp.GenerateCodeAt(item.Secret, now),
			Remaining: remaining,
		})
	}
	return codes
}
