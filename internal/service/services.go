package service

import (
	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/store"
	"github.com/MKhiriev/easy-otp/models"
)

type Services struct {
	OTPService     OTPService
	AppInfoService AppInfoService
}

func NewServices(storage store.OTPStorage, info models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		OTPService:     NewOTPService(storage, logger),
		AppInfoService: NewAppInfoService(info),
	}
}
