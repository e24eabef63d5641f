// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/otpauth"
	"github.com/MKhiriev/easy-otp/internal/store"
	"github.com/MKhiriev/easy-otp/internal/totp"
	"github.com/MKhiriev/easy-otp/internal/utils"
	"github.com/MKhiriev/easy-otp/internal/validators"
	"github.com/MKhiriev/easy-otp/models"
)

const otpServiceComponent = "otp-service"

type otpService struct {
	mu        sync.Mutex
	storage   store.OTPStorage
	validator validators.Validator
	logger    *logger.Logger
}

func NewOTPService(storage store.OTPStorage, logger *logger.Logger) OTPService {
	return &otpService{
		storage:   storage,
		validator: validators.NewOTPItemValidator(),
		logger:    logger.WithComponent(otpServiceComponent),
	}
}

func (s *otpService) List(ctx context.Context) []models.OTPItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.storage.Load(ctx)
}

func (s *otpService) Codes(ctx context.Context, now time.Time) []models.OTPCode {
	return BuildCodes(s.List(ctx), now)
}

func (s *otpService) Add(ctx context.Context, item models.OTPItem) error {
	item, err := s.prepare(ctx, item)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.storage.Add(ctx, item); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	s.log(ctx).Info().Msg("item added")
	return nil
}

func (s *otpService) AddFromURI(ctx context.Context, uri string) (otpauth.Key, error) {
	key, err := otpauth.Decode(strings.TrimSpace(uri))
	if err != nil {
		return otpauth.Key{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	// a URI without account name still carries the issuer
	if strings.TrimSpace(key.Item.Name) == "" {
		key.Item.Name = key.Item.Issuer
	}

	if err = s.Add(ctx, key.Item); err != nil {
		return otpauth.Key{}, err
	}
	if !key.IsStandard() {
		s.log(ctx).Warn().
			Str("algorithm", key.Algorithm).
			Int("digits", key.Digits).
			Int("period", key.Period).
			Msg("uri parameters differ from SHA1/6/30 and are ignored")
	}
	return key, nil
}

func (s *otpService) Update(ctx context.Context, oldName string, item models.OTPItem) error {
	item, err := s.prepare(ctx, item)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.storage.Update(ctx, oldName, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	s.log(ctx).Info().Msg("item updated")
	return nil
}

func (s *otpService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.log(ctx).Info().Msg("item deleted")
	return nil
}

func (s *otpService) Export(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.ExportPlaintext(ctx, path); err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	return nil
}

func (s *otpService) Import(ctx context.Context, path string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.storage.ImportPlaintext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import items: %w", err)
	}
	return n, nil
}

func (s *otpService) QR(ctx context.Context, name string) (string, error) {
	item, err := s.find(ctx, name)
	if err != nil {
		return "", err
	}
	return otpauth.QR(item)
}

// find returns the first item named name.
func (s *otpService) find(ctx context.Context, name string) (models.OTPItem, error) {
	for _, item := range s.List(ctx) {
		if item.Name == name {
			return item, nil
		}
	}
	return models.OTPItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
}

// log prefers the session logger attached to ctx.
func (s *otpService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContextOr(ctx, nil); l != nil {
		return l.WithComponent(otpServiceComponent)
	}
	return s.logger
}

func (s *otpService) SaveQR(ctx context.Context, name, path string) error {
	if strings.TrimSpace(path) == "" {
		return store.ErrEmptyPath
	}

	item, err := s.find(ctx, name)
	if err != nil {
		return err
	}

	png, err := otpauth.PNG(item, otpauth.DefaultPNGSize)
	if err != nil {
		return fmt.Errorf("save qr: %w", err)
	}
	if err = utils.WriteFileAtomic(path, png, utils.FilePerm); err != nil {
		return fmt.Errorf("save qr: %w", err)
	}

	s.log(ctx).Info().Msg("qr image saved")
	return nil
}

func (s *otpService) StorePath() string {
	return s.storage.Path()
}

// prepare trims the text fields, normalizes the secret and rejects items
// the code generator cannot use.
func (s *otpService) prepare(ctx context.Context, item models.OTPItem) (models.OTPItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Issuer = strings.TrimSpace(item.Issuer)
	item.Secret = totp.NormalizeSecret(item.Secret)

	err := s.validator.Validate(ctx, item,
		validators.FieldName,
		validators.FieldSecret,
		validators.FieldSecretEncoding,
	)
	if err != nil {
		return models.OTPItem{}, fmt.Errorf("invalid item: %w", err)
	}
	return item, nil
}
