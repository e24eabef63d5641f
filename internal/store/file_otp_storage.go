// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/easy-otp/internal/crypto"
	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/utils"
	"github.com/MKhiriev/easy-otp/internal/validators"
	"github.com/MKhiriev/easy-otp/models"
)

// fileOTPStorage is the default implementation of [OTPStorage]: one sealed
// JSON document (2-space indent) at path.
type fileOTPStorage struct {
	path      string
	sealer    crypto.Sealer
	validator validators.Validator
	backupIDs *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewFileOTPStorage constructs an [OTPStorage] for the file at path. Nothing
// is read or created until the first call.
func NewFileOTPStorage(path string, sealer crypto.Sealer, log *logger.Logger) OTPStorage {
	return &fileOTPStorage{
		path:      path,
		sealer:    sealer,
		validator: validators.NewOTPItemValidator(),
		backupIDs: utils.NewUUIDGenerator(),
		logger:    log.WithComponent("store"),
	}
}

func (s *fileOTPStorage) Path() string {
	return s.path
}

func (s *fileOTPStorage) Open(ctx context.Context) ([]models.OTPItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	token, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.OTPItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	plaintext, err := s.sealer.Open(bytes.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	items, err := decodeItems(plaintext, formatJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	return items, nil
}

func (s *fileOTPStorage) Load(ctx context.Context) []models.OTPItem {
	items, err := s.Open(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to load items, showing an empty list")
		return []models.OTPItem{}
	}
	return items
}

func (s *fileOTPStorage) Save(ctx context.Context, items []models.OTPItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	plaintext, err := encodeItems(items, formatJSON)
	if err != nil {
		return err
	}

	token, err := s.sealer.Seal(plaintext)
	if err != nil {
		return fmt.Errorf("seal store: %w", err)
	}

	if err = utils.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err = utils.WriteFileAtomic(s.path, token, utils.FilePerm); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	s.logger.Debug().Int("items", len(items)).Msg("store saved")
	return nil
}

func (s *fileOTPStorage) Add(ctx context.Context, item models.OTPItem) error {
	if err := s.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	return s.mutate(ctx, func(items []models.OTPItem) []models.OTPItem {
		return append(items, item)
	})
}

func (s *fileOTPStorage) Update(ctx context.Context, oldName string, item models.OTPItem) error {
	if err := s.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	return s.mutate(ctx, func(items []models.OTPItem) []models.OTPItem {
		for i := range items {
			if items[i].Name == oldName {
				items[i] = item
				break
			}
		}
		return items
	})
}

func (s *fileOTPStorage) Delete(ctx context.Context, name string) error {
	return s.mutate(ctx, func(items []models.OTPItem) []models.OTPItem {
		kept := items[:0]
		for _, it := range items {
			if it.Name != name {
				kept = append(kept, it)
			}
		}
		return kept
	})
}

func (s *fileOTPStorage) ExportPlaintext(ctx context.Context, path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	items, err := s.Open(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	data, err := encodeItems(items, formatFor(path))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err = utils.WriteFileAtomic(path, data, utils.FilePerm); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	s.logger.Info().Int("items", len(items)).Msg("items exported in plaintext")
	return nil
}

func (s *fileOTPStorage) ImportPlaintext(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	incoming, err := decodeItems(data, formatFor(path))
	if err != nil {
		return 0, fmt.Errorf("import: %w: %w", ErrInvalidPlaintext, err)
	}
	err = s.validator.Validate(ctx, incoming,
		validators.FieldItems,
		validators.FieldName,
		validators.FieldSecret,
	)
	if err != nil {
		return 0, fmt.Errorf("import: %w: %w", ErrInvalidPlaintext, err)
	}

	added := 0
	err = s.mutate(ctx, func(items []models.OTPItem) []models.OTPItem {
		names := make(map[string]struct{}, len(items)+len(incoming))
		for _, it := range items {
			names[it.Name] = struct{}{}
		}

		for _, it := range incoming {
			if _, exists := names[it.Name]; exists {
				continue
			}
			names[it.Name] = struct{}{}
			items = append(items, it)
			added++
		}
		return items
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("added", added).Int("skipped", len(incoming)-added).Msg("items imported")
	return added, nil
}

// mutate runs one load-modify-save cycle. A store that exists but cannot be
// opened is treated as empty, like Load, after it has been moved aside with
// backup so the next save does not destroy it.
func (s *fileOTPStorage) mutate(ctx context.Context, fn func([]models.OTPItem) []models.OTPItem) error {
	items, err := s.Open(ctx)
	if err != nil {
		if !errors.Is(err, ErrDecrypt) && !errors.Is(err, ErrCorrupted) {
			return err
		}

		backupPath, bErr := s.backup()
		if bErr != nil {
			return fmt.Errorf("keep unreadable store: %w", bErr)
		}
		s.logger.Warn().Err(err).Str("backup", backupPath).Msg("unreadable store moved aside")
		items = []models.OTPItem{}
	}

	return s.Save(ctx, fn(items))
}

// backup renames the current file to <path>.<uuidv7>.bak.
func (s *fileOTPStorage) backup() (string, error) {
	backupPath := fmt.Sprintf("%s.%s.bak", s.path, s.backupIDs.Generate())
	if err := os.Rename(s.path, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}
