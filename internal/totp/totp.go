// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package totp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// Period is the time step in seconds.
	Period = 30
	// Digits is the code length.
	Digits = 6
	// ErrorCode is shown in place of a code that could not be computed.
	ErrorCode = "ERROR"
)

var (
	generateOpts = totp.ValidateOpts{
		Period:    Period,
		Skew:      0,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
)

// GenerateCode returns the code for the current time step, or [ErrorCode].
func GenerateCode(secret string) string {
	return GenerateCodeAt(secret, time.Now())
}

// GenerateCodeAt returns the code for the step containing t, or [ErrorCode].
func GenerateCodeAt(secret string, t time.Time) string {
	code, err := Code(secret, t)
	if err != nil {
		return ErrorCode
	}
	return code
}

// Code returns the code for the step containing t. The secret is used as
// stored; surrounding whitespace, lower case and missing padding are
// tolerated, anything else outside the Base32 alphabet is
// [ErrInvalidSecret].
func Code(secret string, t time.Time) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", ErrEmptySecret
	}

	code, err := totp.GenerateCodeCustom(secret, t, generateOpts)
	if err != nil {
		if errors.Is(err, otp.ErrValidateSecretInvalidBase32) {
			return "", ErrInvalidSecret
		}
		return "", fmt.Errorf("generate code: %w", err)
	}
	return code, nil
}

// RemainingSeconds returns how long the code for now stays valid, in the
// range [1, 30]. It is for display only.
func RemainingSeconds(now time.Time) int {
	return Period - int(floorMod(now.Unix(), Period))
}

// NormalizeSecret removes spaces and hyphens and upper-cases the rest.
// It does not check the Base32 alphabet.
func NormalizeSecret(raw string) string {
	s := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	return strings.ToUpper(s)
}

// floorMod keeps the result non-negative for instants before the epoch.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
