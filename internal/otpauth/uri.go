// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otpauth reads and writes otpauth://totp/ provisioning URIs (the
// text inside an authenticator QR code) and renders them back as QR codes.
package otpauth

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/easy-otp/models"
)

// Prefix is the only scheme and OTP type accepted.
const Prefix = "otpauth://totp/"

// Defaults assumed by the code generator.
const (
	DefaultAlgorithm = "SHA1"
	DefaultDigits    = 6
	DefaultPeriod    = 30
)

// Key is a decoded provisioning URI. Algorithm, Digits and Period are
// informational: codes are always generated with the defaults.
type Key struct {
	Item      models.OTPItem
	Algorithm string
	Digits    int
	Period    int
}

// IsStandard reports whether the URI asks for the parameters codes are
// actually generated with.
func (k Key) IsStandard() bool {
	return strings.EqualFold(k.Algorithm, DefaultAlgorithm) &&
		k.Digits == DefaultDigits &&
		k.Period == DefaultPeriod
}

// Parse extracts name, secret and issuer from uri. Anything it cannot read
// yields false, never a panic.
func Parse(uri string) (models.OTPItem, bool) {
	key, err := Decode(uri)
	if err != nil {
		return models.OTPItem{}, false
	}
	return key.Item, true
}

// Decode parses uri of the form
//
//	otpauth://totp/[Issuer:]Account?secret=...&issuer=...
//
// The label is split on the first ':' into issuer and account; an encoded
// %3A separates them when the label has no literal ':'. The query
// is split on '&' and each pair on the first '='; pairs without '=' are
// ignored. An issuer parameter overrides the label issuer. Label and values
// are percent-decoded; text that does not unescape is kept as is.
func Decode(uri string) (Key, error) {
	rest, ok := strings.CutPrefix(uri, Prefix)
	if !ok {
		return Key{}, ErrUnsupportedURI
	}

	label, query, ok := strings.Cut(rest, "?")
	if !ok {
		return Key{}, ErrMissingQuery
	}

	key := Key{
		Algorithm: DefaultAlgorithm,
		Digits:    DefaultDigits,
		Period:    DefaultPeriod,
	}

	if issuer, account, found := strings.Cut(label, ":"); found {
		key.Item.Issuer = unescapePath(issuer)
		key.Item.Name = unescapePath(account)
	} else if issuer, account, found := strings.Cut(unescapePath(label), ":"); found {
		// encoded %3A separator
		key.Item.Issuer = issuer
		key.Item.Name = account
	} else {
		key.Item.Name = unescapePath(label)
	}

	for _, pair := range strings.Split(query, "&") {
		k, v, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		v = unescapeQuery(v)

		switch k {
		case "secret":
			key.Item.Secret = v
		case "issuer":
			key.Item.Issuer = v
		case "algorithm":
			key.Algorithm = strings.ToUpper(v)
		case "digits":
			if n, err := strconv.Atoi(v); err == nil {
				key.Digits = n
			}
		case "period":
			if n, err := strconv.Atoi(v); err == nil {
				key.Period = n
			}
		}
	}

	return key, nil
}

// Format is the inverse of [Parse]. Decode(Format(item)).Item == item for
// every item with spaces or '&' in its fields, and for ':' as long as the
// item has an issuer. Without an issuer an escaped ':' in the name reads
// back as the issuer separator.
func Format(item models.OTPItem) string {
	label := escapeLabel(item.Name)
	if item.Issuer != "" {
		label = escapeLabel(item.Issuer) + ":" + label
	}

	q := url.Values{}
	q.Set("secret", item.Secret)
	if item.Issuer != "" {
		q.Set("issuer", item.Issuer)
	}

	return Prefix + label + "?" + q.Encode()
}

// escapeLabel escapes ':' too, which PathEscape keeps.
func escapeLabel(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), ":", "%3A")
}

func unescapePath(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}

func unescapeQuery(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}
