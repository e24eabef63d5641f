// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OTPItem is one enrolled TOTP credential.
//
// Name is the lookup key for update and delete. Secret is the Base32 shared
// secret, stored verbatim: callers normalize it before constructing the item.
// Issuer is an optional informational label (usually the service name).
type OTPItem struct {
	Name   string `json:"name" yaml:"name"`
	Secret string `json:"secret" yaml:"secret"`
	Issuer string `json:"issuer" yaml:"issuer"`
}

// Title returns "Issuer (Name)" when an issuer is set and Name otherwise.
func (i OTPItem) Title() string {
	if i.Issuer == "" {
		return i.Name
	}
	return i.Issuer + " (" + i.Name + ")"
}
