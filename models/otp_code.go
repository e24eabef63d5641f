package models

// OTPCode is a rendered view of an [OTPItem] at a given instant.
type OTPCode struct {
	Item OTPItem
	// Code is the 6-digit TOTP or the error sentinel.
	Code string
	// Remaining is the number of seconds the code stays valid, 1..30.
	Remaining int
}
