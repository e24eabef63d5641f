package service

import "errors"

var (
	ErrInvalidURI   = errors.New("invalid otpauth uri")
	ErrItemNotFound = errors.New("item not found")
)
