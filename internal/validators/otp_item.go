package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/easy-otp/internal/totp"
	"github.com/MKhiriev/easy-otp/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldName requires a non-blank name.
	FieldName = "name"

	// FieldSecret requires a non-blank secret.
	FieldSecret = "secret"

	// FieldSecretEncoding requires a secret the code generator accepts.
	FieldSecretEncoding = "secret_encoding"

	// FieldItems requires a non-empty list, used for imports.
	FieldItems = "items"
)

// OTPItemValidator validates [models.OTPItem] values and lists of them.
//
// With no fields the default rule set is name and secret, which is what the
// store enforces on every write. Callers building an item from user input
// add FieldSecretEncoding so a typo is rejected instead of stored.
type OTPItemValidator struct {
}

// NewOTPItemValidator constructs a new OTPItemValidator
// and returns it as the Validator interface.
func NewOTPItemValidator() Validator {
	return &OTPItemValidator{}
}

func (v *OTPItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OTPItem:
		return v.validateItem(ctx, value, fields...)
	case *models.OTPItem:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateItem(ctx, *value, fields...)

	case []models.OTPItem:
		return v.validateItems(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OTPItemValidator) validateItem(_ context.Context, item models.OTPItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
		case FieldSecret:
			if strings.TrimSpace(item.Secret) == "" {
				return ErrEmptySecret
			}
		case FieldSecretEncoding:
			// the instant does not matter, only whether the secret decodes
			if _, err := totp.Code(item.Secret, time.Unix(0, 0)); err != nil {
				if errors.Is(err, totp.ErrEmptySecret) {
					return ErrEmptySecret
				}
				return ErrInvalidSecret
			}
		case FieldItems:
			// list-level rule, nothing to check on a single item
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OTPItemValidator) validateItems(ctx context.Context, items []models.OTPItem, fields ...string) error {
	itemFields := make([]string, 0, len(fields))
	requireItems := false
	for _, f := range fields {
		if f == FieldItems {
			requireItems = true
			continue
		}
		itemFields = append(itemFields, f)
	}

	if requireItems && len(items) == 0 {
		return ErrEmptyItems
	}

	for i, item := range items {
		if err := v.validateItem(ctx, item, itemFields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}
