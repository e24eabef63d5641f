package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/easy-otp/models"
)

type format int

const (
	formatJSON format = iota
	formatYAML
)

// formatFor picks the plaintext format from the file extension.
func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// record mirrors models.OTPItem with required keys detectable: a missing
// name or secret is an error, a missing issuer is "".
type record struct {
	Name   *string `json:"name" yaml:"name"`
	Secret *string `json:"secret" yaml:"secret"`
	Issuer string  `json:"issuer" yaml:"issuer"`
}

var errMissingKey = errors.New("missing name or secret")

func encodeItems(items []models.OTPItem, f format) ([]byte, error) {
	if items == nil {
		items = []models.OTPItem{}
	}

	switch f {
	case formatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return data, nil
	}
}

func decodeItems(data []byte, f format) ([]models.OTPItem, error) {
	var records []record

	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	items := make([]models.OTPItem, 0, len(records))
	for i, r := range records {
		if r.Name == nil || r.Secret == nil {
			return nil, fmt.Errorf("item %d: %w", i, errMissingKey)
		}
		items = append(items, models.OTPItem{
			Name:   *r.Name,
			Secret: *r.Secret,
			Issuer: r.Issuer,
		})
	}
	return items, nil
}
