package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidProfile is returned when a profile is missing its identity fields.
var ErrInvalidProfile = errors.New("measurement profile requires phone and label")

// Profile is a customer's saved measurement set, addressed by phone + label.
// Saving an existing label overwrites the previous measurements.
type Profile struct {
	ID           string          `json:"id" db:"id"`
	Phone        string          `json:"phone" db:"phone"`
	Label        string          `json:"label" db:"label"`
	Measurements json.RawMessage `json:"measurements" db:"measurements"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// NewProfile creates a new Profile and validates it.
func NewProfile(phone, label string, measurements json.RawMessage) (*Profile, error) {
	phone = strings.TrimSpace(phone)
	label = strings.TrimSpace(label)

	if phone == "" || label == "" {
		return nil, ErrInvalidProfile
	}

	now := time.Now().UTC()
	return &Profile{
		ID:           uuid.NewString(),
		Phone:        phone,
		Label:        label,
		Measurements: measurements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
