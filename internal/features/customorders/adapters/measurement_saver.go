package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"lc-atelier/internal/features/customorders/domain"
	measurementports "lc-atelier/internal/features/measurements/ports"
)

// ProfileSaver implements ports.MeasurementSaver on top of the
// measurements feature.
type ProfileSaver struct {
	profiles measurementports.ProfileService
}

// NewProfileSaver creates a new ProfileSaver.
func NewProfileSaver(profiles measurementports.ProfileService) *ProfileSaver {
	return &ProfileSaver{profiles: profiles}
}

// SaveProfile persists the draft's measurements under the customer's label.
func (s *ProfileSaver) SaveProfile(ctx context.Context, phone, label string, m domain.Measurements) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal measurements: %w", err)
	}

	if _, err := s.profiles.Save(ctx, phone, label, data); err != nil {
		return err
	}

	return nil
}
