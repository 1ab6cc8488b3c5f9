package service

import (
	"context"
	"fmt"

	"lc-atelier/internal/features/measurements/domain"
	"lc-atelier/internal/features/measurements/ports"
)

// ProfileServiceImpl implements ports.ProfileService.
type ProfileServiceImpl struct {
	store ports.ProfileStore
}

// NewProfileService creates a new ProfileServiceImpl.
func NewProfileService(store ports.ProfileStore) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		store: store,
	}
}

// Save creates or overwrites the measurement profile for (phone, label).
func (s *ProfileServiceImpl) Save(ctx context.Context, phone, label string, measurements []byte) (*domain.Profile, error) {
	profile, err := domain.NewProfile(phone, label, measurements)
	if err != nil {
		return nil, err
	}

	if err := s.store.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("service: failed to save measurement profile: %w", err)
	}

	return profile, nil
}

// List returns all profiles saved for a customer phone.
func (s *ProfileServiceImpl) List(ctx context.Context, phone string) ([]domain.Profile, error) {
	profiles, err := s.store.ListByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list measurement profiles: %w", err)
	}

	return profiles, nil
}
