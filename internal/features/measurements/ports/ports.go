package ports

import (
	"context"

	"lc-atelier/internal/features/measurements/domain"
)

// ProfileService defines the primary port for measurement profiles.
type ProfileService interface {
	Save(ctx context.Context, phone, label string, measurements []byte) (*domain.Profile, error)
	List(ctx context.Context, phone string) ([]domain.Profile, error)
}

// ProfileStore defines the secondary port for profile storage.
type ProfileStore interface {
	// Upsert inserts the profile, or overwrites the measurements when the
	// (phone, label) pair already exists.
	Upsert(ctx context.Context, profile *domain.Profile) error
	ListByPhone(ctx context.Context, phone string) ([]domain.Profile, error)
}
