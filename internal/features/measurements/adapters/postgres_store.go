package adapters

import (
	"context"
	"fmt"
	"time"

	"lc-atelier/internal/features/measurements/domain"

	"github.com/jmoiron/sqlx"
)

// PostgresProfileStore implements ports.ProfileStore on Postgres.
type PostgresProfileStore struct {
	db *sqlx.DB
}

// NewPostgresProfileStore creates a new PostgresProfileStore.
func NewPostgresProfileStore(db *sqlx.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

// Upsert inserts the profile or overwrites the measurements for an
// existing (phone, label) pair.
func (s *PostgresProfileStore) Upsert(ctx context.Context, profile *domain.Profile) error {
	const query = `
		INSERT INTO measurement_profiles (id, phone, label, measurements, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (phone, label) DO UPDATE
		SET measurements = EXCLUDED.measurements,
		    updated_at   = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		profile.ID,
		profile.Phone,
		profile.Label,
		[]byte(profile.Measurements),
		profile.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert measurement profile: %w", err)
	}

	return nil
}

// ListByPhone returns all profiles saved for a phone, newest first.
func (s *PostgresProfileStore) ListByPhone(ctx context.Context, phone string) ([]domain.Profile, error) {
	const query = `
		SELECT id, phone, label, measurements, created_at, updated_at
		FROM measurement_profiles
		WHERE phone = $1
		ORDER BY updated_at DESC`

	var profiles []domain.Profile
	if err := s.db.SelectContext(ctx, &profiles, query, phone); err != nil {
		return nil, fmt.Errorf("failed to list measurement profiles: %w", err)
	}

	return profiles, nil
}
