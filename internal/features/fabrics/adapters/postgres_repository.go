package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lc-atelier/internal/features/fabrics/domain"

	"github.com/jmoiron/sqlx"
)

// PostgresFabricRepository implements ports.FabricRepository on Postgres.
type PostgresFabricRepository struct {
	db *sqlx.DB
}

// NewPostgresFabricRepository creates a new PostgresFabricRepository.
func NewPostgresFabricRepository(db *sqlx.DB) *PostgresFabricRepository {
	return &PostgresFabricRepository{db: db}
}

// Create inserts a catalog entry.
func (r *PostgresFabricRepository) Create(ctx context.Context, fabric *domain.Fabric) error {
	const query = `
		INSERT INTO fabrics (id, name, price, active, created_at)
		VALUES (:id, :name, :price, :active, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fabric); err != nil {
		return fmt.Errorf("failed to insert fabric: %w", err)
	}

	return nil
}

// GetByID retrieves a fabric by id, or (nil, nil) when absent.
func (r *PostgresFabricRepository) GetByID(ctx context.Context, id string) (*domain.Fabric, error) {
	const query = `
		SELECT id, name, price, active, created_at
		FROM fabrics
		WHERE id = $1`

	var fabric domain.Fabric
	if err := r.db.GetContext(ctx, &fabric, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch fabric %s: %w", id, err)
	}

	return &fabric, nil
}

// ListActive returns active catalog entries, alphabetically.
func (r *PostgresFabricRepository) ListActive(ctx context.Context) ([]domain.Fabric, error) {
	const query = `
		SELECT id, name, price, active, created_at
		FROM fabrics
		WHERE active
		ORDER BY name`

	var fabrics []domain.Fabric
	if err := r.db.SelectContext(ctx, &fabrics, query); err != nil {
		return nil, fmt.Errorf("failed to list fabrics: %w", err)
	}

	return fabrics, nil
}
