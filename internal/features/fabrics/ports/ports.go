package ports

import (
	"context"

	"lc-atelier/internal/features/fabrics/domain"
)

// FabricService defines the primary port for catalog operations.
type FabricService interface {
	AddFabric(ctx context.Context, name string, price int) (*domain.Fabric, error)
	GetFabric(ctx context.Context, id string) (*domain.Fabric, error)
	ListFabrics(ctx context.Context) ([]domain.Fabric, error)
}

// FabricRepository defines the secondary port for catalog storage.
// GetByID returns (nil, nil) when no such fabric exists.
type FabricRepository interface {
	Create(ctx context.Context, fabric *domain.Fabric) error
	GetByID(ctx context.Context, id string) (*domain.Fabric, error)
	ListActive(ctx context.Context) ([]domain.Fabric, error)
}
