package service

import (
	"context"
	"errors"
	"fmt"

	"lc-atelier/internal/features/fabrics/domain"
	"lc-atelier/internal/features/fabrics/ports"
)

// ErrFabricNotFound is returned when the fabric does not exist.
var ErrFabricNotFound = errors.New("fabric not found")

// FabricServiceImpl implements ports.FabricService.
type FabricServiceImpl struct {
	repo ports.FabricRepository
}

// NewFabricService creates a new FabricServiceImpl.
func NewFabricService(repo ports.FabricRepository) *FabricServiceImpl {
	return &FabricServiceImpl{
		repo: repo,
	}
}

// AddFabric creates and saves a new catalog entry.
func (s *FabricServiceImpl) AddFabric(ctx context.Context, name string, price int) (*domain.Fabric, error) {
	fabric, err := domain.NewFabric(name, price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, fabric); err != nil {
		return nil, fmt.Errorf("service: failed to save fabric: %w", err)
	}

	return fabric, nil
}

// GetFabric retrieves a fabric by id.
func (s *FabricServiceImpl) GetFabric(ctx context.Context, id string) (*domain.Fabric, error) {
	fabric, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get fabric: %w", err)
	}

	if fabric == nil {
		return nil, ErrFabricNotFound
	}

	return fabric, nil
}

// ListFabrics returns the active catalog entries.
func (s *FabricServiceImpl) ListFabrics(ctx context.Context) ([]domain.Fabric, error) {
	fabrics, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list fabrics: %w", err)
	}

	return fabrics, nil
}
