package service

import (
	"context"
	"errors"
	"testing"

	"lc-atelier/internal/features/fabrics/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFabricRepository struct {
	mock.Mock
}

func (m *mockFabricRepository) Create(ctx context.Context, fabric *domain.Fabric) error {
	args := m.Called(ctx, fabric)
	return args.Error(0)
}

func (m *mockFabricRepository) GetByID(ctx context.Context, id string) (*domain.Fabric, error) {
	args := m.Called(ctx, id)
	if fabric, ok := args.Get(0).(*domain.Fabric); ok {
		return fabric, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFabricRepository) ListActive(ctx context.Context) ([]domain.Fabric, error) {
	args := m.Called(ctx)
	if fabrics, ok := args.Get(0).([]domain.Fabric); ok {
		return fabrics, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestFabricService_AddFabric(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		repo := new(mockFabricRepository)
		svc := NewFabricService(repo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Fabric")).Return(nil)

		fabric, err := svc.AddFabric(context.Background(), "  Raw Silk ", 1500)
		require.NoError(t, err)

		assert.NotEmpty(t, fabric.ID)
		assert.Equal(t, "Raw Silk", fabric.Name)
		assert.Equal(t, 1500, fabric.Price)
		assert.True(t, fabric.Active)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		repo := new(mockFabricRepository)
		svc := NewFabricService(repo)

		_, err := svc.AddFabric(context.Background(), "", 1500)
		assert.ErrorIs(t, err, domain.ErrInvalidFabric)

		_, err = svc.AddFabric(context.Background(), "Chiffon", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidFabric)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := new(mockFabricRepository)
		svc := NewFabricService(repo)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		_, err := svc.AddFabric(context.Background(), "Chiffon", 1200)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save fabric")
	})
}

func TestFabricService_GetFabric(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo := new(mockFabricRepository)
		svc := NewFabricService(repo)
		repo.On("GetByID", mock.Anything, "fab-1").Return(&domain.Fabric{ID: "fab-1", Name: "Raw Silk"}, nil)

		fabric, err := svc.GetFabric(context.Background(), "fab-1")
		require.NoError(t, err)
		assert.Equal(t, "Raw Silk", fabric.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mockFabricRepository)
		svc := NewFabricService(repo)
		repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		_, err := svc.GetFabric(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrFabricNotFound)
	})
}

func TestFabricService_ListFabrics(t *testing.T) {
	repo := new(mockFabricRepository)
	svc := NewFabricService(repo)
	repo.On("ListActive", mock.Anything).Return([]domain.Fabric{
		{ID: "fab-1", Name: "Raw Silk", Price: 1500},
		{ID: "fab-2", Name: "Chiffon", Price: 1200},
	}, nil)

	fabrics, err := svc.ListFabrics(context.Background())
	require.NoError(t, err)
	assert.Len(t, fabrics, 2)
}
