package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lc-atelier/internal/core/cache"
	"lc-atelier/internal/core/logger"
	"lc-atelier/internal/features/fabrics/domain"
	"lc-atelier/internal/features/fabrics/ports"

	"go.uber.org/zap"
)

const (
	fabricListCacheKey = "fabrics:active"
	fabricListCacheTTL = 5 * time.Minute
)

// CachedFabricRepository decorates a FabricRepository with a read-through
// cache for the catalog listing. Cache failures degrade to the underlying
// repository; they never fail the request.
type CachedFabricRepository struct {
	inner ports.FabricRepository
	cache cache.Cache
}

// NewCachedFabricRepository creates a new CachedFabricRepository.
func NewCachedFabricRepository(inner ports.FabricRepository, c cache.Cache) *CachedFabricRepository {
	return &CachedFabricRepository{
		inner: inner,
		cache: c,
	}
}

// Create inserts the fabric and invalidates the cached listing.
func (r *CachedFabricRepository) Create(ctx context.Context, fabric *domain.Fabric) error {
	if err := r.inner.Create(ctx, fabric); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, fabricListCacheKey); err != nil {
		logger.Get().Warn("Failed to invalidate fabric cache", zap.Error(err))
	}

	return nil
}

// GetByID delegates to the underlying repository. Single-fabric reads are
// rare enough that only the listing is cached.
func (r *CachedFabricRepository) GetByID(ctx context.Context, id string) (*domain.Fabric, error) {
	return r.inner.GetByID(ctx, id)
}

// ListActive serves the listing from cache when possible.
func (r *CachedFabricRepository) ListActive(ctx context.Context) ([]domain.Fabric, error) {
	if data, err := r.cache.Get(ctx, fabricListCacheKey); err == nil {
		var fabrics []domain.Fabric
		if err := json.Unmarshal(data, &fabrics); err == nil {
			return fabrics, nil
		}
		// Corrupt entry: fall through to the repository and rewrite it.
	} else if !errors.Is(err, cache.ErrNotFound) {
		logger.Get().Warn("Fabric cache read failed", zap.Error(err))
	}

	fabrics, err := r.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(fabrics); err == nil {
		if err := r.cache.Set(ctx, fabricListCacheKey, data, fabricListCacheTTL); err != nil {
			logger.Get().Warn("Fabric cache write failed", zap.Error(err))
		}
	}

	return fabrics, nil
}
