package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lc-atelier/internal/core/cache"
)

const draftKeyPrefix = "draft:"

// RedisDraftRepository implements ports.DraftRepository on the cache port.
// Entries carry the retention TTL so abandoned drafts age out on their own.
type RedisDraftRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisDraftRepository creates a new RedisDraftRepository.
func NewRedisDraftRepository(c cache.Cache, ttl time.Duration) *RedisDraftRepository {
	return &RedisDraftRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Put stores the envelope bytes under the draft key with the retention TTL.
func (r *RedisDraftRepository) Put(ctx context.Context, key string, data []byte) error {
	if err := r.cache.Set(ctx, draftKeyPrefix+key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}

	return nil
}

// Get retrieves the envelope bytes, or (nil, nil) when absent.
func (r *RedisDraftRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.cache.Get(ctx, draftKeyPrefix+key)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	return data, nil
}

// Delete removes the draft.
func (r *RedisDraftRepository) Delete(ctx context.Context, key string) error {
	if err := r.cache.Delete(ctx, draftKeyPrefix+key); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
