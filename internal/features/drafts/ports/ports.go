package ports

import (
	"context"
	"encoding/json"

	"lc-atelier/internal/features/drafts/domain"
)

// DraftService defines the primary port for draft persistence.
type DraftService interface {
	Save(ctx context.Context, key string, draft json.RawMessage) error
	Load(ctx context.Context, key string) (*domain.Envelope, error)
	Clear(ctx context.Context, key string) error
}

// DraftRepository defines the secondary port for draft storage.
// Get returns (nil, nil) when the key is absent.
type DraftRepository interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
