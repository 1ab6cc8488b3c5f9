package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lc-atelier/internal/features/drafts/domain"
	"lc-atelier/internal/features/drafts/ports"
)

var (
	// ErrDraftNotFound is returned when no live draft exists under the key.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrInvalidDraftKey is returned for blank draft keys.
	ErrInvalidDraftKey = errors.New("draft key is required")
)

// DraftServiceImpl implements ports.DraftService. A draft is a scoped
// resource: acquired on load, mutated by the wizard, and released by an
// explicit clear or by expiry.
type DraftServiceImpl struct {
	repo ports.DraftRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewDraftService creates a new DraftServiceImpl with the given retention window.
func NewDraftService(repo ports.DraftRepository, ttl time.Duration) *DraftServiceImpl {
	return &DraftServiceImpl{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Save stamps the draft payload with the current schema version and stores it.
func (s *DraftServiceImpl) Save(ctx context.Context, key string, draft json.RawMessage) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidDraftKey
	}

	envelope := domain.NewEnvelope(draft, s.now())

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("service: failed to marshal draft envelope: %w", err)
	}

	if err := s.repo.Put(ctx, key, data); err != nil {
		return fmt.Errorf("service: failed to store draft: %w", err)
	}

	return nil
}

// Load retrieves the draft under key, enforcing the expiry check even when
// the underlying store returned a value. Stale envelopes are deleted.
func (s *DraftServiceImpl) Load(ctx context.Context, key string) (*domain.Envelope, error) {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load draft: %w", err)
	}
	if data == nil {
		return nil, ErrDraftNotFound
	}

	var envelope domain.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("service: failed to unmarshal draft envelope: %w", err)
	}

	if envelope.Stale(s.now(), s.ttl) {
		// Release the expired resource instead of handing it out.
		_ = s.repo.Delete(ctx, key)
		return nil, ErrDraftNotFound
	}

	return &envelope, nil
}

// Clear removes the draft under key.
func (s *DraftServiceImpl) Clear(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("service: failed to clear draft: %w", err)
	}

	return nil
}
