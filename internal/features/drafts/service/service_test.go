package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lc-atelier/internal/features/drafts/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDraftRepository struct {
	mock.Mock
}

func (m *mockDraftRepository) Put(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *mockDraftRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDraftRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

const draftTTL = 30 * 24 * time.Hour

func TestDraftService_Save(t *testing.T) {
	repo := new(mockDraftRepository)
	svc := NewDraftService(repo, draftTTL)

	savedAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return savedAt }

	var stored []byte
	repo.On("Put", mock.Anything, "wizard-abc", mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).([]byte)
		}).
		Return(nil)

	err := svc.Save(context.Background(), "wizard-abc", json.RawMessage(`{"serviceType":"fully-custom"}`))
	require.NoError(t, err)

	var envelope domain.Envelope
	require.NoError(t, json.Unmarshal(stored, &envelope))
	assert.Equal(t, domain.SchemaVersion, envelope.Version)
	assert.Equal(t, savedAt, envelope.SavedAt)
	assert.JSONEq(t, `{"serviceType":"fully-custom"}`, string(envelope.Draft))
}

func TestDraftService_Save_BlankKey(t *testing.T) {
	repo := new(mockDraftRepository)
	svc := NewDraftService(repo, draftTTL)

	err := svc.Save(context.Background(), "   ", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrInvalidDraftKey)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func envelopeBytes(t *testing.T, version int, savedAt time.Time) []byte {
	t.Helper()
	data, err := json.Marshal(domain.Envelope{
		Version: version,
		SavedAt: savedAt,
		Draft:   json.RawMessage(`{"serviceType":"brand-article"}`),
	})
	require.NoError(t, err)
	return data
}

func TestDraftService_Load(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("LiveDraft", func(t *testing.T) {
		repo := new(mockDraftRepository)
		svc := NewDraftService(repo, draftTTL)
		svc.now = func() time.Time { return now }

		repo.On("Get", mock.Anything, "wizard-abc").
			Return(envelopeBytes(t, domain.SchemaVersion, now.Add(-24*time.Hour)), nil)

		envelope, err := svc.Load(context.Background(), "wizard-abc")
		require.NoError(t, err)
		assert.JSONEq(t, `{"serviceType":"brand-article"}`, string(envelope.Draft))
	})

	t.Run("Missing", func(t *testing.T) {
		repo := new(mockDraftRepository)
		svc := NewDraftService(repo, draftTTL)

		repo.On("Get", mock.Anything, "wizard-abc").Return(nil, nil)

		_, err := svc.Load(context.Background(), "wizard-abc")
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("ExpiredDraftIsDeleted", func(t *testing.T) {
		repo := new(mockDraftRepository)
		svc := NewDraftService(repo, draftTTL)
		svc.now = func() time.Time { return now }

		repo.On("Get", mock.Anything, "wizard-abc").
			Return(envelopeBytes(t, domain.SchemaVersion, now.Add(-31*24*time.Hour)), nil)
		repo.On("Delete", mock.Anything, "wizard-abc").Return(nil)

		_, err := svc.Load(context.Background(), "wizard-abc")
		assert.ErrorIs(t, err, ErrDraftNotFound)
		repo.AssertCalled(t, "Delete", mock.Anything, "wizard-abc")
	})

	t.Run("OutdatedSchemaIsDeleted", func(t *testing.T) {
		repo := new(mockDraftRepository)
		svc := NewDraftService(repo, draftTTL)
		svc.now = func() time.Time { return now }

		repo.On("Get", mock.Anything, "wizard-abc").
			Return(envelopeBytes(t, domain.SchemaVersion+1, now.Add(-time.Hour)), nil)
		repo.On("Delete", mock.Anything, "wizard-abc").Return(nil)

		_, err := svc.Load(context.Background(), "wizard-abc")
		assert.ErrorIs(t, err, ErrDraftNotFound)
		repo.AssertCalled(t, "Delete", mock.Anything, "wizard-abc")
	})

	t.Run("CorruptEnvelope", func(t *testing.T) {
		repo := new(mockDraftRepository)
		svc := NewDraftService(repo, draftTTL)

		repo.On("Get", mock.Anything, "wizard-abc").Return([]byte(`not json`), nil)

		_, err := svc.Load(context.Background(), "wizard-abc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("StoreError", func(t *testing.T) {
		repo := new(mockDraftRepository)
		svc := NewDraftService(repo, draftTTL)

		repo.On("Get", mock.Anything, "wizard-abc").Return(nil, errors.New("connection refused"))

		_, err := svc.Load(context.Background(), "wizard-abc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDraftNotFound)
	})
}

func TestDraftService_Clear(t *testing.T) {
	repo := new(mockDraftRepository)
	svc := NewDraftService(repo, draftTTL)

	repo.On("Delete", mock.Anything, "wizard-abc").Return(nil)

	assert.NoError(t, svc.Clear(context.Background(), "wizard-abc"))
	repo.AssertExpectations(t)
}
