package adapters

import (
	"context"
	"testing"
	"time"

	"lc-atelier/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T, ttl time.Duration) (*RedisDraftRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisDraftRepository(c, ttl), mr
}

func TestRedisDraftRepository_PutGet(t *testing.T) {
	repo, mr := setupRepo(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "wizard-abc", []byte(`{"version":1}`)))

	// Stored under the draft namespace, not the raw key.
	assert.True(t, mr.Exists("draft:wizard-abc"))

	data, err := repo.Get(ctx, "wizard-abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), data)
}

func TestRedisDraftRepository_GetMissing(t *testing.T) {
	repo, _ := setupRepo(t, time.Hour)

	data, err := repo.Get(context.Background(), "never-saved")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisDraftRepository_Delete(t *testing.T) {
	repo, mr := setupRepo(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "wizard-abc", []byte(`{}`)))
	require.NoError(t, repo.Delete(ctx, "wizard-abc"))

	assert.False(t, mr.Exists("draft:wizard-abc"))

	// Deleting an absent key is not an error.
	assert.NoError(t, repo.Delete(ctx, "wizard-abc"))
}

func TestRedisDraftRepository_EntriesAgeOut(t *testing.T) {
	repo, mr := setupRepo(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "wizard-abc", []byte(`{}`)))

	mr.FastForward(2 * time.Hour)

	data, err := repo.Get(ctx, "wizard-abc")
	assert.NoError(t, err)
	assert.Nil(t, data)
}
