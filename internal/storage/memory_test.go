package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/card-history-server/internal/config"
)

func TestMemorySelectionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySelectionStore()

	_, found, err := store.Get(ctx, "phone-a")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "phone-a", "7"))
	require.NoError(t, store.Set(ctx, "phone-b", "9"))

	cardID, found, err := store.Get(ctx, "phone-a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "7", cardID)

	require.NoError(t, store.Set(ctx, "phone-a", "8"))
	cardID, _, _ = store.Get(ctx, "phone-a")
	assert.Equal(t, "8", cardID)

	require.NoError(t, store.Clear(ctx, "phone-a"))
	_, found, _ = store.Get(ctx, "phone-a")
	assert.False(t, found)

	cardID, found, _ = store.Get(ctx, "phone-b")
	assert.True(t, found)
	assert.Equal(t, "9", cardID)
}

func TestCellKey(t *testing.T) {
	assert.Equal(t, "@amic_selected_card:default", cellKey("default"))
}

func TestNewStorage_Memory(t *testing.T) {
	store, err := NewStorage(&config.Config{SelectionStore: config.SelectionStoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemorySelectionStore{}, store.Selection)
	assert.NoError(t, store.Close())
}

func TestNewStorage_RedisBadURL(t *testing.T) {
	_, err := NewStorage(&config.Config{SelectionStore: config.SelectionStoreRedis, RedisURL: "not a url"})
	assert.Error(t, err)
}
