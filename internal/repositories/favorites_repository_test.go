package repositories

import (
	"context"
	"testing"

	"drink-coffee/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesToggle(t *testing.T) {
	repo := NewFavoritesRepository(kvstore.NewMemoryStore(), testLogger())
	espresso := testProduct(1, "Espresso", "55.00")

	assert.True(t, repo.Toggle(espresso))
	assert.True(t, repo.IsFavorite(1))

	assert.False(t, repo.Toggle(espresso))
	assert.False(t, repo.IsFavorite(1))
	assert.Empty(t, repo.List())
}

func TestFavoritesSurviveRestart(t *testing.T) {
	kv := kvstore.NewMemoryStore()

	first := NewFavoritesRepository(kv, testLogger())
	first.Toggle(testProduct(1, "Espresso", "55.00"))
	first.Toggle(testProduct(2, "Latte", "60.00"))

	// A fresh repository over the same mirror sees the snapshot
	second := NewFavoritesRepository(kv, testLogger())
	favorites := second.List()
	require.Len(t, favorites, 2)
	assert.Equal(t, "Espresso", favorites[0].Name)
	assert.Equal(t, "60", favorites[1].Price.String())
}

func TestMalformedFavoritesMirrorIsDiscarded(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), "coffeeFavorites", []byte("{not json")))

	repo := NewFavoritesRepository(kv, testLogger())
	assert.Empty(t, repo.List())

	// The corrupt entry is gone from the mirror
	_, err := kv.Get(context.Background(), "coffeeFavorites")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestFavoritesClearDropsMirror(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	repo := NewFavoritesRepository(kv, testLogger())
	repo.Toggle(testProduct(1, "Espresso", "55.00"))

	repo.Clear()

	assert.Empty(t, repo.List())
	_, err := kv.Get(context.Background(), "coffeeFavorites")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}
