package service

import (
	"testing"

	"drink-coffee/internal/repositories"
	"drink-coffee/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoritesService(t *testing.T) *FavoritesService {
	t.Helper()

	favoritesRepo := repositories.NewFavoritesRepository(kvstore.NewMemoryStore(), testLogger())
	return NewFavoritesService(testCatalog(t), favoritesRepo, testLogger())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	svc := newFavoritesService(t)

	for _, id := range []int{1, 5, 9} {
		before := svc.IsFavorite(id)

		favorite, err := svc.Toggle(id)
		require.NoError(t, err)
		assert.Equal(t, !before, favorite)

		favorite, err = svc.Toggle(id)
		require.NoError(t, err)
		assert.Equal(t, before, favorite, "double toggle restores the original state")
	}
}

func TestToggleUnknownProduct(t *testing.T) {
	svc := newFavoritesService(t)

	_, err := svc.Toggle(999)
	require.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Empty(t, svc.List())
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newFavoritesService(t)

	for _, id := range []int{3, 1, 7} {
		_, err := svc.Toggle(id)
		require.NoError(t, err)
	}

	favorites := svc.List()
	require.Len(t, favorites, 3)
	assert.Equal(t, 3, favorites[0].ID)
	assert.Equal(t, 1, favorites[1].ID)
	assert.Equal(t, 7, favorites[2].ID)
}
