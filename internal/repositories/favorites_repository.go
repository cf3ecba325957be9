package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"drink-coffee/models"
	"drink-coffee/pkg/kvstore"
	"drink-coffee/pkg/logger"
)

// favoritesKey is the durable mirror key holding the favorites snapshot as
// a JSON array of products.
const favoritesKey = "coffeeFavorites"

// FavoritesRepositoryInterface is the favorites set: a product is either a
// favorite or it is not, and toggling twice restores the original state.
type FavoritesRepositoryInterface interface {
	Toggle(product models.Product) bool
	IsFavorite(productID int) bool
	List() []models.Product
	Clear()
}

// FavoritesRepository keeps the favorites set in memory with cached product
// snapshots and mirrors every change to the durable key-value store.
type FavoritesRepository struct {
	logger *logger.Logger
	store  kvstore.Store

	mu        sync.Mutex
	favorites map[int]models.Product
	order     []int
}

// NewFavoritesRepository creates the store and loads the persisted snapshot
// once. A malformed snapshot is discarded and the mirror entry deleted; the
// user simply starts with no favorites.
func NewFavoritesRepository(store kvstore.Store, log *logger.Logger) *FavoritesRepository {
	r := &FavoritesRepository{
		logger:    log.WithComponent("favorites_repository"),
		store:     store,
		favorites: make(map[int]models.Product),
	}
	r.loadMirror()
	return r
}

// Toggle adds the product when absent and removes it when present. It
// returns the new membership state.
func (r *FavoritesRepository) Toggle(product models.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.favorites[product.ID]; ok {
		delete(r.favorites, product.ID)
		for i, id := range r.order {
			if id == product.ID {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		r.logger.Debug("Favorite removed", "product_id", product.ID)
		r.saveMirrorLocked()
		return false
	}

	r.favorites[product.ID] = product
	r.order = append(r.order, product.ID)
	r.logger.Debug("Favorite added", "product_id", product.ID)
	r.saveMirrorLocked()
	return true
}

// IsFavorite reports whether productID is in the set
func (r *FavoritesRepository) IsFavorite(productID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.favorites[productID]
	return ok
}

// List returns the favorite products in the order they were added
func (r *FavoritesRepository) List() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		if product, ok := r.favorites[id]; ok {
			out = append(out, product)
		}
	}
	return out
}

// Clear empties the set and the durable mirror; called on logout
func (r *FavoritesRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.favorites = make(map[int]models.Product)
	r.order = nil

	if err := r.store.Delete(context.Background(), favoritesKey); err != nil {
		r.logger.Warn("Failed to clear favorites mirror", "error", err)
	}
}

func (r *FavoritesRepository) loadMirror() {
	data, err := r.store.Get(context.Background(), favoritesKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return
	}
	if err != nil {
		r.logger.Warn("Failed to read favorites mirror", "error", err)
		return
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// Corrupt entry: drop it and start with an empty set
		r.logger.Warn("Discarding malformed favorites mirror", "error", err)
		if delErr := r.store.Delete(context.Background(), favoritesKey); delErr != nil {
			r.logger.Warn("Failed to delete malformed favorites mirror", "error", delErr)
		}
		return
	}

	for _, product := range products {
		if _, ok := r.favorites[product.ID]; ok {
			continue
		}
		r.favorites[product.ID] = product
		r.order = append(r.order, product.ID)
	}
	r.logger.Info("Favorites restored from mirror", "count", len(r.order))
}

func (r *FavoritesRepository) saveMirrorLocked() {
	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.favorites[id])
	}

	data, err := json.Marshal(products)
	if err != nil {
		r.logger.Error("Failed to encode favorites mirror", "error", err)
		return
	}
	if err := r.store.Set(context.Background(), favoritesKey, data); err != nil {
		r.logger.Warn("Failed to write favorites mirror", "error", err)
	}
}
