package repositories

import (
	"sync"

	"drink-coffee/models"
	"drink-coffee/pkg/logger"
)

// CartRepositoryInterface is the per-session cart store: at most one line
// per product id, quantity always >= 1 while the line exists.
type CartRepositoryInterface interface {
	AddOrIncrement(product models.Product) models.CartLine
	Decrement(productID int, forceRemove bool) (models.CartLine, bool)
	GetLine(productID int) (models.CartLine, bool)
	Lines() []models.CartLine
	DrainAll() []models.CartLine
	Clear()
}

// CartRepository keeps cart lines in memory. Insertion order is preserved
// so order snapshots list items the way the customer added them.
type CartRepository struct {
	logger *logger.Logger

	mu    sync.Mutex
	lines map[int]*models.CartLine
	order []int
}

// NewCartRepository creates an empty cart store
func NewCartRepository(log *logger.Logger) *CartRepository {
	return &CartRepository{
		logger: log.WithComponent("cart_repository"),
		lines:  make(map[int]*models.CartLine),
	}
}

// AddOrIncrement bumps the quantity of an existing line or creates a new
// line with quantity 1 from the given product snapshot. The snapshot is
// stored as-is: the price the customer saw is the price the line keeps.
func (r *CartRepository) AddOrIncrement(product models.Product) models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if line, ok := r.lines[product.ID]; ok {
		line.Quantity++
		r.logger.Debug("Cart line incremented", "product_id", product.ID, "quantity", line.Quantity)
		return *line
	}

	line := &models.CartLine{Product: product, Quantity: 1}
	r.lines[product.ID] = line
	r.order = append(r.order, product.ID)
	r.logger.Debug("Cart line created", "product_id", product.ID)
	return *line
}

// Decrement lowers the quantity of a line, deleting it when the quantity
// would reach zero or when forceRemove is set. A missing line is a no-op;
// the second return reports whether a line existed.
func (r *CartRepository) Decrement(productID int, forceRemove bool) (models.CartLine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[productID]
	if !ok {
		return models.CartLine{}, false
	}

	if forceRemove || line.Quantity == 1 {
		removed := *line
		delete(r.lines, productID)
		r.removeFromOrder(productID)
		r.logger.Debug("Cart line removed", "product_id", productID)
		return removed, true
	}

	line.Quantity--
	r.logger.Debug("Cart line decremented", "product_id", productID, "quantity", line.Quantity)
	return *line, true
}

// GetLine returns a copy of the line for productID, if present
func (r *CartRepository) GetLine(productID int) (models.CartLine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[productID]
	if !ok {
		return models.CartLine{}, false
	}
	return *line, true
}

// Lines returns copies of all lines in insertion order
func (r *CartRepository) Lines() []models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotLocked()
}

// DrainAll returns all lines and empties the store in one step. Checkout
// uses this so no caller can observe a captured snapshot alongside a
// still-populated cart.
func (r *CartRepository) DrainAll() []models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.snapshotLocked()
	r.lines = make(map[int]*models.CartLine)
	r.order = nil
	if len(snapshot) > 0 {
		r.logger.Debug("Cart drained", "lines", len(snapshot))
	}
	return snapshot
}

// Clear removes all lines
func (r *CartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = make(map[int]*models.CartLine)
	r.order = nil
}

func (r *CartRepository) snapshotLocked() []models.CartLine {
	snapshot := make([]models.CartLine, 0, len(r.order))
	for _, id := range r.order {
		if line, ok := r.lines[id]; ok {
			snapshot = append(snapshot, *line)
		}
	}
	return snapshot
}

func (r *CartRepository) removeFromOrder(productID int) {
	for i, id := range r.order {
		if id == productID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
