package service

import (
	"fmt"

	"drink-coffee/internal/notify"
	"drink-coffee/internal/repositories"
	"drink-coffee/models"
	"drink-coffee/pkg/logger"
)

// CartView is the cart plus its computed totals, the shape the
// presentation layer renders.
type CartView struct {
	Lines     []models.CartLine `json:"items"`
	ItemCount int               `json:"item_count"`
	PriceSummary
}

// CartServiceInterface exposes the cart operations.
type CartServiceInterface interface {
	AddItem(productID int) (CartView, error)
	RemoveItem(productID int, forceRemove bool) (CartView, error)
	View() CartView
}

// CartService validates cart mutations against the catalog and publishes
// the fire-and-forget notices the original UI showed on every change.
type CartService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	cartRepo    repositories.CartRepositoryInterface
	notifier    notify.Publisher
	logger      *logger.Logger
}

// NewCartService creates a new CartService with the given repositories and logger
func NewCartService(catalogRepo repositories.CatalogRepositoryInterface, cartRepo repositories.CartRepositoryInterface, notifier notify.Publisher, logger *logger.Logger) *CartService {
	return &CartService{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		notifier:    notifier,
		logger:      logger.WithComponent("cart_service"),
	}
}

// AddItem adds one unit of the product to the cart, creating the line on
// first add and incrementing it afterwards. The catalog is the only valid
// source of product ids; unknown ids are rejected.
func (s *CartService) AddItem(productID int) (CartView, error) {
	product, err := s.catalogRepo.GetByID(productID)
	if err != nil {
		s.logger.Warn("Add failed: unknown product", "product_id", productID, "error", err)
		return CartView{}, err
	}

	line := s.cartRepo.AddOrIncrement(product)
	s.notifier.Push(fmt.Sprintf("%s added to cart!", product.Name), notify.LevelSuccess)
	s.logger.Info("Item added to cart", "product_id", productID, "quantity", line.Quantity)

	return s.View(), nil
}

// RemoveItem lowers the quantity of the product's line by one, or deletes
// the whole line when forceRemove is set or only one unit remains. A
// product with no line in the cart is a no-op.
func (s *CartService) RemoveItem(productID int, forceRemove bool) (CartView, error) {
	line, existed := s.cartRepo.Decrement(productID, forceRemove)
	if !existed {
		s.logger.Debug("Remove ignored: product not in cart", "product_id", productID)
		return s.View(), nil
	}

	s.notifier.Push(fmt.Sprintf("%s removed from cart.", line.Product.Name), notify.LevelError)
	s.logger.Info("Item removed from cart",
		"product_id", productID,
		"force_remove", forceRemove)

	return s.View(), nil
}

// View returns the current lines with subtotal, VAT and total
func (s *CartService) View() CartView {
	lines := s.cartRepo.Lines()

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return CartView{
		Lines:        lines,
		ItemCount:    count,
		PriceSummary: Summarize(lines),
	}
}
