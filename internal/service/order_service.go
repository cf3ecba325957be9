package service

import (
	"errors"
	"time"

	"drink-coffee/internal/repositories"
	"drink-coffee/models"
	"drink-coffee/pkg/logger"

	"github.com/google/uuid"
)

// ErrEmptyCart is returned when checkout is requested with nothing in the
// cart. Nothing happens in that case: no order, no payment session.
var ErrEmptyCart = errors.New("cart is empty")

// OrderServiceInterface turns a cart into an order session at checkout.
type OrderServiceInterface interface {
	Checkout() (models.PaymentSession, error)
}

// OrderService owns the checkout handoff: snapshot the cart, price it,
// clear it, and open a payment session for the result, all in one call.
type OrderService struct {
	cartRepo repositories.CartRepositoryInterface
	payments PaymentServiceInterface
	logger   *logger.Logger
}

// NewOrderService creates a new OrderService with the given cart store, payment service and logger
func NewOrderService(cartRepo repositories.CartRepositoryInterface, payments PaymentServiceInterface, logger *logger.Logger) *OrderService {
	return &OrderService{
		cartRepo: cartRepo,
		payments: payments,
		logger:   logger.WithComponent("order_service"),
	}
}

// Checkout drains the cart into an immutable order session and hands it to
// the payment simulator. DrainAll snapshots and clears under one lock, so
// there is no state where the session exists next to a populated cart, or
// where the cart is gone with no session captured.
func (s *OrderService) Checkout() (models.PaymentSession, error) {
	lines := s.cartRepo.DrainAll()
	if len(lines) == 0 {
		s.logger.Debug("Checkout ignored: cart is empty")
		return models.PaymentSession{}, ErrEmptyCart
	}

	summary := Summarize(lines)
	order := models.OrderSession{
		ID:        uuid.NewString(),
		Lines:     lines,
		Subtotal:  summary.Subtotal,
		TaxAmount: summary.TaxAmount,
		Total:     summary.Total,
		CreatedAt: time.Now(),
	}

	payment := s.payments.Begin(order)

	s.logger.Info("Checkout completed",
		"order_id", order.ID,
		"payment_id", payment.ID,
		"lines", len(lines),
		"total", order.Total)
	return payment, nil
}
