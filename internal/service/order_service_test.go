package service

import (
	"testing"

	"drink-coffee/internal/repositories"
	"drink-coffee/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentService records Begin calls so checkout tests can assert the
// handoff without running the real state machine.
type fakePaymentService struct {
	began []models.OrderSession
}

func (f *fakePaymentService) Begin(order models.OrderSession) models.PaymentSession {
	f.began = append(f.began, order)
	return models.PaymentSession{ID: "payment-1", Order: order, Status: models.PaymentStatusSelection}
}

func (f *fakePaymentService) Get(string) (models.PaymentSession, error) {
	return models.PaymentSession{}, ErrPaymentNotFound
}

func (f *fakePaymentService) SelectMethod(string, models.PaymentMethod) (models.PaymentSession, error) {
	return models.PaymentSession{}, ErrPaymentNotFound
}

func (f *fakePaymentService) Confirm(string) (models.PaymentSession, error) {
	return models.PaymentSession{}, ErrPaymentNotFound
}

func (f *fakePaymentService) Abandon(string) error { return ErrPaymentNotFound }

func TestCheckoutSnapshotsAndClearsAtomically(t *testing.T) {
	cartRepo := repositories.NewCartRepository(testLogger())
	payments := &fakePaymentService{}
	svc := NewOrderService(cartRepo, payments, testLogger())

	catalog := testCatalog(t)
	espresso, err := catalog.GetByID(1)
	require.NoError(t, err)
	latte, err := catalog.GetByID(2)
	require.NoError(t, err)

	cartRepo.AddOrIncrement(espresso)
	cartRepo.AddOrIncrement(latte)
	cartRepo.AddOrIncrement(latte)

	preTotal := Summarize(cartRepo.Lines()).Total

	payment, err := svc.Checkout()
	require.NoError(t, err)

	// Cart is empty, the session carries the pre-checkout totals
	assert.Empty(t, cartRepo.Lines())
	assert.True(t, payment.Order.Total.Equal(preTotal))
	assert.Equal(t, "201.25", payment.Order.Total.String())
	assert.Equal(t, models.PaymentStatusSelection, payment.Status)

	// Snapshot preserves the order items were added in
	require.Len(t, payment.Order.Lines, 2)
	assert.Equal(t, 1, payment.Order.Lines[0].Product.ID)
	assert.Equal(t, 2, payment.Order.Lines[1].Product.ID)
	assert.Equal(t, 2, payment.Order.Lines[1].Quantity)

	require.Len(t, payments.began, 1)
	assert.NotEmpty(t, payment.Order.ID)
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	cartRepo := repositories.NewCartRepository(testLogger())
	payments := &fakePaymentService{}
	svc := NewOrderService(cartRepo, payments, testLogger())

	_, err := svc.Checkout()
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, payments.began, "no payment session is opened for an empty cart")
}
