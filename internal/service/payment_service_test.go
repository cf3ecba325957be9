package service

import (
	"testing"

	"drink-coffee/models"
	"drink-coffee/pkg/scheduler"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() models.OrderSession {
	return models.OrderSession{
		ID:        "order-1",
		Subtotal:  decimal.RequireFromString("175.00"),
		TaxAmount: decimal.RequireFromString("26.25"),
		Total:     decimal.RequireFromString("201.25"),
	}
}

func newPaymentService(draw func() float64) (*PaymentService, *scheduler.ManualScheduler) {
	sched := scheduler.NewManualScheduler()
	return NewPaymentService(sched, draw, testLogger()), sched
}

func TestPaymentHappyPath(t *testing.T) {
	svc, sched := newPaymentService(func() float64 { return 0.9 })

	session := svc.Begin(testOrder())
	assert.Equal(t, models.PaymentStatusSelection, session.Status)
	assert.Equal(t, models.PaymentMethodNone, session.Method)

	// Selecting a method records it but does not transition state
	session, err := svc.SelectMethod(session.ID, models.PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSelection, session.Status)
	assert.Equal(t, models.PaymentMethodCard, session.Method)

	session, err = svc.Confirm(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusProcessing, session.Status)
	assert.Equal(t, 1, sched.Pending())

	sched.FireAll()

	session, err = svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, session.Status)
}

func TestPaymentFailureDraw(t *testing.T) {
	svc, sched := newPaymentService(func() float64 { return 0.1 })

	session := svc.Begin(testOrder())
	_, err := svc.SelectMethod(session.ID, models.PaymentMethodOnline)
	require.NoError(t, err)
	_, err = svc.Confirm(session.ID)
	require.NoError(t, err)

	sched.FireAll()

	session, err = svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, session.Status)
}

func TestConfirmRequiresSelectedMethod(t *testing.T) {
	svc, sched := newPaymentService(nil)

	session := svc.Begin(testOrder())
	_, err := svc.Confirm(session.ID)
	require.ErrorIs(t, err, ErrNoMethodSelected)
	assert.Equal(t, 0, sched.Pending())
}

func TestSelectMethodValidation(t *testing.T) {
	svc, _ := newPaymentService(nil)

	session := svc.Begin(testOrder())

	_, err := svc.SelectMethod(session.ID, models.PaymentMethod("cheque"))
	require.ErrorIs(t, err, ErrInvalidMethod)

	_, err = svc.SelectMethod("missing", models.PaymentMethodCard)
	require.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestNoBackwardTransitions(t *testing.T) {
	svc, sched := newPaymentService(func() float64 { return 0.9 })

	session := svc.Begin(testOrder())
	_, err := svc.SelectMethod(session.ID, models.PaymentMethodCard)
	require.NoError(t, err)
	_, err = svc.Confirm(session.ID)
	require.NoError(t, err)

	// While processing, neither selection nor another confirm is allowed
	_, err = svc.SelectMethod(session.ID, models.PaymentMethodOnline)
	require.ErrorIs(t, err, ErrWrongState)
	_, err = svc.Confirm(session.ID)
	require.ErrorIs(t, err, ErrWrongState)

	sched.FireAll()

	// Terminal states refuse everything except Abandon
	_, err = svc.Confirm(session.ID)
	require.ErrorIs(t, err, ErrWrongState)
	require.NoError(t, svc.Abandon(session.ID))
}

func TestAbandonMidProcessingNeverSettles(t *testing.T) {
	settled := false
	svc, sched := newPaymentService(func() float64 { settled = true; return 0.9 })

	session := svc.Begin(testOrder())
	_, err := svc.SelectMethod(session.ID, models.PaymentMethodCard)
	require.NoError(t, err)
	_, err = svc.Confirm(session.ID)
	require.NoError(t, err)

	// Tear the session down before the delay elapses
	require.NoError(t, svc.Abandon(session.ID))
	assert.Equal(t, 0, sched.Pending())

	sched.FireAll()
	assert.False(t, settled, "no outcome draw may happen after abandon")

	_, err = svc.Get(session.ID)
	require.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestAbandonIsTheOnlyExit(t *testing.T) {
	svc, _ := newPaymentService(nil)

	session := svc.Begin(testOrder())
	require.NoError(t, svc.Abandon(session.ID))

	// The session is gone entirely; a retry means a fresh checkout
	require.ErrorIs(t, svc.Abandon(session.ID), ErrPaymentNotFound)
}
