package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"drink-coffee/models"
	"drink-coffee/pkg/logger"
	"drink-coffee/pkg/scheduler"

	"github.com/google/uuid"
)

// Simulated gateway behavior: a fixed processing delay followed by a draw
// that succeeds 80% of the time, matching the source system.
const (
	ProcessingDelay  = 2 * time.Second
	failureThreshold = 0.2
)

var (
	ErrPaymentNotFound  = errors.New("payment session not found")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrNoMethodSelected = errors.New("no payment method selected")
	ErrWrongState       = errors.New("operation not allowed in current payment state")
)

// PaymentServiceInterface is the simulated payment gateway. Each checkout
// gets one session that only moves forward: selection -> processing ->
// completed or failed. Abandon discards the session from any state.
type PaymentServiceInterface interface {
	Begin(order models.OrderSession) models.PaymentSession
	Get(id string) (models.PaymentSession, error)
	SelectMethod(id string, method models.PaymentMethod) (models.PaymentSession, error)
	Confirm(id string) (models.PaymentSession, error)
	Abandon(id string) error
}

// PaymentService drives the payment state machine. The processing delay is
// a cancelable scheduled task: abandoning a session mid-processing cancels
// the task, so no outcome can ever land on a discarded session.
type PaymentService struct {
	sched  scheduler.Scheduler
	draw   func() float64
	logger *logger.Logger

	mu       sync.Mutex
	sessions map[string]*paymentEntry
}

type paymentEntry struct {
	session models.PaymentSession
	task    scheduler.Task
}

// NewPaymentService creates a new PaymentService. draw must return a
// uniform value in [0,1); nil selects math/rand.
func NewPaymentService(sched scheduler.Scheduler, draw func() float64, logger *logger.Logger) *PaymentService {
	if draw == nil {
		draw = rand.Float64
	}
	return &PaymentService{
		sched:    sched,
		draw:     draw,
		logger:   logger.WithComponent("payment_service"),
		sessions: make(map[string]*paymentEntry),
	}
}

// Begin opens a payment session for the given order, starting on the
// method selection screen.
func (s *PaymentService) Begin(order models.OrderSession) models.PaymentSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.PaymentSession{
		ID:     uuid.NewString(),
		Order:  order,
		Status: models.PaymentStatusSelection,
		Method: models.PaymentMethodNone,
	}
	s.sessions[session.ID] = &paymentEntry{session: session}

	s.logger.Info("Payment session opened",
		"payment_id", session.ID,
		"order_id", order.ID,
		"total", order.Total)
	return session
}

// Get returns the session with the given id
func (s *PaymentService) Get(id string) (models.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return models.PaymentSession{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	return entry.session, nil
}

// SelectMethod records the pending payment method. Selecting does not
// transition state; the session stays on the selection screen until
// Confirm.
func (s *PaymentService) SelectMethod(id string, method models.PaymentMethod) (models.PaymentSession, error) {
	if method != models.PaymentMethodCard && method != models.PaymentMethodOnline {
		return models.PaymentSession{}, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return models.PaymentSession{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	if entry.session.Status != models.PaymentStatusSelection {
		return models.PaymentSession{}, fmt.Errorf("%w: cannot select a method in state %s", ErrWrongState, entry.session.Status)
	}

	entry.session.Method = method
	s.logger.Info("Payment method selected", "payment_id", id, "method", method)
	return entry.session, nil
}

// Confirm moves the session to processing and schedules the simulated
// outcome after the fixed delay. A method must have been selected first.
func (s *PaymentService) Confirm(id string) (models.PaymentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return models.PaymentSession{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	if entry.session.Status != models.PaymentStatusSelection {
		return models.PaymentSession{}, fmt.Errorf("%w: cannot confirm in state %s", ErrWrongState, entry.session.Status)
	}
	if entry.session.Method == models.PaymentMethodNone {
		return models.PaymentSession{}, ErrNoMethodSelected
	}

	entry.session.Status = models.PaymentStatusProcessing
	entry.task = s.sched.After(ProcessingDelay, func() { s.settle(id) })

	s.logger.Info("Payment processing started", "payment_id", id, "method", entry.session.Method)
	return entry.session, nil
}

// Abandon discards the session entirely. Pending processing is canceled
// first, so the outcome callback can never fire afterwards. This is the
// only exit from completed and failed; retrying means a fresh checkout.
func (s *PaymentService) Abandon(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}

	if entry.task != nil {
		entry.task.Cancel()
	}
	delete(s.sessions, id)

	s.logger.Info("Payment session abandoned",
		"payment_id", id,
		"last_status", entry.session.Status)
	return nil
}

// settle runs when the processing delay elapses
func (s *PaymentService) settle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || entry.session.Status != models.PaymentStatusProcessing {
		// Session was abandoned between the timer firing and this call
		return
	}

	if s.draw() > failureThreshold {
		entry.session.Status = models.PaymentStatusCompleted
	} else {
		entry.session.Status = models.PaymentStatusFailed
	}

	s.logger.Info("Payment settled",
		"payment_id", id,
		"status", entry.session.Status,
		"order_id", entry.session.Order.ID)
}
