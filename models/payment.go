package models

// PaymentStatus tracks the simulated payment state machine. Transitions only
// move forward: selection -> processing -> completed|failed. There is no
// retry transition; the only way out of a terminal state is discarding the
// whole session.
type PaymentStatus string

const (
	PaymentStatusSelection  PaymentStatus = "selection"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentMethod is the method the customer picked on the selection screen.
type PaymentMethod string

const (
	PaymentMethodNone   PaymentMethod = ""
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

// PaymentSession pairs an order snapshot with the state of its simulated
// payment. One session exists per checkout.
type PaymentSession struct {
	ID     string        `json:"payment_id"`
	Order  OrderSession  `json:"order"`
	Status PaymentStatus `json:"status"`
	Method PaymentMethod `json:"method,omitempty"`
}
