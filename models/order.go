package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSession is the immutable snapshot of a cart taken at the moment of
// checkout. It is created in the same step that empties the cart and is
// never modified afterwards; abandoning the payment discards it.
type OrderSession struct {
	ID        string          `json:"order_id"`
	Lines     []CartLine      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
