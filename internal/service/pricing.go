package service

import (
	"drink-coffee/models"

	"github.com/shopspring/decimal"
)

// VAT applied to every order, fixed at 15%. A constant, not configuration.
var taxRate = decimal.RequireFromString("0.15")

// PriceSummary is the priced view of a set of cart lines.
type PriceSummary struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Summarize prices the given lines: subtotal is the exact sum of
// price x quantity per line, tax is 15% of the subtotal rounded to two
// decimal places, total is subtotal plus tax. Decimal arithmetic keeps
// repeated additions exact, so the result does not depend on the order in
// which items were added.
func Summarize(lines []models.CartLine) PriceSummary {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	tax := subtotal.Mul(taxRate).Round(2)

	return PriceSummary{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}
