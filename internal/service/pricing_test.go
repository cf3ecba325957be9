package service

import (
	"testing"

	"drink-coffee/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(id int, price string, qty int) models.CartLine {
	return models.CartLine{
		Product: models.Product{
			ID:    id,
			Name:  "product",
			Price: decimal.RequireFromString(price),
		},
		Quantity: qty,
	}
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Subtotal.IsZero())
	assert.True(t, summary.TaxAmount.IsZero())
	assert.True(t, summary.Total.IsZero())
}

func TestSummarizeEspressoAndLattes(t *testing.T) {
	// Espresso 55.00 x1 and Latte 60.00 x2
	lines := []models.CartLine{
		line(1, "55.00", 1),
		line(2, "60.00", 2),
	}

	summary := Summarize(lines)

	assert.Equal(t, "175", summary.Subtotal.String())
	assert.Equal(t, "26.25", summary.TaxAmount.String())
	assert.Equal(t, "201.25", summary.Total.String())
}

func TestSummarizeIndependentOfLineOrder(t *testing.T) {
	forward := []models.CartLine{
		line(1, "55.00", 1),
		line(2, "60.00", 2),
		line(3, "65.00", 3),
	}
	reversed := []models.CartLine{forward[2], forward[1], forward[0]}

	a := Summarize(forward)
	b := Summarize(reversed)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
	assert.True(t, a.Total.Equal(b.Total))
}

func TestSummarizeNoFloatDrift(t *testing.T) {
	// 0.10 added thirty times must be exactly 3.00, not 2.9999...
	lines := make([]models.CartLine, 0, 30)
	for i := 0; i < 30; i++ {
		lines = append(lines, line(i+1, "0.10", 1))
	}

	summary := Summarize(lines)

	assert.Equal(t, "3", summary.Subtotal.String())
	assert.Equal(t, "0.45", summary.TaxAmount.String())
	assert.Equal(t, "3.45", summary.Total.String())
}

func TestSummarizeTaxRoundsToCents(t *testing.T) {
	// 0.30 * 0.15 = 0.045, rounds to 0.05
	summary := Summarize([]models.CartLine{line(1, "0.30", 1)})

	assert.Equal(t, "0.05", summary.TaxAmount.String())
	assert.Equal(t, "0.35", summary.Total.String())
}
