package models

import "github.com/shopspring/decimal"

// Product is a single catalog entry. The catalog is immutable after startup,
// so a Product can be copied around freely.
type Product struct {
	ID          int             `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// CartLine holds a product snapshot taken at add time plus a quantity.
// The snapshot pins the price: later catalog changes never reprice a cart.
// Quantity is always >= 1 while the line exists; a line that would reach
// zero is deleted instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is price x quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
