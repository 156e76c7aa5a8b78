package model

import "strings"

// Discount is a price reduction attached to a receipt for one product.
// The amount is always strictly negative.
type Discount struct {
	product     Product
	description string
	amount      float64
}

// NewDiscount creates a validated discount.
func NewDiscount(product Product, description string, amount float64) (Discount, error) {
	if product.IsZero() {
		return Discount{}, NewValueError("product cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return Discount{}, NewValueError("description cannot be empty")
	}
	if !IsFinite(amount) {
		return Discount{}, NewTypeError("discount amount must be numeric, got %v", amount)
	}
	if amount >= 0 {
		return Discount{}, NewValueError("discount amount must be negative, got %v", amount)
	}
	return Discount{product: product, description: description, amount: amount}, nil
}

// Product returns the discounted product.
func (d Discount) Product() Product { return d.product }

// Description returns the human readable offer description.
func (d Discount) Description() string { return d.description }

// Amount returns the (negative) discount amount.
func (d Discount) Amount() float64 { return d.amount }

// IsZero reports whether d is the zero value.
func (d Discount) IsZero() bool { return d == Discount{} }
