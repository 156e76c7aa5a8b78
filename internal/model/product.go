package model

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MaxProductNameLength is the longest product name accepted, in characters.
const MaxProductNameLength = 100

// ProductUnit tells whether a product is sold in discrete units or by weight.
type ProductUnit int

const (
	ProductUnitEach ProductUnit = iota + 1
	ProductUnitKilo
)

// String returns the canonical name of the unit.
func (u ProductUnit) String() string {
	switch u {
	case ProductUnitEach:
		return "EACH"
	case ProductUnitKilo:
		return "KILO"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether u is one of the known units.
func (u ProductUnit) Valid() bool {
	return u == ProductUnitEach || u == ProductUnitKilo
}

// ParseProductUnit converts "EACH" or "KILO" (any case) into a ProductUnit.
func ParseProductUnit(s string) (ProductUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EACH":
		return ProductUnitEach, nil
	case "KILO":
		return ProductUnitKilo, nil
	case "":
		return 0, NewValueError("unit is required")
	default:
		return 0, NewValueError("unit must be EACH or KILO, got %q", s)
	}
}

// Product identifies an article by name and unit. Two products with the
// same name and unit are the same product.
type Product struct {
	name string
	unit ProductUnit
}

// NewProduct creates a validated product.
func NewProduct(name string, unit ProductUnit) (Product, error) {
	if name == "" {
		return Product{}, NewValueError("name cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, NewValueError("name cannot be whitespace")
	}
	if utf8.RuneCountInString(name) > MaxProductNameLength {
		return Product{}, NewValueError("name too long: %d characters (max %d)", utf8.RuneCountInString(name), MaxProductNameLength)
	}
	if unit == 0 {
		return Product{}, NewValueError("unit is required")
	}
	if !unit.Valid() {
		return Product{}, NewValueError("unit must be a ProductUnit, got %d", int(unit))
	}
	return Product{name: name, unit: unit}, nil
}

// ParseProduct builds a product from a name and a unit string such as
// "EACH" or "kilo".
func ParseProduct(name, unit string) (Product, error) {
	u, err := ParseProductUnit(unit)
	if err != nil {
		return Product{}, err
	}
	return NewProduct(name, u)
}

// MustProduct is like NewProduct but panics on invalid input.
// Intended for fixtures and package-level test values.
func MustProduct(name string, unit ProductUnit) Product {
	p, err := NewProduct(name, unit)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Unit returns the product unit.
func (p Product) Unit() ProductUnit { return p.unit }

// IsZero reports whether p is the zero value, i.e. no product.
func (p Product) IsZero() bool { return p == Product{} }

// String renders the product as "name (UNIT)".
func (p Product) String() string {
	return p.name + " (" + p.unit.String() + ")"
}

// ProductQuantity pairs a product with a positive amount of it.
type ProductQuantity struct {
	product  Product
	quantity float64
}

// NewProductQuantity validates quantity against the product's unit.
func NewProductQuantity(product Product, quantity float64) (ProductQuantity, error) {
	if product.IsZero() {
		return ProductQuantity{}, NewValueError("product cannot be empty")
	}
	if err := CheckQuantity(product, quantity); err != nil {
		return ProductQuantity{}, err
	}
	return ProductQuantity{product: product, quantity: quantity}, nil
}

// CheckQuantity applies the quantity rules shared by carts and receipts:
// finite, whole for EACH products, and strictly positive.
func CheckQuantity(product Product, quantity float64) error {
	if !IsFinite(quantity) {
		return NewTypeError("quantity must be numeric, got %v", quantity)
	}
	if product.Unit() == ProductUnitEach && quantity != math.Floor(quantity) {
		return NewValueError("quantity must be a whole number for EACH products, got %v", quantity)
	}
	if quantity <= 0 {
		return NewValueError("quantity must be positive, got %v", quantity)
	}
	return nil
}

// Product returns the product.
func (pq ProductQuantity) Product() Product { return pq.product }

// Quantity returns the amount.
func (pq ProductQuantity) Quantity() float64 { return pq.quantity }

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
