package receipt

import (
	"math"

	"supermarket/internal/model"
)

// totalTolerance is the relative error allowed between a line total and
// quantity * price.
const totalTolerance = 1e-9

// Item is one product line on a receipt.
type Item struct {
	product    model.Product
	quantity   float64
	price      float64
	totalPrice float64
}

// NewItem creates a validated receipt line. totalPrice must equal
// quantity * price.
func NewItem(product model.Product, quantity, price, totalPrice float64) (Item, error) {
	if product.IsZero() {
		return Item{}, model.NewValueError("product cannot be empty")
	}
	if !model.IsFinite(quantity) {
		return Item{}, model.NewTypeError("quantity must be numeric, got %v", quantity)
	}
	if quantity <= 0 {
		return Item{}, model.NewValueError("quantity must be positive, got %v", quantity)
	}
	if !model.IsFinite(price) {
		return Item{}, model.NewTypeError("price must be numeric, got %v", price)
	}
	if price < 0 {
		return Item{}, model.NewValueError("price must be >= 0, got %v", price)
	}
	if !model.IsFinite(totalPrice) {
		return Item{}, model.NewTypeError("total price must be numeric, got %v", totalPrice)
	}
	if !closeTo(totalPrice, quantity*price) {
		return Item{}, model.NewValueError("total price must equal quantity * price: %v != %v * %v", totalPrice, quantity, price)
	}

	return Item{
		product:    product,
		quantity:   quantity,
		price:      price,
		totalPrice: totalPrice,
	}, nil
}

// Product returns the product on this line.
func (i Item) Product() model.Product { return i.product }

// Quantity returns the quantity on this line.
func (i Item) Quantity() float64 { return i.quantity }

// Price returns the unit price.
func (i Item) Price() float64 { return i.price }

// TotalPrice returns quantity * price.
func (i Item) TotalPrice() float64 { return i.totalPrice }

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= totalTolerance*math.Max(1, math.Abs(b))
}
