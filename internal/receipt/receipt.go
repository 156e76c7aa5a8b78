package receipt

import (
	"supermarket/internal/model"
)

// Receipt collects priced lines and discounts for one checkout. It only
// grows. Not safe for concurrent use.
type Receipt struct {
	items     []Item
	index     map[model.Product]int
	discounts []model.Discount
}

// New creates an empty receipt.
func New() *Receipt {
	return &Receipt{
		index: make(map[model.Product]int),
	}
}

// AddProduct adds a priced line. Adding a product that is already on the
// receipt merges into the existing line: quantity and total are summed and
// the line keeps its position.
func (r *Receipt) AddProduct(product model.Product, quantity, price, totalPrice float64) error {
	if !model.IsFinite(quantity) {
		return model.NewTypeError("quantity must be numeric, got %v", quantity)
	}
	if quantity <= 0 {
		return model.NewValueError("quantity must be positive, got %v", quantity)
	}
	if !model.IsFinite(price) {
		return model.NewTypeError("price must be numeric, got %v", price)
	}
	if price < 0 {
		return model.NewValueError("price must be positive or zero, got %v", price)
	}

	pos, exists := r.index[product]
	if !exists {
		item, err := NewItem(product, quantity, price, totalPrice)
		if err != nil {
			return err
		}
		r.index[product] = len(r.items)
		r.items = append(r.items, item)
		return nil
	}

	existing := r.items[pos]
	if !closeTo(existing.price, price) {
		return model.NewValueError("price %v for %s does not match receipt line price %v", price, product.Name(), existing.price)
	}
	// validate the new portion on its own before merging
	if _, err := NewItem(product, quantity, price, totalPrice); err != nil {
		return err
	}
	merged, err := NewItem(product, existing.quantity+quantity, existing.price, existing.totalPrice+totalPrice)
	if err != nil {
		return err
	}
	r.items[pos] = merged

	return nil
}

// AddDiscount appends a discount. The discounted product must already be
// on the receipt. Several discounts for one product are all kept.
func (r *Receipt) AddDiscount(discount model.Discount) error {
	if discount.IsZero() {
		return model.NewValueError("discount cannot be empty")
	}
	if !r.HasProduct(discount.Product()) {
		return model.NewValueError("cannot apply discount: product not in receipt: %s", discount.Product().Name())
	}
	r.discounts = append(r.discounts, discount)
	return nil
}

// HasProduct reports whether product has a line on the receipt.
func (r *Receipt) HasProduct(product model.Product) bool {
	_, ok := r.index[product]
	return ok
}

// Items returns the receipt lines in order of first appearance.
func (r *Receipt) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Discounts returns the discounts in the order they were added.
func (r *Receipt) Discounts() []model.Discount {
	out := make([]model.Discount, len(r.discounts))
	copy(out, r.discounts)
	return out
}

// TotalPrice is the sum of line totals plus the (negative) discounts.
// The result is not floored: discounts larger than the lines give a
// negative total.
func (r *Receipt) TotalPrice() float64 {
	var total float64
	for _, item := range r.items {
		total += item.totalPrice
	}
	for _, discount := range r.discounts {
		total += discount.Amount()
	}
	return total
}
