package cart

import (
	"supermarket/internal/model"
)

// ShoppingCart accumulates the products a customer wants to buy. It does
// not price anything. A cart is owned by a single checkout and is not safe
// for concurrent use.
type ShoppingCart struct {
	items      []model.ProductQuantity
	quantities map[model.Product]float64
	order      []model.Product
}

// New creates an empty cart.
func New() *ShoppingCart {
	return &ShoppingCart{
		quantities: make(map[model.Product]float64),
	}
}

// AddItem adds a single unit of product.
func (c *ShoppingCart) AddItem(product model.Product) error {
	return c.AddItemQuantity(product, 1)
}

// AddItemQuantity appends a new entry and adds quantity to the product's
// accumulated total. Entries for the same product are kept separate; only
// the accumulated quantity is merged.
func (c *ShoppingCart) AddItemQuantity(product model.Product, quantity float64) error {
	entry, err := model.NewProductQuantity(product, quantity)
	if err != nil {
		return err
	}

	c.items = append(c.items, entry)
	if _, seen := c.quantities[product]; !seen {
		c.order = append(c.order, product)
	}
	c.quantities[product] += quantity

	return nil
}

// Items returns the cart entries in the order they were added.
func (c *ShoppingCart) Items() []model.ProductQuantity {
	out := make([]model.ProductQuantity, len(c.items))
	copy(out, c.items)
	return out
}

// ProductQuantities returns the accumulated quantity per product.
func (c *ShoppingCart) ProductQuantities() map[model.Product]float64 {
	out := make(map[model.Product]float64, len(c.quantities))
	for p, q := range c.quantities {
		out[p] = q
	}
	return out
}

// Products returns the distinct products in order of first appearance.
func (c *ShoppingCart) Products() []model.Product {
	out := make([]model.Product, len(c.order))
	copy(out, c.order)
	return out
}

// Quantity returns the accumulated quantity of product, or zero.
func (c *ShoppingCart) Quantity(product model.Product) float64 {
	return c.quantities[product]
}

// Len returns the number of entries added to the cart.
func (c *ShoppingCart) Len() int {
	return len(c.items)
}
