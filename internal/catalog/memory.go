package catalog

import (
	"context"
	"fmt"
	"sync"

	"supermarket/internal/model"
)

// Memory is an in-memory Catalog. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	prices map[model.Product]float64
	order  []model.Product
}

// NewMemory creates an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{
		prices: make(map[model.Product]float64),
	}
}

// AddProduct registers product at price. Adding a product again replaces
// its price.
func (m *Memory) AddProduct(product model.Product, price float64) error {
	if product.IsZero() {
		return model.NewValueError("product cannot be empty")
	}
	if !model.IsFinite(price) {
		return model.NewTypeError("price must be numeric, got %v", price)
	}
	if price < 0 {
		return model.NewValueError("price must be >= 0, got %v", price)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.prices[product]; !exists {
		m.order = append(m.order, product)
	}
	m.prices[product] = price

	return nil
}

// UnitPrice returns the registered price of product.
func (m *Memory) UnitPrice(_ context.Context, product model.Product) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	price, ok := m.prices[product]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrProductNotFound, product)
	}
	return price, nil
}

// Products returns every catalog entry in registration order.
func (m *Memory) Products() []model.PricedProduct {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.PricedProduct, 0, len(m.order))
	for _, p := range m.order {
		out = append(out, model.PricedProduct{Product: p, Price: m.prices[p]})
	}
	return out
}

// Size returns the number of products in the catalog.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.prices)
}
