package catalog

import (
	"context"
	"errors"

	"supermarket/internal/model"
)

// ErrProductNotFound is returned when a product has no catalog price.
var ErrProductNotFound = errors.New("product not found in catalog")

// Catalog maps products to their undiscounted unit price.
type Catalog interface {
	// UnitPrice returns the price per unit (EACH) or per kilo (KILO).
	// Unknown products return an error wrapping ErrProductNotFound.
	UnitPrice(ctx context.Context, product model.Product) (float64, error)
}
