package service

import (
	"context"

	"supermarket/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalog management.
type ProductService interface {
	// GetAll retrieves catalog entries with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.CatalogEntry, error)

	// Import inserts or reprices catalog entries.
	Import(ctx context.Context, products []model.PricedProduct) error
}

// OfferService defines operations on the special offer registry.
type OfferService interface {
	// List returns the registered offers ordered by product name.
	List(ctx context.Context) []model.OfferResponse

	// Register adds an offer, replacing any offer for the same product.
	Register(ctx context.Context, req *model.OfferRequest) (*model.OfferResponse, error)

	// Remove drops the offer registered for the product.
	Remove(ctx context.Context, name, unit string) error

	// Import registers offers loaded from price lists.
	Import(ctx context.Context, offers []model.Offer) error
}

// CheckoutService defines operations for checking out carts.
type CheckoutService interface {
	// Checkout prices the requested items, applies offers and stores the receipt.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.ReceiptRecord, error)

	// GetReceipt retrieves a stored receipt with its printed form.
	GetReceipt(ctx context.Context, id uuid.UUID) (*model.ReceiptRecord, error)
}
