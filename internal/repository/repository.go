package repository

import (
	"context"

	"supermarket/internal/catalog"
	"supermarket/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalog data access operations.
// It prices products for the teller, so it is also a catalog.Catalog.
type ProductRepository interface {
	catalog.Catalog

	// GetAll retrieves catalog entries with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.CatalogEntry, error)

	// GetByProduct retrieves the catalog entry for a product.
	// Returns nil when the product is not in the catalog.
	GetByProduct(ctx context.Context, product model.Product) (*model.CatalogEntry, error)

	// Upsert inserts or reprices products in a single transaction.
	Upsert(ctx context.Context, products []model.PricedProduct) error
}

// ReceiptRepository defines the interface for receipt data access operations.
type ReceiptRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateReceipt inserts a new receipt header within the provided transaction.
	CreateReceipt(ctx context.Context, tx pgx.Tx, receipt *model.ReceiptRecord) error

	// CreateItems inserts receipt lines within the provided transaction.
	CreateItems(ctx context.Context, tx pgx.Tx, items []model.ReceiptLine) error

	// CreateDiscounts inserts discount lines within the provided transaction.
	CreateDiscounts(ctx context.Context, tx pgx.Tx, discounts []model.ReceiptDiscount) error

	// GetByID retrieves a receipt with its items and discounts.
	// Returns nil when no receipt has the ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ReceiptRecord, error)
}
