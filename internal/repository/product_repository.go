package repository

import (
	"context"
	"errors"
	"fmt"

	"supermarket/internal/catalog"
	"supermarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves catalog entries ordered by name and unit.
func (r *productRepository) GetAll(ctx context.Context, limit, offset int) ([]model.CatalogEntry, error) {
	query := `
		SELECT name, unit, price, updated_at
		FROM products
		ORDER BY name, unit
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	entries := []model.CatalogEntry{}
	for rows.Next() {
		var e model.CatalogEntry
		if err := rows.Scan(&e.Name, &e.Unit, &e.Price, &e.UpdatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return entries, nil
}

// GetByProduct retrieves the catalog entry for product.
func (r *productRepository) GetByProduct(ctx context.Context, product model.Product) (*model.CatalogEntry, error) {
	query := `
		SELECT name, unit, price, updated_at
		FROM products
		WHERE name = $1 AND unit = $2
	`

	var e model.CatalogEntry
	err := r.pool.QueryRow(ctx, query, product.Name(), product.Unit().String()).
		Scan(&e.Name, &e.Unit, &e.Price, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product", product.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product", product.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &e, nil
}

// UnitPrice returns the stored price of product or a wrapped
// catalog.ErrProductNotFound.
func (r *productRepository) UnitPrice(ctx context.Context, product model.Product) (float64, error) {
	entry, err := r.GetByProduct(ctx, product)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, product)
	}
	return entry.Price, nil
}

// Upsert inserts or reprices products in a single transaction.
func (r *productRepository) Upsert(ctx context.Context, products []model.PricedProduct) error {
	if len(products) == 0 {
		return nil
	}

	for _, p := range products {
		if p.Product.IsZero() {
			return model.NewValueError("product cannot be empty")
		}
		if !model.IsFinite(p.Price) {
			return model.NewTypeError("price must be numeric")
		}
		if p.Price < 0 {
			return model.NewValueError("price must be >= 0")
		}
	}

	query := `
		INSERT INTO products (name, unit, price, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (name, unit)
		DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.Product.Name(), p.Product.Unit().String(), p.Price)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < len(products); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.logger.Error().
				Err(err).
				Str("product", products[i].Product.String()).
				Msg("failed to upsert product")
			return fmt.Errorf("failed to upsert product %s: %w", products[i].Product, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("catalog upserted")

	return nil
}
