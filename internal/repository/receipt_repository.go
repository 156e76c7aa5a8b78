package repository

import (
	"context"
	"errors"
	"fmt"

	"supermarket/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// receiptRepository implements the ReceiptRepository interface using PostgreSQL.
type receiptRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReceiptRepository creates a new PostgreSQL-backed receipt repository.
func NewReceiptRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReceiptRepository {
	return &receiptRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "receipt").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *receiptRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateReceipt inserts a new receipt header within the provided transaction.
func (r *receiptRepository) CreateReceipt(ctx context.Context, tx pgx.Tx, receipt *model.ReceiptRecord) error {
	query := `
		INSERT INTO receipts (id, total, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := tx.Exec(ctx, query, receipt.ID, receipt.Total, receipt.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("receipt_id", receipt.ID.String()).
			Msg("failed to create receipt")
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	r.logger.Debug().
		Str("receipt_id", receipt.ID.String()).
		Msg("receipt created successfully")

	return nil
}

// CreateItems inserts receipt lines within the provided transaction.
func (r *receiptRepository) CreateItems(ctx context.Context, tx pgx.Tx, items []model.ReceiptLine) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO receipt_items
			(id, receipt_id, position, product_name, product_unit, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.ReceiptID, item.Position, item.Name, item.Unit,
			item.Quantity, item.UnitPrice, item.TotalPrice)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("receipt_id", items[i].ReceiptID.String()).
				Str("product", items[i].Name).
				Msg("failed to create receipt item")
			return fmt.Errorf("failed to create receipt item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("receipt items created successfully")

	return nil
}

// CreateDiscounts inserts discount lines within the provided transaction.
func (r *receiptRepository) CreateDiscounts(ctx context.Context, tx pgx.Tx, discounts []model.ReceiptDiscount) error {
	if len(discounts) == 0 {
		return nil
	}

	query := `
		INSERT INTO receipt_discounts
			(id, receipt_id, position, product_name, product_unit, description, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, d := range discounts {
		batch.Queue(query, d.ID, d.ReceiptID, d.Position, d.Name, d.Unit, d.Description, d.Amount)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(discounts); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("receipt_id", discounts[i].ReceiptID.String()).
				Str("product", discounts[i].Name).
				Msg("failed to create receipt discount")
			return fmt.Errorf("failed to create receipt discount: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(discounts)).
		Msg("receipt discounts created successfully")

	return nil
}

// GetByID retrieves a receipt with its lines in stored order.
func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ReceiptRecord, error) {
	receiptQuery := `
		SELECT id, total, created_at
		FROM receipts
		WHERE id = $1
	`

	var rec model.ReceiptRecord
	err := r.pool.QueryRow(ctx, receiptQuery, id).Scan(&rec.ID, &rec.Total, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("receipt_id", id.String()).Msg("receipt not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to query receipt")
		return nil, fmt.Errorf("failed to query receipt: %w", err)
	}

	itemsQuery := `
		SELECT id, receipt_id, position, product_name, product_unit, quantity, unit_price, total_price
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to query receipt items")
		return nil, fmt.Errorf("failed to query receipt items: %w", err)
	}
	rec.Items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ReceiptLine])
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan receipt item rows")
		return nil, fmt.Errorf("failed to scan receipt items: %w", err)
	}

	discountsQuery := `
		SELECT id, receipt_id, position, product_name, product_unit, description, amount
		FROM receipt_discounts
		WHERE receipt_id = $1
		ORDER BY position
	`

	rows, err = r.pool.Query(ctx, discountsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to query receipt discounts")
		return nil, fmt.Errorf("failed to query receipt discounts: %w", err)
	}
	rec.Discounts, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ReceiptDiscount])
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan receipt discount rows")
		return nil, fmt.Errorf("failed to scan receipt discounts: %w", err)
	}

	return &rec, nil
}
