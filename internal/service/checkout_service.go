package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supermarket/internal/cart"
	"supermarket/internal/catalog"
	"supermarket/internal/metrics"
	"supermarket/internal/model"
	"supermarket/internal/printer"
	"supermarket/internal/receipt"
	"supermarket/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	teller      *SharedTeller
	receiptRepo repository.ReceiptRepository
	printer     *printer.Printer
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	teller *SharedTeller,
	receiptRepo repository.ReceiptRepository,
	receiptPrinter *printer.Printer,
	m *metrics.Metrics,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		teller:      teller,
		receiptRepo: receiptRepo,
		printer:     receiptPrinter,
		metrics:     m,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout builds a cart from the request, checks it out and stores the
// receipt in one transaction.
func (s *checkoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.ReceiptRecord, error) {
	c, err := s.buildCart(req)
	if err != nil {
		s.metrics.ObserveCheckout(metrics.ResultInvalid, 0)
		return nil, err
	}

	r, offers, err := s.teller.Checkout(ctx, c)
	if err != nil {
		if isClientError(err) {
			s.logger.Warn().Err(err).Msg("checkout rejected")
			s.metrics.ObserveCheckout(metrics.ResultInvalid, 0)
			return nil, err
		}
		s.logger.Error().Err(err).Msg("checkout failed")
		s.metrics.ObserveCheckout(metrics.ResultError, 0)
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	record := toReceiptRecord(uuid.New(), time.Now().UTC(), r)
	record.Printed = s.printer.PrintReceipt(r)

	if err := s.persist(ctx, record); err != nil {
		s.metrics.ObserveCheckout(metrics.ResultError, 0)
		return nil, err
	}

	s.metrics.ObserveCheckout(metrics.ResultSuccess, record.Total)
	for _, d := range r.Discounts() {
		if o, ok := offers[d.Product()]; ok {
			s.metrics.ObserveDiscount(o.OfferType().String())
		}
	}

	s.logger.Info().
		Str("receipt_id", record.ID.String()).
		Int("item_count", len(record.Items)).
		Int("discount_count", len(record.Discounts)).
		Float64("total", record.Total).
		Msg("checkout completed")

	return record, nil
}

// GetReceipt retrieves a stored receipt and prints it.
func (s *checkoutService) GetReceipt(ctx context.Context, id uuid.UUID) (*model.ReceiptRecord, error) {
	record, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to get receipt")
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if record == nil {
		s.logger.Debug().Str("receipt_id", id.String()).Msg("receipt not found")
		return nil, model.ErrReceiptNotFound
	}

	r, err := fromReceiptRecord(record)
	if err != nil {
		s.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("stored receipt is inconsistent")
		return nil, fmt.Errorf("failed to rebuild receipt %s: %w", id, err)
	}
	record.Printed = s.printer.PrintReceipt(r)

	return record, nil
}

// buildCart adds every requested entry to a fresh cart in request order.
func (s *checkoutService) buildCart(req *model.CheckoutRequest) (*cart.ShoppingCart, error) {
	if req == nil {
		return nil, model.NewValueError("checkout request is nil")
	}
	if len(req.Items) == 0 {
		return nil, model.NewValueError("checkout must contain at least one item")
	}

	c := cart.New()
	for i, item := range req.Items {
		product, err := model.ParseProduct(item.Name, item.Unit)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if err := c.AddItemQuantity(product, item.Quantity); err != nil {
			s.logger.Warn().
				Int("item_index", i).
				Str("product", product.String()).
				Float64("quantity", item.Quantity).
				Msg("invalid quantity")
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return c, nil
}

// persist writes the receipt, its items and its discounts in one transaction.
func (s *checkoutService) persist(ctx context.Context, record *model.ReceiptRecord) (err error) {
	tx, err := s.receiptRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to store receipt: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.receiptRepo.CreateReceipt(ctx, tx, record); err != nil {
		return fmt.Errorf("failed to store receipt: %w", err)
	}
	if err = s.receiptRepo.CreateItems(ctx, tx, record.Items); err != nil {
		return fmt.Errorf("failed to store receipt items: %w", err)
	}
	if err = s.receiptRepo.CreateDiscounts(ctx, tx, record.Discounts); err != nil {
		return fmt.Errorf("failed to store receipt discounts: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("receipt_id", record.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to store receipt: %w", err)
	}

	return nil
}

// isClientError reports whether err was caused by the request rather than
// by infrastructure.
func isClientError(err error) bool {
	var de *model.DomainError
	return errors.As(err, &de) || errors.Is(err, catalog.ErrProductNotFound)
}

// toReceiptRecord flattens a receipt into storable lines, keeping order.
func toReceiptRecord(id uuid.UUID, createdAt time.Time, r *receipt.Receipt) *model.ReceiptRecord {
	record := &model.ReceiptRecord{
		ID:        id,
		Total:     r.TotalPrice(),
		CreatedAt: createdAt,
		Items:     make([]model.ReceiptLine, 0, len(r.Items())),
		Discounts: make([]model.ReceiptDiscount, 0, len(r.Discounts())),
	}

	for i, item := range r.Items() {
		record.Items = append(record.Items, model.ReceiptLine{
			ID:         uuid.New(),
			ReceiptID:  id,
			Position:   i,
			Name:       item.Product().Name(),
			Unit:       item.Product().Unit().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.Price(),
			TotalPrice: item.TotalPrice(),
		})
	}

	for i, d := range r.Discounts() {
		record.Discounts = append(record.Discounts, model.ReceiptDiscount{
			ID:          uuid.New(),
			ReceiptID:   id,
			Position:    i,
			Name:        d.Product().Name(),
			Unit:        d.Product().Unit().String(),
			Description: d.Description(),
			Amount:      d.Amount(),
		})
	}

	return record
}

// fromReceiptRecord rebuilds a receipt from stored lines.
func fromReceiptRecord(record *model.ReceiptRecord) (*receipt.Receipt, error) {
	r := receipt.New()

	for _, line := range record.Items {
		product, err := model.ParseProduct(line.Name, line.Unit)
		if err != nil {
			return nil, err
		}
		if err := r.AddProduct(product, line.Quantity, line.UnitPrice, line.TotalPrice); err != nil {
			return nil, err
		}
	}

	for _, line := range record.Discounts {
		product, err := model.ParseProduct(line.Name, line.Unit)
		if err != nil {
			return nil, err
		}
		d, err := model.NewDiscount(product, line.Description, line.Amount)
		if err != nil {
			return nil, err
		}
		if err := r.AddDiscount(d); err != nil {
			return nil, err
		}
	}

	return r, nil
}
