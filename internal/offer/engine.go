package offer

import (
	"context"
	"fmt"

	"supermarket/internal/cart"
	"supermarket/internal/catalog"
	"supermarket/internal/model"
	"supermarket/internal/receipt"

	"github.com/rs/zerolog"
)

// Engine turns the offers registered for a cart's products into receipt
// discounts.
type Engine struct {
	calculators map[model.SpecialOfferType]Calculator
	logger      zerolog.Logger
}

// NewEngine creates an engine with the default calculator for every offer type.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		calculators: DefaultCalculators(),
		logger:      logger.With().Str("component", "offer-engine").Logger(),
	}
}

// Evaluate computes the discount amount and description of offer for the
// given accumulated quantity and unit price. An amount of zero means the
// offer does not qualify.
func (e *Engine) Evaluate(offer model.Offer, quantity, unitPrice float64) (float64, string, error) {
	calc, ok := e.calculators[offer.OfferType()]
	if !ok {
		return 0, "", model.NewValueError("invalid offer type %d", int(offer.OfferType()))
	}
	return calc.Amount(quantity, unitPrice, offer.Argument()), calc.Description(offer.Argument()), nil
}

// HandleOffers computes a discount for every product in c that has an
// offer and appends the qualifying ones to r. Products are visited in the
// order they first entered the cart. Either every discount is added or,
// on error, none is.
func (e *Engine) HandleOffers(
	ctx context.Context,
	c *cart.ShoppingCart,
	r *receipt.Receipt,
	offers map[model.Product]model.Offer,
	cat catalog.Catalog,
) error {
	if c == nil {
		return model.NewValueError("cart cannot be nil")
	}
	if r == nil {
		return model.NewValueError("receipt cannot be nil")
	}
	if offers == nil {
		return model.NewValueError("offers must be a map, got nil")
	}
	if cat == nil {
		return model.NewValueError("catalog cannot be nil")
	}
	if len(offers) == 0 {
		return nil
	}

	quantities := c.ProductQuantities()
	discounts := make([]model.Discount, 0, len(offers))

	for _, product := range c.Products() {
		offer, ok := offers[product]
		if !ok {
			continue
		}
		if offer.IsZero() {
			return model.NewValueError("offer for %s is empty", product.Name())
		}

		unitPrice, err := cat.UnitPrice(ctx, product)
		if err != nil {
			e.logger.Error().
				Err(err).
				Str("product", product.Name()).
				Msg("failed to look up unit price")
			return fmt.Errorf("failed to look up unit price for %s: %w", product.Name(), err)
		}

		quantity := quantities[product]
		amount, description, err := e.Evaluate(offer, quantity, unitPrice)
		if err != nil {
			return err
		}

		if amount == 0 {
			e.logger.Debug().
				Str("product", product.Name()).
				Str("offer_type", offer.OfferType().String()).
				Float64("quantity", quantity).
				Msg("offer did not qualify")
			continue
		}
		discount, err := model.NewDiscount(product, description, amount)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("product", product.Name()).
				Str("offer_type", offer.OfferType().String()).
				Float64("amount", amount).
				Msg("offer produced an invalid discount")
			return err
		}
		if !r.HasProduct(product) {
			return model.NewValueError("cannot apply discount: product not in receipt: %s", product.Name())
		}
		discounts = append(discounts, discount)
	}

	for _, discount := range discounts {
		if err := r.AddDiscount(discount); err != nil {
			return err
		}
		e.logger.Debug().
			Str("product", discount.Product().Name()).
			Str("description", discount.Description()).
			Float64("amount", discount.Amount()).
			Msg("discount applied")
	}

	return nil
}
