package teller

import (
	"context"
	"fmt"

	"supermarket/internal/cart"
	"supermarket/internal/catalog"
	"supermarket/internal/model"
	"supermarket/internal/offer"
	"supermarket/internal/receipt"

	"github.com/rs/zerolog"
)

// Teller holds the catalog and the special offers and turns carts into
// receipts. At most one offer is registered per product; registering
// another replaces it. A Teller is not safe for concurrent use.
type Teller struct {
	catalog catalog.Catalog
	offers  map[model.Product]model.Offer
	engine  *offer.Engine
	logger  zerolog.Logger
}

// New creates a teller backed by cat.
func New(cat catalog.Catalog, logger zerolog.Logger) (*Teller, error) {
	if cat == nil {
		return nil, model.NewValueError("catalog cannot be nil")
	}

	return &Teller{
		catalog: cat,
		offers:  make(map[model.Product]model.Offer),
		engine:  offer.NewEngine(logger),
		logger:  logger.With().Str("component", "teller").Logger(),
	}, nil
}

// AddSpecialOffer registers an offer for product, replacing any offer
// already registered for it.
func (t *Teller) AddSpecialOffer(offerType model.SpecialOfferType, product model.Product, argument float64) error {
	o, err := model.NewOffer(offerType, product, argument)
	if err != nil {
		return err
	}

	if previous, exists := t.offers[product]; exists {
		t.logger.Info().
			Str("product", product.Name()).
			Str("previous_offer", previous.OfferType().String()).
			Str("offer", offerType.String()).
			Msg("replacing special offer")
	}
	t.offers[product] = o

	return nil
}

// RemoveSpecialOffer drops the offer registered for product and reports
// whether there was one.
func (t *Teller) RemoveSpecialOffer(product model.Product) bool {
	if _, ok := t.offers[product]; !ok {
		return false
	}
	delete(t.offers, product)
	return true
}

// Offers returns a copy of the registered offers.
func (t *Teller) Offers() map[model.Product]model.Offer {
	out := make(map[model.Product]model.Offer, len(t.offers))
	for p, o := range t.offers {
		out[p] = o
	}
	return out
}

// Catalog returns the catalog the teller prices against.
func (t *Teller) Catalog() catalog.Catalog {
	return t.catalog
}

// ChecksOutArticlesFrom prices every distinct product in c, in order of
// first appearance, and applies the registered offers.
func (t *Teller) ChecksOutArticlesFrom(ctx context.Context, c *cart.ShoppingCart) (*receipt.Receipt, error) {
	if c == nil {
		return nil, model.NewValueError("cart cannot be nil")
	}

	r := receipt.New()
	for _, product := range c.Products() {
		quantity := c.Quantity(product)

		price, err := t.catalog.UnitPrice(ctx, product)
		if err != nil {
			t.logger.Warn().
				Err(err).
				Str("product", product.Name()).
				Msg("failed to price product")
			return nil, fmt.Errorf("failed to price %s: %w", product.Name(), err)
		}

		if err := r.AddProduct(product, quantity, price, quantity*price); err != nil {
			return nil, err
		}
	}

	if err := t.engine.HandleOffers(ctx, c, r, t.offers, t.catalog); err != nil {
		return nil, err
	}

	t.logger.Debug().
		Int("items", len(r.Items())).
		Int("discounts", len(r.Discounts())).
		Float64("total", r.TotalPrice()).
		Msg("cart checked out")

	return r, nil
}
