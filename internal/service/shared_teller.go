package service

import (
	"context"
	"fmt"
	"sync"

	"supermarket/internal/cart"
	"supermarket/internal/model"
	"supermarket/internal/receipt"
	"supermarket/internal/teller"
)

// SharedTeller serialises offer changes against checkouts on one teller.
// Checkouts run concurrently with each other.
type SharedTeller struct {
	mu     sync.RWMutex
	teller *teller.Teller
}

// NewSharedTeller wraps t for use by concurrent requests.
func NewSharedTeller(t *teller.Teller) *SharedTeller {
	return &SharedTeller{teller: t}
}

// Checkout checks out c and returns the receipt together with the offers
// it was priced against.
func (s *SharedTeller) Checkout(ctx context.Context, c *cart.ShoppingCart) (*receipt.Receipt, map[model.Product]model.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := s.teller.ChecksOutArticlesFrom(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	return r, s.teller.Offers(), nil
}

// AddSpecialOffer registers an offer on the underlying teller.
func (s *SharedTeller) AddSpecialOffer(offerType model.SpecialOfferType, product model.Product, argument float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.teller.AddSpecialOffer(offerType, product, argument)
}

// AddSpecialOffers registers every offer or, if any is invalid, none.
// Later offers for the same product replace earlier ones.
func (s *SharedTeller) AddSpecialOffers(offers []model.Offer) error {
	for i, o := range offers {
		if _, err := model.NewOffer(o.OfferType(), o.Product(), o.Argument()); err != nil {
			return fmt.Errorf("offer %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range offers {
		if err := s.teller.AddSpecialOffer(o.OfferType(), o.Product(), o.Argument()); err != nil {
			return err
		}
	}
	return nil
}

// RemoveSpecialOffer drops the offer for product and reports whether one
// was registered.
func (s *SharedTeller) RemoveSpecialOffer(product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.teller.RemoveSpecialOffer(product)
}

// Offers returns a copy of the registered offers.
func (s *SharedTeller) Offers() map[model.Product]model.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.teller.Offers()
}
