package service

import (
	"context"
	"fmt"
	"sort"

	"supermarket/internal/model"

	"github.com/rs/zerolog"
)

// offerService implements OfferService.
type offerService struct {
	teller *SharedTeller
	logger zerolog.Logger
}

// NewOfferService creates a new offer service.
func NewOfferService(teller *SharedTeller, logger zerolog.Logger) OfferService {
	return &offerService{
		teller: teller,
		logger: logger.With().Str("service", "offer").Logger(),
	}
}

// List returns the registered offers ordered by product name and unit.
func (s *offerService) List(ctx context.Context) []model.OfferResponse {
	offers := s.teller.Offers()

	out := make([]model.OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Unit < out[j].Unit
	})

	return out
}

// Register adds an offer, replacing any offer for the same product.
func (s *offerService) Register(ctx context.Context, req *model.OfferRequest) (*model.OfferResponse, error) {
	if req == nil {
		return nil, model.NewValueError("offer request is nil")
	}

	product, err := model.ParseProduct(req.Name, req.Unit)
	if err != nil {
		return nil, err
	}
	offerType, err := model.ParseSpecialOfferType(req.OfferType)
	if err != nil {
		return nil, err
	}

	if err := s.teller.AddSpecialOffer(offerType, product, req.Argument); err != nil {
		s.logger.Warn().
			Err(err).
			Str("product", product.String()).
			Str("offer_type", offerType.String()).
			Msg("offer rejected")
		return nil, err
	}

	s.logger.Info().
		Str("product", product.String()).
		Str("offer_type", offerType.String()).
		Float64("argument", req.Argument).
		Msg("offer registered")

	resp := toOfferResponse(s.teller.Offers()[product])
	return &resp, nil
}

// Remove drops the offer registered for the product named by name and unit.
func (s *offerService) Remove(ctx context.Context, name, unit string) error {
	product, err := model.ParseProduct(name, unit)
	if err != nil {
		return err
	}

	if !s.teller.RemoveSpecialOffer(product) {
		return model.ErrOfferNotFound
	}

	s.logger.Info().Str("product", product.String()).Msg("offer removed")

	return nil
}

// Import registers offers loaded from price lists. Later offers for the
// same product replace earlier ones. Nothing is registered if any offer
// is invalid.
func (s *offerService) Import(ctx context.Context, offers []model.Offer) error {
	if err := s.teller.AddSpecialOffers(offers); err != nil {
		s.logger.Error().Err(err).Int("count", len(offers)).Msg("failed to import offers")
		return fmt.Errorf("failed to import offers: %w", err)
	}

	s.logger.Info().Int("count", len(offers)).Msg("offers imported")

	return nil
}

func toOfferResponse(o model.Offer) model.OfferResponse {
	return model.OfferResponse{
		Name:      o.Product().Name(),
		Unit:      o.Product().Unit().String(),
		OfferType: o.OfferType().String(),
		Argument:  o.Argument(),
	}
}
