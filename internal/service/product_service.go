package service

import (
	"context"
	"fmt"

	"supermarket/internal/model"
	"supermarket/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves catalog entries with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.CatalogEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(entries)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return entries, nil
}

// Import inserts or reprices catalog entries.
func (s *productService) Import(ctx context.Context, products []model.PricedProduct) error {
	if err := s.productRepo.Upsert(ctx, products); err != nil {
		s.logger.Error().Err(err).Int("count", len(products)).Msg("failed to import products")
		return fmt.Errorf("failed to import products: %w", err)
	}

	s.logger.Info().Int("count", len(products)).Msg("products imported")

	return nil
}
