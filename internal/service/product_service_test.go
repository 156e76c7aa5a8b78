package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"supermarket/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	entries := []model.CatalogEntry{
		{Name: "apples", Unit: "KILO", Price: 1.99, UpdatedAt: time.Now()},
		{Name: "toothbrush", Unit: "EACH", Price: 0.99, UpdatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
		mockReturn     []model.CatalogEntry
		mockError      error
		expectError    bool
	}{
		{
			name:           "Success with valid pagination",
			limit:          10,
			offset:         0,
			expectedLimit:  10,
			expectedOffset: 0,
			mockReturn:     entries,
		},
		{
			name:           "Zero limit defaults to 10",
			limit:          0,
			offset:         0,
			expectedLimit:  10,
			expectedOffset: 0,
			mockReturn:     entries,
		},
		{
			name:           "Limit capped at 100",
			limit:          500,
			offset:         5,
			expectedLimit:  100,
			expectedOffset: 5,
			mockReturn:     []model.CatalogEntry{},
		},
		{
			name:           "Negative offset reset to 0",
			limit:          5,
			offset:         -3,
			expectedLimit:  5,
			expectedOffset: 0,
			mockReturn:     entries,
		},
		{
			name:           "Repository error",
			limit:          10,
			offset:         0,
			expectedLimit:  10,
			expectedOffset: 0,
			mockError:      errors.New("database error"),
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			svc := NewProductService(mockRepo, logger)

			if tt.mockError != nil {
				mockRepo.On("GetAll", ctx, tt.expectedLimit, tt.expectedOffset).Return(nil, tt.mockError)
			} else {
				mockRepo.On("GetAll", ctx, tt.expectedLimit, tt.expectedOffset).Return(tt.mockReturn, nil)
			}

			result, err := svc.GetAll(ctx, tt.limit, tt.offset)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get products")
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Import(t *testing.T) {
	ctx := context.Background()
	products := []model.PricedProduct{
		{Product: model.MustProduct("toothbrush", model.ProductUnitEach), Price: 0.99},
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Upsert", ctx, products).Return(nil)

		err := NewProductService(mockRepo, zerolog.Nop()).Import(ctx, products)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error is wrapped", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		repoErr := model.NewValueError("price must be >= 0")
		mockRepo.On("Upsert", ctx, products).Return(repoErr)

		err := NewProductService(mockRepo, zerolog.Nop()).Import(ctx, products)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		assert.True(t, model.IsValueViolation(err))
	})
}
