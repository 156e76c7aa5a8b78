package handler

import (
	"context"

	"supermarket/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context, limit, offset int) ([]model.CatalogEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogEntry), args.Error(1)
}

func (m *MockProductService) Import(ctx context.Context, products []model.PricedProduct) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

// MockOfferService is a mock implementation of OfferService.
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) List(ctx context.Context) []model.OfferResponse {
	args := m.Called(ctx)
	return args.Get(0).([]model.OfferResponse)
}

func (m *MockOfferService) Register(ctx context.Context, req *model.OfferRequest) (*model.OfferResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OfferResponse), args.Error(1)
}

func (m *MockOfferService) Remove(ctx context.Context, name, unit string) error {
	args := m.Called(ctx, name, unit)
	return args.Error(0)
}

func (m *MockOfferService) Import(ctx context.Context, offers []model.Offer) error {
	args := m.Called(ctx, offers)
	return args.Error(0)
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.ReceiptRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReceiptRecord), args.Error(1)
}

func (m *MockCheckoutService) GetReceipt(ctx context.Context, id uuid.UUID) (*model.ReceiptRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReceiptRecord), args.Error(1)
}
