package service

import (
	"context"
	"testing"

	"supermarket/internal/catalog"
	"supermarket/internal/model"
	"supermarket/internal/teller"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSharedTeller(t *testing.T) *SharedTeller {
	t.Helper()

	cat := catalog.NewMemory()
	require.NoError(t, cat.AddProduct(model.MustProduct("toothbrush", model.ProductUnitEach), 0.99))
	require.NoError(t, cat.AddProduct(model.MustProduct("apples", model.ProductUnitKilo), 1.99))
	require.NoError(t, cat.AddProduct(model.MustProduct("rice", model.ProductUnitEach), 2.49))

	tl, err := teller.New(cat, zerolog.Nop())
	require.NoError(t, err)

	return NewSharedTeller(tl)
}

func TestOfferService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *model.OfferRequest
		expectError bool
		errSubstr   string
	}{
		{
			name: "Ten percent discount",
			req:  &model.OfferRequest{Name: "toothbrush", Unit: "EACH", OfferType: "TEN_PERCENT_DISCOUNT", Argument: 10},
		},
		{
			name: "Three for two ignores argument",
			req:  &model.OfferRequest{Name: "toothbrush", Unit: "each", OfferType: "three_for_two"},
		},
		{
			name:        "Unknown offer type",
			req:         &model.OfferRequest{Name: "toothbrush", Unit: "EACH", OfferType: "BOGOF", Argument: 1},
			expectError: true,
			errSubstr:   "invalid offer type",
		},
		{
			name:        "Bundle without price",
			req:         &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "TWO_FOR_AMOUNT"},
			expectError: true,
			errSubstr:   "requires a positive argument",
		},
		{
			name:        "Bad unit",
			req:         &model.OfferRequest{Name: "rice", Unit: "BOX", OfferType: "THREE_FOR_TWO"},
			expectError: true,
			errSubstr:   "unit must be EACH or KILO",
		},
		{
			name:        "Nil request",
			req:         nil,
			expectError: true,
			errSubstr:   "offer request is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOfferService(newSharedTeller(t), zerolog.Nop())

			resp, err := svc.Register(ctx, tt.req)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, model.IsValueViolation(err))
				assert.Contains(t, err.Error(), tt.errSubstr)
				assert.Nil(t, resp)
				assert.Empty(t, svc.List(ctx))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "toothbrush", resp.Name)
			assert.Equal(t, "EACH", resp.Unit)
			assert.Len(t, svc.List(ctx), 1)
		})
	}
}

func TestOfferService_RegisterReplaces(t *testing.T) {
	ctx := context.Background()
	svc := NewOfferService(newSharedTeller(t), zerolog.Nop())

	_, err := svc.Register(ctx, &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "TWO_FOR_AMOUNT", Argument: 4})
	require.NoError(t, err)
	resp, err := svc.Register(ctx, &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "FIVE_FOR_AMOUNT", Argument: 9.5})
	require.NoError(t, err)

	assert.Equal(t, "FIVE_FOR_AMOUNT", resp.OfferType)
	assert.Equal(t, []model.OfferResponse{*resp}, svc.List(ctx))
}

func TestOfferService_ListSorted(t *testing.T) {
	ctx := context.Background()
	shared := newSharedTeller(t)
	svc := NewOfferService(shared, zerolog.Nop())

	require.NoError(t, shared.AddSpecialOffer(model.ThreeForTwo, model.MustProduct("toothbrush", model.ProductUnitEach), 0))
	require.NoError(t, shared.AddSpecialOffer(model.TenPercentDiscount, model.MustProduct("apples", model.ProductUnitKilo), 20))
	require.NoError(t, shared.AddSpecialOffer(model.TwoForAmount, model.MustProduct("rice", model.ProductUnitEach), 4))

	offers := svc.List(ctx)

	require.Len(t, offers, 3)
	assert.Equal(t, "apples", offers[0].Name)
	assert.Equal(t, "rice", offers[1].Name)
	assert.Equal(t, "toothbrush", offers[2].Name)
	assert.Equal(t, 20.0, offers[0].Argument)
}

func TestOfferService_Import(t *testing.T) {
	ctx := context.Background()
	toothbrush := model.MustProduct("toothbrush", model.ProductUnitEach)

	first, err := model.NewOffer(model.TenPercentDiscount, toothbrush, 10)
	require.NoError(t, err)
	second, err := model.NewOffer(model.ThreeForTwo, toothbrush, 0)
	require.NoError(t, err)

	svc := NewOfferService(newSharedTeller(t), zerolog.Nop())

	require.NoError(t, svc.Import(ctx, []model.Offer{first, second}))

	offers := svc.List(ctx)
	require.Len(t, offers, 1)
	assert.Equal(t, "THREE_FOR_TWO", offers[0].OfferType)
}

func TestOfferService_Import_InvalidOfferRegistersNothing(t *testing.T) {
	ctx := context.Background()
	rice := model.MustProduct("rice", model.ProductUnitEach)

	valid, err := model.NewOffer(model.ThreeForTwo, rice, 0)
	require.NoError(t, err)

	svc := NewOfferService(newSharedTeller(t), zerolog.Nop())

	err = svc.Import(ctx, []model.Offer{valid, {}})

	require.Error(t, err)
	assert.True(t, model.IsValueViolation(err))
	assert.Contains(t, err.Error(), "offer 1")
	assert.Empty(t, svc.List(ctx))
}

func TestOfferService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := NewOfferService(newSharedTeller(t), zerolog.Nop())

	_, err := svc.Register(ctx, &model.OfferRequest{Name: "rice", Unit: "EACH", OfferType: "THREE_FOR_TWO"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "rice", "each"))
	assert.Empty(t, svc.List(ctx))

	err = svc.Remove(ctx, "rice", "EACH")
	assert.ErrorIs(t, err, model.ErrOfferNotFound)

	err = svc.Remove(ctx, "rice", "BOX")
	require.Error(t, err)
	assert.True(t, model.IsValueViolation(err))
}
