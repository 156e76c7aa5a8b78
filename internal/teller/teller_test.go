package teller

import (
	"context"
	"errors"
	"testing"

	"supermarket/internal/cart"
	"supermarket/internal/catalog"
	"supermarket/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	toothbrush = model.MustProduct("toothbrush", model.ProductUnitEach)
	apples     = model.MustProduct("apples", model.ProductUnitKilo)
)

func newTeller(t *testing.T) *Teller {
	t.Helper()
	cat := catalog.NewMemory()
	require.NoError(t, cat.AddProduct(toothbrush, 0.99))
	require.NoError(t, cat.AddProduct(apples, 1.99))

	tl, err := New(cat, zerolog.Nop())
	require.NoError(t, err)
	return tl
}

func TestNew(t *testing.T) {
	cat := catalog.NewMemory()

	tl, err := New(cat, zerolog.Nop())

	require.NoError(t, err)
	assert.Same(t, cat, tl.Catalog())
	assert.Empty(t, tl.Offers())
}

func TestNew_NilCatalog(t *testing.T) {
	tl, err := New(nil, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog cannot be nil")
	assert.Nil(t, tl)
}

func TestTeller_AddSpecialOffer(t *testing.T) {
	tl := newTeller(t)

	require.NoError(t, tl.AddSpecialOffer(model.TenPercentDiscount, toothbrush, 10.0))

	stored, ok := tl.Offers()[toothbrush]
	require.True(t, ok)
	assert.Equal(t, model.TenPercentDiscount, stored.OfferType())
	assert.Equal(t, 10.0, stored.Argument())
	assert.Equal(t, toothbrush, stored.Product())
}

func TestTeller_AddSpecialOffer_LastWriteWins(t *testing.T) {
	tl := newTeller(t)

	require.NoError(t, tl.AddSpecialOffer(model.TenPercentDiscount, toothbrush, 10.0))
	require.NoError(t, tl.AddSpecialOffer(model.ThreeForTwo, toothbrush, 0))

	offers := tl.Offers()
	require.Len(t, offers, 1)
	assert.Equal(t, model.ThreeForTwo, offers[toothbrush].OfferType())
}

func TestTeller_AddSpecialOffer_Invalid(t *testing.T) {
	tl := newTeller(t)

	err := tl.AddSpecialOffer(model.TwoForAmount, toothbrush, -1)

	require.Error(t, err)
	assert.True(t, model.IsValueViolation(err))
	assert.Empty(t, tl.Offers())
}

func TestTeller_RemoveSpecialOffer(t *testing.T) {
	tl := newTeller(t)
	require.NoError(t, tl.AddSpecialOffer(model.ThreeForTwo, toothbrush, 0))

	assert.True(t, tl.RemoveSpecialOffer(toothbrush))
	assert.False(t, tl.RemoveSpecialOffer(toothbrush))
	assert.False(t, tl.RemoveSpecialOffer(apples))

	assert.Empty(t, tl.Offers())
}

func TestTeller_OffersIsACopy(t *testing.T) {
	tl := newTeller(t)
	require.NoError(t, tl.AddSpecialOffer(model.ThreeForTwo, toothbrush, 0))

	offers := tl.Offers()
	delete(offers, toothbrush)

	assert.Len(t, tl.Offers(), 1)
}

func TestTeller_CheckoutEmptyCart(t *testing.T) {
	tl := newTeller(t)

	r, err := tl.ChecksOutArticlesFrom(context.Background(), cart.New())

	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Empty(t, r.Items())
	assert.Empty(t, r.Discounts())
	assert.Equal(t, 0.0, r.TotalPrice())
}

func TestTeller_CheckoutProcessesItems(t *testing.T) {
	tl := newTeller(t)
	c := cart.New()
	require.NoError(t, c.AddItemQuantity(toothbrush, 2))
	require.NoError(t, c.AddItemQuantity(apples, 1.5))

	r, err := tl.ChecksOutArticlesFrom(context.Background(), c)

	require.NoError(t, err)
	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, toothbrush, items[0].Product())
	assert.Equal(t, 2.0, items[0].Quantity())
	assert.InDelta(t, 1.98, items[0].TotalPrice(), 1e-9)
	assert.Equal(t, apples, items[1].Product())
	assert.Equal(t, 1.5, items[1].Quantity())
	assert.InDelta(t, 2.985, items[1].TotalPrice(), 1e-9)
}

func TestTeller_CheckoutMergesRepeatedEntries(t *testing.T) {
	tl := newTeller(t)
	c := cart.New()
	require.NoError(t, c.AddItem(toothbrush))
	require.NoError(t, c.AddItemQuantity(apples, 0.5))
	require.NoError(t, c.AddItem(toothbrush))
	require.NoError(t, c.AddItem(toothbrush))
	require.NoError(t, tl.AddSpecialOffer(model.ThreeForTwo, toothbrush, 0))

	r, err := tl.ChecksOutArticlesFrom(context.Background(), c)

	require.NoError(t, err)
	require.Len(t, r.Items(), 2)
	assert.Equal(t, 3.0, r.Items()[0].Quantity())
	require.Len(t, r.Discounts(), 1)
	assert.InDelta(t, -0.99, r.Discounts()[0].Amount(), 1e-9)
	assert.InDelta(t, 1.98+0.995, r.TotalPrice(), 1e-9)
}

func TestTeller_CheckoutUnknownProduct(t *testing.T) {
	tl := newTeller(t)
	c := cart.New()
	require.NoError(t, c.AddItem(model.MustProduct("caviar", model.ProductUnitEach)))

	r, err := tl.ChecksOutArticlesFrom(context.Background(), c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrProductNotFound))
	assert.Nil(t, r)
}

func TestTeller_CheckoutNilCart(t *testing.T) {
	_, err := newTeller(t).ChecksOutArticlesFrom(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart cannot be nil")
}
