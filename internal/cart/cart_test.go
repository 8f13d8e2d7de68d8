package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soltana-store-api/internal/cache"
	"soltana-store-api/internal/model"
)

func newTestManager() *Manager {
	return NewManager(cache.New(nil, cache.DefaultOptions()))
}

func ptr(f float64) *float64 { return &f }

func TestGetCartEmptyByDefault(t *testing.T) {
	m := newTestManager()
	items := m.GetCart(context.Background())
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAddItemAppendsNewLine(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", Name: "Kaftan", Price: 4500, SelectedSize: "M", SelectedColor: "Emerald", Quantity: 2})

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald", Quantity: 2})
	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald", Quantity: 3})

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemDifferentVariantIsSeparateLine(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})
	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "L", SelectedColor: "Emerald"})
	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Ivory"})

	assert.Len(t, m.GetCart(ctx), 3)
}

func TestAddItemZeroQuantityCountsAsOne(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})
	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItemIsVariantScoped(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})
	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "L", SelectedColor: "Emerald"})

	m.RemoveItem(ctx, "p1", "M", "Emerald")

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].SelectedSize)
}

func TestRemoveItemAbsentLineIsNoop(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})
	m.RemoveItem(ctx, "p2", "M", "Emerald")

	assert.Len(t, m.GetCart(ctx), 1)
}

func TestRemoveProductDropsAllVariants(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})
	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "L", SelectedColor: "Ivory"})
	m.AddItem(ctx, model.CartItem{ProductID: "p2", SelectedSize: "S", SelectedColor: "Black"})

	m.RemoveProduct(ctx, "p1")

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestUpdateQuantitySetsLine(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald", Quantity: 1})
	m.UpdateQuantity(ctx, "p1", "M", "Emerald", 7)

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantityClampsToZeroWithoutPruning(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald", Quantity: 3})
	m.UpdateQuantity(ctx, "p1", "M", "Emerald", -4)

	items := m.GetCart(ctx)
	require.Len(t, items, 1, "a zero-quantity line stays until removed")
	assert.Equal(t, 0, items[0].Quantity)
}

func TestUpdateQuantityUnknownLineIsNoop(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald", Quantity: 1})
	m.UpdateQuantity(ctx, "p9", "M", "Emerald", 5)

	items := m.GetCart(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestClearCart(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald"})
	m.ClearCart(ctx)

	assert.Empty(t, m.GetCart(ctx))
	assert.Equal(t, 0, m.Count(ctx))
}

func TestCountSumsQuantities(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.AddItem(ctx, model.CartItem{ProductID: "p1", SelectedSize: "M", SelectedColor: "Emerald", Quantity: 2})
	m.AddItem(ctx, model.CartItem{ProductID: "p2", SelectedSize: "S", SelectedColor: "Black", Quantity: 1})

	assert.Equal(t, 3, m.Count(ctx))
}

func TestCountTreatsZeroQuantityAsOne(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.SaveCart(ctx, []model.CartItem{
		{ProductID: "p1", Quantity: 0},
		{ProductID: "p2", Quantity: 2},
	})

	assert.Equal(t, 3, m.Count(ctx))
}

func TestTotalUsesDiscountPriceWhenPresent(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.SaveCart(ctx, []model.CartItem{
		{ProductID: "p1", Price: 1000, DiscountPrice: ptr(800), Quantity: 2},
		{ProductID: "p2", Price: 700, Quantity: 1},
	})

	assert.InDelta(t, 2300.0, m.Total(ctx), 0.001)
}

func TestTotalTreatsZeroQuantityAsOne(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	m.SaveCart(ctx, []model.CartItem{{ProductID: "p1", Price: 500}})

	assert.InDelta(t, 500.0, m.Total(ctx), 0.001)
}
