package binding

import (
	"context"
	"sync"

	"soltana-store-api/internal/cart"
	"soltana-store-api/internal/model"
)

// CartBinding wraps the cart manager for UI consumers, raising a
// transient busy flag around every mutation so callers can show
// feedback while a change is applied.
type CartBinding struct {
	manager *cart.Manager

	mu   sync.Mutex
	busy bool
}

// NewCartBinding creates a binding over the given cart manager.
func NewCartBinding(m *cart.Manager) *CartBinding {
	return &CartBinding{manager: m}
}

// Items returns the current cart lines.
func (b *CartBinding) Items(ctx context.Context) []model.CartItem {
	return b.manager.GetCart(ctx)
}

// Count returns the total number of articles in the cart.
func (b *CartBinding) Count(ctx context.Context) int {
	return b.manager.Count(ctx)
}

// Total returns the cart price.
func (b *CartBinding) Total(ctx context.Context) float64 {
	return b.manager.Total(ctx)
}

// Busy reports whether a mutation is in progress.
func (b *CartBinding) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busy
}

// Add merges an item into the cart.
func (b *CartBinding) Add(ctx context.Context, item model.CartItem) {
	defer b.working()()
	b.manager.AddItem(ctx, item)
}

// Remove drops the line with the given identity.
func (b *CartBinding) Remove(ctx context.Context, productID, size, color string) {
	defer b.working()()
	b.manager.RemoveItem(ctx, productID, size, color)
}

// RemoveProduct drops every line of the product.
func (b *CartBinding) RemoveProduct(ctx context.Context, productID string) {
	defer b.working()()
	b.manager.RemoveProduct(ctx, productID)
}

// UpdateQuantity sets a line's quantity, clamped at zero.
func (b *CartBinding) UpdateQuantity(ctx context.Context, productID, size, color string, quantity int) {
	defer b.working()()
	b.manager.UpdateQuantity(ctx, productID, size, color, quantity)
}

// Clear empties the cart.
func (b *CartBinding) Clear(ctx context.Context) {
	defer b.working()()
	b.manager.ClearCart(ctx)
}

func (b *CartBinding) working() func() {
	b.mu.Lock()
	b.busy = true
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		b.busy = false
		b.mu.Unlock()
	}
}
