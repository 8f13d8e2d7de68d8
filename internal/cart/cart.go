// Package cart manages the shopping cart as a single long-lived cache
// entry. The cart has no authoritative remote source until checkout, so
// the policy is cache-only: always trust the cached lines, never
// refetch.
package cart

import (
	"context"
	"errors"
	"log"

	"soltana-store-api/internal/cache"
	"soltana-store-api/internal/model"
)

// Manager reads and mutates the cart entry. All mutations go through
// SaveCart, which rewrites the whole entry with a renewed timestamp.
type Manager struct {
	cache *cache.Manager
}

// NewManager creates a cart manager over the given cache.
func NewManager(c *cache.Manager) *Manager {
	return &Manager{cache: c}
}

// GetCart returns the current cart lines. Never nil: a missing or
// expired entry reads back as an empty cart.
func (m *Manager) GetCart(ctx context.Context) []model.CartItem {
	items, err := cache.GetAs[[]model.CartItem](ctx, m.cache, cache.KeyCart)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("[CartManager] Failed to read cart: %v", err)
		}
		return []model.CartItem{}
	}
	if items == nil {
		return []model.CartItem{}
	}
	return items
}

// SaveCart stores items as the new cart content.
func (m *Manager) SaveCart(ctx context.Context, items []model.CartItem) {
	cache.SetValue(ctx, m.cache, cache.KeyCart, items, cache.TTLCart)
}

// AddItem merges item into the cart. A line with the same
// (product, size, color) identity has its quantity incremented;
// otherwise the item is appended as a new line. A non-positive
// quantity on item counts as 1.
func (m *Manager) AddItem(ctx context.Context, item model.CartItem) {
	items := m.GetCart(ctx)
	for idx := range items {
		if items[idx].SameLine(item) {
			items[idx].Quantity = qtyOrOne(items[idx].Quantity) + qtyOrOne(item.Quantity)
			m.SaveCart(ctx, items)
			return
		}
	}
	item.Quantity = qtyOrOne(item.Quantity)
	items = append(items, item)
	m.SaveCart(ctx, items)
}

// RemoveItem removes the single line matching the full
// (productID, size, color) identity. Removing an absent line is a
// no-op.
func (m *Manager) RemoveItem(ctx context.Context, productID, size, color string) {
	target := model.CartItem{ProductID: productID, SelectedSize: size, SelectedColor: color}
	items := m.GetCart(ctx)
	kept := items[:0]
	for _, it := range items {
		if !it.SameLine(target) {
			kept = append(kept, it)
		}
	}
	m.SaveCart(ctx, kept)
}

// RemoveProduct removes every line of the given product regardless of
// size and color.
func (m *Manager) RemoveProduct(ctx context.Context, productID string) {
	items := m.GetCart(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	m.SaveCart(ctx, kept)
}

// UpdateQuantity sets the quantity of the line matching the full
// identity, clamped at zero. A zero-quantity line stays in the cart
// until explicitly removed; pruning is the caller's decision.
func (m *Manager) UpdateQuantity(ctx context.Context, productID, size, color string, quantity int) {
	target := model.CartItem{ProductID: productID, SelectedSize: size, SelectedColor: color}
	items := m.GetCart(ctx)
	for idx := range items {
		if items[idx].SameLine(target) {
			items[idx].Quantity = max(0, quantity)
			m.SaveCart(ctx, items)
			return
		}
	}
}

// ClearCart deletes the cart entry entirely. An emptied cart and a
// never-filled cart both read back as no lines.
func (m *Manager) ClearCart(ctx context.Context) {
	m.cache.Delete(ctx, cache.KeyCart)
}

// Count returns the total number of articles across all lines.
func (m *Manager) Count(ctx context.Context) int {
	total := 0
	for _, it := range m.GetCart(ctx) {
		total += qtyOrOne(it.Quantity)
	}
	return total
}

// Total returns the cart price. The discounted price, when present,
// always wins over the base price.
func (m *Manager) Total(ctx context.Context) float64 {
	var sum float64
	for _, it := range m.GetCart(ctx) {
		sum += it.EffectivePrice() * float64(qtyOrOne(it.Quantity))
	}
	return sum
}

// qtyOrOne treats an unset or clamped-to-zero quantity as a single
// article, matching how lines without an explicit quantity are counted.
func qtyOrOne(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}
