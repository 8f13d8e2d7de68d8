package service

import (
	"context"
	"fmt"
	"log"

	"soltana-store-api/internal/cart"
	"soltana-store-api/internal/model"
	"soltana-store-api/internal/repository"
)

// OrderService handles the checkout write path. Order creation never
// touches the cache on the way in; the only cache interaction is
// clearing the cart once the backend has accepted the order.
type OrderService struct {
	repo repository.OrderRepository
	cart *cart.Manager
}

// NewOrderService creates an order service. Returns nil if repo is nil
// (required dependency).
func NewOrderService(repo repository.OrderRepository, cartManager *cart.Manager) *OrderService {
	if repo == nil {
		return nil
	}
	return &OrderService{repo: repo, cart: cartManager}
}

// PlaceOrder validates and persists the order, then clears the cart.
// A failed insert surfaces to the caller so the UI can offer a retry;
// the cart is left intact in that case.
func (s *OrderService) PlaceOrder(ctx context.Context, order model.NewOrder) (string, error) {
	if len(order.Items) == 0 {
		return "", fmt.Errorf("order has no items")
	}
	if order.DeliveryType != model.DeliveryHome && order.DeliveryType != model.DeliveryPost {
		return "", fmt.Errorf("invalid delivery type %q", order.DeliveryType)
	}

	orderID, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to place order: %w", err)
	}

	log.Printf("[OrderService] Order %s placed - %d item(s), total %.2f", orderID, len(order.Items), order.TotalPrice)

	if s.cart != nil {
		s.cart.ClearCart(ctx)
	}
	return orderID, nil
}
