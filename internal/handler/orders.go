package handler

import (
	"encoding/json"
	"net/http"

	"soltana-store-api/internal/model"
	"soltana-store-api/internal/service"
	"soltana-store-api/pkg/apierror"
	"soltana-store-api/pkg/response"
)

// OrderHandler handles checkout submissions.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order model.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		response.Error(w, apierror.BadRequest("invalid order payload"))
		return
	}
	if order.CustomerPhone == "" || order.WilayaID == "" {
		response.Error(w, apierror.BadRequest("customer phone and wilaya are required"))
		return
	}

	orderID, err := h.orders.PlaceOrder(r.Context(), order)
	if err != nil {
		response.Error(w, apierror.OrderFailed(""))
		return
	}

	response.Created(w, map[string]any{
		"order_id": orderID,
		"status":   model.OrderStatusPending,
	})
}
