package handler

import (
	"encoding/json"
	"net/http"

	"soltana-store-api/internal/binding"
	"soltana-store-api/internal/model"
	"soltana-store-api/pkg/apierror"
	"soltana-store-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// CartHandler exposes the cart binding over HTTP.
type CartHandler struct {
	cart *binding.CartBinding
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart *binding.CartBinding) *CartHandler {
	return &CartHandler{cart: cart}
}

// cartView is the full cart state returned after every read and
// mutation.
type cartView struct {
	Items []model.CartItem `json:"items"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
}

func (h *CartHandler) view(r *http.Request) cartView {
	ctx := r.Context()
	return cartView{
		Items: h.cart.Items(ctx),
		Count: h.cart.Count(ctx),
		Total: h.cart.Total(ctx),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.view(r))
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		response.Error(w, apierror.BadRequest("invalid cart item"))
		return
	}
	if item.ProductID == "" {
		response.Error(w, apierror.BadRequest("product_id is required"))
		return
	}

	h.cart.Add(r.Context(), item)
	response.OK(w, h.view(r))
}

// RemoveItem handles DELETE /api/v1/cart/items/{product_id}.
// With size and color query parameters it removes the single matching
// line; without them it removes every line of the product.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		response.Error(w, apierror.BadRequest("product_id is required"))
		return
	}

	size := r.URL.Query().Get("size")
	color := r.URL.Query().Get("color")
	if size == "" && color == "" {
		h.cart.RemoveProduct(r.Context(), productID)
	} else {
		h.cart.Remove(r.Context(), productID, size, color)
	}
	response.OK(w, h.view(r))
}

// UpdateQuantity handles PUT /api/v1/cart/items/{product_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		response.Error(w, apierror.BadRequest("product_id is required"))
		return
	}

	var req struct {
		SelectedSize  string `json:"selected_size"`
		SelectedColor string `json:"selected_color"`
		Quantity      int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid quantity update"))
		return
	}

	h.cart.UpdateQuantity(r.Context(), productID, req.SelectedSize, req.SelectedColor, req.Quantity)
	response.OK(w, h.view(r))
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	response.NoContent(w)
}
