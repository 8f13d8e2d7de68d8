package model

import "time"

// Delivery types accepted on an order.
const (
	DeliveryHome = "home"
	DeliveryPost = "post"
)

// Order statuses. New orders always start as pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a customer order row.
type Order struct {
	ID                string    `json:"id"`
	CustomerFirstName string    `json:"customer_first_name"`
	CustomerLastName  string    `json:"customer_last_name"`
	CustomerPhone     string    `json:"customer_phone"`
	WilayaID          string    `json:"wilaya_id"`
	MunicipalityName  string    `json:"municipality_name"`
	Address           string    `json:"address"`
	DeliveryType      string    `json:"delivery_type"`
	TotalPrice        float64   `json:"total_price"`
	Status            string    `json:"status"`
	InstagramAccount  string    `json:"instagram_account,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// OrderItem is one line of an order, snapshotting the product name and
// price at purchase time.
type OrderItem struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
}

// NewOrder is the checkout payload: customer and address fields plus
// the cart lines being purchased.
type NewOrder struct {
	CustomerFirstName string     `json:"customer_first_name"`
	CustomerLastName  string     `json:"customer_last_name"`
	CustomerPhone     string     `json:"customer_phone"`
	WilayaID          string     `json:"wilaya_id"`
	MunicipalityName  string     `json:"municipality_name"`
	Address           string     `json:"address"`
	DeliveryType      string     `json:"delivery_type"`
	TotalPrice        float64    `json:"total_price"`
	InstagramAccount  string     `json:"instagram_account,omitempty"`
	Items             []CartItem `json:"items"`
}
