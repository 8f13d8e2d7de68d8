package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"soltana-store-api/internal/model"
	"soltana-store-api/pkg/uid"
)

// MySQLOrderRepository implements OrderRepository against the hosted
// MySQL backend.
type MySQLOrderRepository struct {
	db *sql.DB
}

// NewMySQLOrderRepository creates an order repository over an open
// connection pool.
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// CreateOrder inserts the order row and its item rows inside one
// transaction and returns the generated order id. New orders start in
// the pending status.
func (r *MySQLOrderRepository) CreateOrder(ctx context.Context, order model.NewOrder) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	orderID := uid.New()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_first_name, customer_last_name, customer_phone,
			wilaya_id, municipality_name, address, delivery_type, total_price,
			instagram_account, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		orderID, order.CustomerFirstName, order.CustomerLastName, order.CustomerPhone,
		order.WilayaID, order.MunicipalityName, order.Address, order.DeliveryType,
		order.TotalPrice, nullable(order.InstagramAccount), model.OrderStatusPending,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_items (id, order_id, product_id, product_name, price,
			quantity, selected_size, selected_color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range order.Items {
		_, err := stmt.ExecContext(ctx, uid.New(), orderID, item.ProductID, item.Name,
			item.EffectivePrice(), item.Quantity, item.SelectedSize, item.SelectedColor)
		if err != nil {
			// Marker for operators: without the transaction the order
			// row would already be persisted without its items.
			log.Printf("[OrderRepository] PARTIAL ORDER WRITE averted: order %s rolled back after item insert failed (product %s): %v",
				orderID, item.ProductID, err)
			return "", fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Ensure MySQLOrderRepository implements OrderRepository
var _ OrderRepository = (*MySQLOrderRepository)(nil)
