package repository

import (
	"context"

	"soltana-store-api/internal/model"
)

// ProductRow is a product row together with its variant rows, before
// the facade derives the storefront shape (unique sizes, deduplicated
// colors) from it.
type ProductRow struct {
	ID            string
	Name          string
	Description   string
	Price         float64
	DiscountPrice *float64
	CategoryID    string
	Images        []string
	StaticSizes   []string
	StaticColors  []model.Color
	Variants      []model.ProductVariant
}

// CatalogRepository reads the storefront resources from the hosted
// relational backend.
type CatalogRepository interface {
	// ListProducts returns all active products with their variant rows.
	ListProducts(ctx context.Context) ([]ProductRow, error)

	// ListCategories returns all categories ordered by display order.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// ListWilayas returns all active delivery zones ordered by id.
	ListWilayas(ctx context.Context) ([]model.Wilaya, error)

	// GetSiteSettings returns the single settings row, or nil when absent.
	GetSiteSettings(ctx context.Context) (*model.SiteSettings, error)

	// GetAboutUs returns the single about-us row, or nil when absent.
	GetAboutUs(ctx context.Context) (*model.AboutUsContent, error)

	// Close closes the repository connection.
	Close() error
}

// OrderRepository writes customer orders to the backend.
type OrderRepository interface {
	// CreateOrder inserts the order row and its item rows, returning
	// the generated order id. The whole operation fails when any
	// insert fails.
	CreateOrder(ctx context.Context, order model.NewOrder) (string, error)
}
