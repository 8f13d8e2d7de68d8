package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"soltana-store-api/internal/model"
)

// MySQLCatalogRepository implements CatalogRepository against the
// hosted MySQL backend.
type MySQLCatalogRepository struct {
	db *sql.DB
}

// NewMySQLCatalogRepository creates a catalog repository over an open
// connection pool.
func NewMySQLCatalogRepository(db *sql.DB) *MySQLCatalogRepository {
	return &MySQLCatalogRepository{db: db}
}

// ListProducts returns all active products with their variant rows
// attached.
func (r *MySQLCatalogRepository) ListProducts(ctx context.Context) ([]ProductRow, error) {
	query := `
		SELECT id, name, description, price, discount_price, category_id, images, sizes, colors
		FROM products
		WHERE is_active = 1`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]ProductRow, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			p                                 ProductRow
			description, categoryID           sql.NullString
			discountPrice                     sql.NullFloat64
			imagesJSON, sizesJSON, colorsJSON []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Price, &discountPrice,
			&categoryID, &imagesJSON, &sizesJSON, &colorsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		p.Description = description.String
		p.CategoryID = categoryID.String
		if discountPrice.Valid {
			v := discountPrice.Float64
			p.DiscountPrice = &v
		}
		p.Images = decodeJSONList[string](imagesJSON, p.ID, "images")
		p.StaticSizes = decodeJSONList[string](sizesJSON, p.ID, "sizes")
		p.StaticColors = decodeJSONList[model.Color](colorsJSON, p.ID, "colors")

		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	if err := r.attachVariants(ctx, products, index); err != nil {
		return nil, err
	}
	return products, nil
}

// attachVariants loads every variant row and attaches it to its product.
func (r *MySQLCatalogRepository) attachVariants(ctx context.Context, products []ProductRow, index map[string]int) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		SELECT id, product_id, size, color_name, color_hex, quantity
		FROM product_variants`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list product variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v model.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Size, &v.ColorName, &v.ColorHex, &v.Quantity); err != nil {
			return fmt.Errorf("failed to scan variant row: %w", err)
		}
		if i, ok := index[v.ProductID]; ok {
			products[i].Variants = append(products[i].Variants, v)
		}
	}
	return rows.Err()
}

// ListCategories returns all categories ordered by display order.
func (r *MySQLCatalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, image_url, display_order
		FROM categories
		ORDER BY display_order ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var (
			c        model.Category
			imageURL sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &imageURL, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		c.ImageURL = imageURL.String
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListWilayas returns all active delivery zones ordered by id.
func (r *MySQLCatalogRepository) ListWilayas(ctx context.Context) ([]model.Wilaya, error) {
	query := `
		SELECT id, name, delivery_price_home, delivery_price_desk
		FROM wilayas
		WHERE is_active = 1
		ORDER BY CAST(id AS UNSIGNED) ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list wilayas: %w", err)
	}
	defer rows.Close()

	wilayas := make([]model.Wilaya, 0)
	for rows.Next() {
		var w model.Wilaya
		if err := rows.Scan(&w.ID, &w.Name, &w.DeliveryHome, &w.DeliveryPost); err != nil {
			return nil, fmt.Errorf("failed to scan wilaya row: %w", err)
		}
		wilayas = append(wilayas, w)
	}
	return wilayas, rows.Err()
}

// GetSiteSettings returns the single settings row, or nil when the
// table is empty.
func (r *MySQLCatalogRepository) GetSiteSettings(ctx context.Context) (*model.SiteSettings, error) {
	query := `
		SELECT site_name, logo_url, favicon_url, primary_color, secondary_color,
		       announcement_text, hero_image_url, hero_title, hero_subtitle,
		       delivery_company_name
		FROM site_settings
		LIMIT 1`

	var (
		s                                                                              model.SiteSettings
		faviconURL, announcement, heroImage, heroTitle, heroSubtitle, deliveryCompany sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.SiteName, &s.LogoURL, &faviconURL, &s.PrimaryColor, &s.SecondaryColor,
		&announcement, &heroImage, &heroTitle, &heroSubtitle, &deliveryCompany,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	s.FaviconURL = faviconURL.String
	s.AnnouncementText = announcement.String
	s.HeroImageURL = heroImage.String
	s.HeroTitle = heroTitle.String
	s.HeroSubtitle = heroSubtitle.String
	s.DeliveryCompanyName = deliveryCompany.String
	return &s, nil
}

// GetAboutUs returns the single about-us row, or nil when the table is
// empty.
func (r *MySQLCatalogRepository) GetAboutUs(ctx context.Context) (*model.AboutUsContent, error) {
	query := `SELECT title, content, features FROM about_us_content LIMIT 1`

	var (
		a            model.AboutUsContent
		featuresJSON []byte
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&a.Title, &a.Content, &featuresJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get about us content: %w", err)
	}
	a.Features = decodeJSONList[model.AboutFeature](featuresJSON, "about_us", "features")
	return &a, nil
}

// Close closes the database connection.
func (r *MySQLCatalogRepository) Close() error {
	return r.db.Close()
}

// decodeJSONList decodes a JSON array column, tolerating NULL and
// malformed content: bad columns are logged and read as empty.
func decodeJSONList[T any](raw []byte, rowID, column string) []T {
	if len(raw) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[CatalogRepository] Malformed %s column on %s: %v", column, rowID, err)
		return nil
	}
	return out
}

// Ensure MySQLCatalogRepository implements CatalogRepository
var _ CatalogRepository = (*MySQLCatalogRepository)(nil)
