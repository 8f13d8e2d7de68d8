package service

import (
	"context"
	"log"

	"soltana-store-api/internal/cache"
	"soltana-store-api/internal/model"
	"soltana-store-api/internal/repository"
)

// CatalogService is the read-through facade over the hosted backend.
// Every reader follows the same template: consult the cache under the
// resource's fixed key, hit the backend only on a miss, map the rows
// into the storefront shape, store the result under the resource's TTL
// class. Backend failures degrade to empty lists or nil singletons so
// the UI can fall back to its built-in defaults; delivery zones
// additionally fall back to the bundled static table because checkout
// cannot work without a fee schedule.
type CatalogService struct {
	repo  repository.CatalogRepository
	cache *cache.Manager
}

// NewCatalogService creates the facade. Returns nil if repo is nil
// (required dependency).
func NewCatalogService(repo repository.CatalogRepository, c *cache.Manager) *CatalogService {
	if repo == nil {
		return nil
	}
	return &CatalogService{repo: repo, cache: c}
}

// FetchProducts returns the product list, cached under the short TTL
// class since prices and stock move quickly.
func (s *CatalogService) FetchProducts(ctx context.Context) []model.Product {
	if cached, err := cache.GetAs[[]model.Product](ctx, s.cache, cache.KeyAllProducts); err == nil {
		return cached
	}

	rows, err := s.repo.ListProducts(ctx)
	if err != nil {
		log.Printf("[CatalogService] Failed to fetch products: %v", err)
		return []model.Product{}
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProduct(row))
	}

	cache.SetValue(ctx, s.cache, cache.KeyAllProducts, products, cache.TTLShort)
	return products
}

// FetchCategories returns the category list, cached under the static
// TTL class.
func (s *CatalogService) FetchCategories(ctx context.Context) []model.Category {
	if cached, err := cache.GetAs[[]model.Category](ctx, s.cache, cache.KeySiteCategories); err == nil {
		return cached
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		log.Printf("[CatalogService] Failed to fetch categories: %v", err)
		return []model.Category{}
	}

	cache.SetValue(ctx, s.cache, cache.KeySiteCategories, categories, cache.TTLStatic)
	return categories
}

// FetchWilayas returns the delivery zones, cached under the static TTL
// class. When the backend errors or returns zero rows the bundled
// static table is returned instead, so checkout always has a fee
// schedule to price against. The fallback is not cached: the next read
// retries the backend.
func (s *CatalogService) FetchWilayas(ctx context.Context) []model.Wilaya {
	if cached, err := cache.GetAs[[]model.Wilaya](ctx, s.cache, cache.KeyWilayasList); err == nil {
		return cached
	}

	wilayas, err := s.repo.ListWilayas(ctx)
	if err != nil {
		log.Printf("[CatalogService] Failed to fetch wilayas, using bundled table: %v", err)
		return DefaultWilayas()
	}
	if len(wilayas) == 0 {
		log.Printf("[CatalogService] Backend returned no wilayas, using bundled table")
		return DefaultWilayas()
	}

	cache.SetValue(ctx, s.cache, cache.KeyWilayasList, wilayas, cache.TTLStatic)
	return wilayas
}

// FetchSiteSettings returns the settings singleton, or nil when the
// backend has none or errs.
func (s *CatalogService) FetchSiteSettings(ctx context.Context) *model.SiteSettings {
	if cached, err := cache.GetAs[*model.SiteSettings](ctx, s.cache, cache.KeySiteSettings); err == nil {
		return cached
	}

	settings, err := s.repo.GetSiteSettings(ctx)
	if err != nil {
		log.Printf("[CatalogService] Failed to fetch site settings: %v", err)
		return nil
	}
	if settings == nil {
		return nil
	}

	cache.SetValue(ctx, s.cache, cache.KeySiteSettings, settings, cache.TTLStatic)
	return settings
}

// FetchAboutUs returns the about-us singleton, or nil when the backend
// has none or errs.
func (s *CatalogService) FetchAboutUs(ctx context.Context) *model.AboutUsContent {
	if cached, err := cache.GetAs[*model.AboutUsContent](ctx, s.cache, cache.KeyAboutUsContent); err == nil {
		return cached
	}

	about, err := s.repo.GetAboutUs(ctx)
	if err != nil {
		log.Printf("[CatalogService] Failed to fetch about us content: %v", err)
		return nil
	}
	if about == nil {
		return nil
	}

	cache.SetValue(ctx, s.cache, cache.KeyAboutUsContent, about, cache.TTLStatic)
	return about
}

// mapProduct turns a backend row into the storefront shape. Sizes and
// colors are derived from the variant rows when variants exist: the
// distinct size list, and one color per name keeping the first hex
// seen. Products without variants keep their statically declared
// lists.
func mapProduct(row repository.ProductRow) model.Product {
	p := model.Product{
		ID:            row.ID,
		Name:          row.Name,
		Price:         row.Price,
		DiscountPrice: row.DiscountPrice,
		Category:      row.CategoryID,
		Images:        row.Images,
		Description:   row.Description,
		Variants:      row.Variants,
		Sizes:         row.StaticSizes,
		Colors:        row.StaticColors,
	}

	if len(row.Variants) == 0 {
		if p.Sizes == nil {
			p.Sizes = []string{}
		}
		if p.Colors == nil {
			p.Colors = []model.Color{}
		}
		return p
	}

	sizes := make([]string, 0, len(row.Variants))
	seenSizes := make(map[string]bool)
	colors := make([]model.Color, 0, len(row.Variants))
	seenColors := make(map[string]bool)
	for _, v := range row.Variants {
		if !seenSizes[v.Size] {
			seenSizes[v.Size] = true
			sizes = append(sizes, v.Size)
		}
		if !seenColors[v.ColorName] {
			seenColors[v.ColorName] = true
			colors = append(colors, model.Color{Name: v.ColorName, Hex: v.ColorHex})
		}
	}
	p.Sizes = sizes
	p.Colors = colors
	return p
}
