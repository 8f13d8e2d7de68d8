package router

import (
	"soltana-store-api/internal/handler"
	"soltana-store-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the handlers wired into the router.
type Config struct {
	Handler        *handler.Handler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	UploadHandler  *handler.UploadHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		if cfg.CatalogHandler != nil {
			r.Get("/products", cfg.CatalogHandler.ListProducts)
			r.Get("/categories", cfg.CatalogHandler.ListCategories)
			r.Get("/wilayas", cfg.CatalogHandler.ListWilayas)
			r.Get("/settings", cfg.CatalogHandler.GetSiteSettings)
			r.Get("/about", cfg.CatalogHandler.GetAboutUs)
		}

		if cfg.CartHandler != nil {
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.CartHandler.GetCart)
				r.Delete("/", cfg.CartHandler.ClearCart)
				r.Post("/items", cfg.CartHandler.AddItem)
				r.Put("/items/{product_id}", cfg.CartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cfg.CartHandler.RemoveItem)
			})
		}

		if cfg.OrderHandler != nil {
			r.Post("/orders", cfg.OrderHandler.CreateOrder)
		}

		if cfg.UploadHandler != nil {
			r.Post("/uploads/sign", cfg.UploadHandler.SignUpload)
		}

		if cfg.AdminHandler != nil {
			r.Route("/admin/cache", func(r chi.Router) {
				r.Get("/stats", cfg.AdminHandler.CacheStats)
				r.Post("/cleanup", cfg.AdminHandler.CacheCleanup)
				r.Post("/refresh/{key}", cfg.AdminHandler.CacheRefresh)
				r.Delete("/", cfg.AdminHandler.CacheClear)
			})
		}
	})

	return r
}
