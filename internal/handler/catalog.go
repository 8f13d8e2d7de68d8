package handler

import (
	"net/http"

	"soltana-store-api/internal/service"
	"soltana-store-api/pkg/apierror"
	"soltana-store-api/pkg/response"
)

// CatalogHandler serves the cached storefront resources.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.catalog.FetchProducts(r.Context()))
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.catalog.FetchCategories(r.Context()))
}

// ListWilayas handles GET /api/v1/wilayas
func (h *CatalogHandler) ListWilayas(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.catalog.FetchWilayas(r.Context()))
}

// GetSiteSettings handles GET /api/v1/settings
func (h *CatalogHandler) GetSiteSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.catalog.FetchSiteSettings(r.Context())
	if settings == nil {
		response.Error(w, apierror.NotFound("site settings not configured"))
		return
	}
	response.OK(w, settings)
}

// GetAboutUs handles GET /api/v1/about
func (h *CatalogHandler) GetAboutUs(w http.ResponseWriter, r *http.Request) {
	about := h.catalog.FetchAboutUs(r.Context())
	if about == nil {
		response.Error(w, apierror.NotFound("about us content not configured"))
		return
	}
	response.OK(w, about)
}
