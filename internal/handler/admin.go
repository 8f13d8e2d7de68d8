package handler

import (
	"encoding/json"
	"net/http"

	"soltana-store-api/internal/cache"
	"soltana-store-api/internal/service"
	"soltana-store-api/pkg/apierror"
	"soltana-store-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// AdminHandler exposes cache introspection and maintenance.
type AdminHandler struct {
	cache   *cache.Manager
	cleanup *service.CleanupService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(c *cache.Manager, cleanup *service.CleanupService) *AdminHandler {
	return &AdminHandler{cache: c, cleanup: cleanup}
}

// CacheStats handles GET /api/v1/admin/cache/stats
func (h *AdminHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.cache.Stats()
	response.OK(w, map[string]any{
		"hot_entries": stats.HotEntries,
		"use_store":   stats.UseStore,
		"default_ttl": stats.DefaultTTL.String(),
	})
}

// CacheCleanup handles POST /api/v1/admin/cache/cleanup. The optional
// body lists key fragments to narrow the sweep.
func (h *AdminHandler) CacheCleanup(w http.ResponseWriter, r *http.Request) {
	if h.cleanup == nil {
		response.Error(w, apierror.Unavailable("no durable store configured"))
		return
	}

	var req struct {
		Fragments []string `json:"fragments"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, apierror.BadRequest("invalid cleanup request"))
			return
		}
	}

	removed, err := h.cleanup.Cleanup(r.Context(), req.Fragments)
	if err != nil {
		response.Error(w, apierror.Internal("cache cleanup failed"))
		return
	}
	response.OK(w, map[string]any{"removed": removed})
}

// CacheRefresh handles POST /api/v1/admin/cache/refresh/{key}.
// Re-stamps the entry with the manager's default TTL.
func (h *AdminHandler) CacheRefresh(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.Error(w, apierror.BadRequest("key is required"))
		return
	}

	if !h.cache.Refresh(r.Context(), key, h.cache.DefaultTTL()) {
		response.Error(w, apierror.NotFound("no cached entry for key"))
		return
	}
	response.OK(w, map[string]any{"refreshed": key})
}

// CacheClear handles DELETE /api/v1/admin/cache
func (h *AdminHandler) CacheClear(w http.ResponseWriter, r *http.Request) {
	h.cache.Clear(r.Context())
	response.NoContent(w)
}
