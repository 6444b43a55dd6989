package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kmori/techtrends/models"
)

// defaultListLimit caps an unfiltered listing when the caller does not ask
// for a specific size.
const defaultListLimit = 50

// listTrends serves GET /api/trends. Both query parameters are optional:
// ?category= narrows the listing by exact category match (the category path
// ignores limit) and ?limit= resizes the unfiltered listing. A limit that
// does not parse as a positive integer falls back to the default rather
// than being rejected.
func (h *Handler) listTrends(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	trends, err := h.services.TrendService.List(r.Context(), category, limit)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch trends")
		return
	}

	respondJSON(w, http.StatusOK, models.TrendListResponse{
		Trends: trends,
		Total:  len(trends),
	})
}

// getTrend serves GET /api/trends/{trendID}.
func (h *Handler) getTrend(w http.ResponseWriter, r *http.Request) {
	trendID := chi.URLParam(r, "trendID")

	trend, err := h.services.TrendService.Get(r.Context(), trendID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch trend")
		return
	}

	respondJSON(w, http.StatusOK, models.TrendResponse{Trend: trend})
}

// listCategories serves GET /api/categories.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.TrendService.Categories(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch categories")
		return
	}

	respondJSON(w, http.StatusOK, models.CategoryListResponse{Categories: categories})
}
