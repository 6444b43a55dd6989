package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kmori/techtrends/models"
)

// createTrend serves POST /api/admin/trends.
func (h *Handler) createTrend(w http.ResponseWriter, r *http.Request) {
	var input models.CreateTrendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	trend, err := h.services.TrendService.Create(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create trend")
		return
	}

	respondJSON(w, http.StatusCreated, models.TrendResponse{
		Trend:   trend,
		Message: "Trend created",
	})
}

// updateTrend serves PUT /api/admin/trends/{trendID} with a partial body.
func (h *Handler) updateTrend(w http.ResponseWriter, r *http.Request) {
	trendID := chi.URLParam(r, "trendID")

	var input models.UpdateTrendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	trend, err := h.services.TrendService.Update(r.Context(), trendID, input)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update trend")
		return
	}

	respondJSON(w, http.StatusOK, models.TrendResponse{
		Trend:   trend,
		Message: "Trend updated",
	})
}

// deleteTrend serves DELETE /api/admin/trends/{trendID}.
func (h *Handler) deleteTrend(w http.ResponseWriter, r *http.Request) {
	trendID := chi.URLParam(r, "trendID")

	if err := h.services.TrendService.Delete(r.Context(), trendID); err != nil {
		respondServiceError(w, r, err, "Failed to delete trend")
		return
	}

	respondJSON(w, http.StatusOK, models.TrendDeletedResponse{
		Message: "Trend deleted",
		ID:      trendID,
	})
}
