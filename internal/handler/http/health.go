package http

import (
	"net/http"

	"github.com/kmori/techtrends/models"
)

// health is the liveness probe. It deliberately touches neither the
// verifier nor the store.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
