package http

import (
	"encoding/json"
	"net/http"

	"github.com/kmori/techtrends/models"
)

// respondJSON writes payload as the JSON body with the given status. The
// CORS headers are already present; withCORS sets them before any handler
// runs.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}
	// The header is already written; an encoding failure here can only be
	// logged by the access log's size field being short.
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes the uniform error body {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}
