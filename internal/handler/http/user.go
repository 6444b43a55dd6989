package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kmori/techtrends/models"
)

// profile serves GET /api/user/profile. The payload is derived entirely
// from the verified token; nothing is read from the store.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	respondJSON(w, http.StatusOK, models.ProfileResponse{Profile: *user})
}

// listFavorites serves GET /api/user/favorites with each favorite joined to
// its trend.
func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	favorites, err := h.services.FavoriteService.ListWithTrends(r.Context(), user.SubjectID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch favorites")
		return
	}

	respondJSON(w, http.StatusOK, models.FavoriteListResponse{
		Favorites: favorites,
		Total:     len(favorites),
	})
}

// addFavorite serves POST /api/user/favorites with body {"trendId": "..."}.
func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var body struct {
		TrendID string `json:"trendId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	favorite, err := h.services.FavoriteService.Add(r.Context(), user.SubjectID, body.TrendID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to add favorite")
		return
	}

	respondJSON(w, http.StatusCreated, models.FavoriteResponse{
		Message:  "Added to favorites",
		Favorite: favorite,
	})
}

// removeFavorite serves DELETE /api/user/favorites/{trendID}.
func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	trendID := chi.URLParam(r, "trendID")

	if err := h.services.FavoriteService.Remove(r.Context(), user.SubjectID, trendID); err != nil {
		respondServiceError(w, r, err, "Failed to remove favorite")
		return
	}

	respondJSON(w, http.StatusOK, models.FavoriteRemovedResponse{
		Message: "Removed from favorites",
		TrendID: trendID,
	})
}

// getSettings serves GET /api/user/settings. First-time users get the
// default record without a write happening.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	settings, err := h.services.SettingsService.Get(r.Context(), user.SubjectID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch settings")
		return
	}

	respondJSON(w, http.StatusOK, models.UserSettingsResponse{Settings: settings})
}

// updateSettings serves PUT /api/user/settings with a partial body; omitted
// fields keep their stored values.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	var input models.UpdateUserSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	settings, err := h.services.SettingsService.Update(r.Context(), user.SubjectID, input)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update settings")
		return
	}

	respondJSON(w, http.StatusOK, models.UserSettingsResponse{
		Settings: settings,
		Message:  "Settings updated",
	})
}

// uploadURL serves POST /api/user/upload-url. The optional body field
// contentType defaults to image/png when absent; an unreadable body is
// still a client error.
func (h *Handler) uploadURL(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	contentType := "image/png"
	if r.ContentLength != 0 {
		var body struct {
			ContentType string `json:"contentType"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if body.ContentType != "" {
			contentType = body.ContentType
		}
	}

	credentials, err := h.uploads.IssueAvatarUploadURL(r.Context(), user.SubjectID, contentType)
	if err != nil {
		respondServiceError(w, r, err, "Failed to generate upload URL")
		return
	}

	respondJSON(w, http.StatusOK, credentials)
}
