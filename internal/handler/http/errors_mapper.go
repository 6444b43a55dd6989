package http

import (
	"errors"
	"net/http"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/objectstore"
	"github.com/kmori/techtrends/internal/service"
	"github.com/kmori/techtrends/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationRequiredTrendFields: http.StatusBadRequest,
	service.ErrPopularityOutOfRange:          http.StatusBadRequest,
	service.ErrValidationTrendIDRequired:     http.StatusBadRequest,
	service.ErrInvalidTheme:                  http.StatusBadRequest,
	service.ErrDisplayNameTooLong:            http.StatusBadRequest,
	service.ErrBioTooLong:                    http.StatusBadRequest,
	service.ErrAlreadyFavorite:               http.StatusBadRequest,
	service.ErrTrendNotFound:                 http.StatusNotFound,
	service.ErrFavoriteNotFound:              http.StatusNotFound,

	store.ErrFavoriteExists: http.StatusBadRequest,

	objectstore.ErrUnsupportedContentType: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondServiceError translates a service-layer error into a response.
// Known errors carry their own client-safe message; anything unknown is a
// server error whose cause is logged but never echoed to the caller —
// fallback is what the client sees instead.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg(fallback)
		respondError(w, status, fallback)
		return
	}

	respondError(w, status, err.Error())
}
