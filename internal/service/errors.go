package service

import "errors"

// Sentinel errors returned by the service layer. Their messages are exactly
// what the API surfaces to clients; the handler layer maps each to an HTTP
// status via errors.Is.
var (
	ErrTrendNotFound    = errors.New("Trend not found")
	ErrFavoriteNotFound = errors.New("Favorite not found")
	ErrAlreadyFavorite  = errors.New("Already in favorites")

	ErrValidationRequiredTrendFields = errors.New("name, category, and description are required")
	ErrPopularityOutOfRange          = errors.New("popularity must be between 0 and 100")
	ErrValidationTrendIDRequired     = errors.New("trendId is required")

	ErrInvalidTheme       = errors.New("theme must be 'light' or 'dark'")
	ErrDisplayNameTooLong = errors.New("displayName must be 50 characters or less")
	ErrBioTooLong         = errors.New("bio must be 200 characters or less")
)
