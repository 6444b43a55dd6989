package store

import "errors"

var (
	// ErrFavoriteExists is returned by FavoriteRepository.Add when the
	// (userId, trendId) pair is already present. It is the surfaced form
	// of the store's conditional-write rejection.
	ErrFavoriteExists = errors.New("favorite already exists")
)
