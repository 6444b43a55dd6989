package service

import (
	"context"

	"github.com/kmori/techtrends/models"
)

// TrendService exposes the trend catalog: public reads plus the admin
// mutations. All validation happens here, before any store call.
type TrendService interface {
	// List returns trends filtered by category when category is non-empty
	// (served by the secondary index), otherwise all trends truncated at
	// limit.
	List(ctx context.Context, category string, limit int) ([]models.Trend, error)

	// Get returns the trend or [ErrTrendNotFound].
	Get(ctx context.Context, id string) (models.Trend, error)

	// Categories returns the sorted distinct category names in use.
	Categories(ctx context.Context) ([]string, error)

	// Create validates the input and writes a new trend with
	// server-assigned id and timestamps.
	Create(ctx context.Context, input models.CreateTrendInput) (models.Trend, error)

	// Update validates and applies a partial update; unknown ids yield
	// [ErrTrendNotFound].
	Update(ctx context.Context, id string, input models.UpdateTrendInput) (models.Trend, error)

	// Delete removes a trend; unknown ids yield [ErrTrendNotFound].
	Delete(ctx context.Context, id string) error
}

// FavoriteService manages one user's favorites and their enrichment with
// trend data.
type FavoriteService interface {
	// ListWithTrends returns the user's favorites, each joined with its
	// trend. Favorites whose trend was deleted are kept with a nil Trend.
	ListWithTrends(ctx context.Context, userID string) ([]models.FavoriteWithTrend, error)

	// Add favorites a trend for the user. The trend must exist
	// ([ErrTrendNotFound]) and the pair must be new ([ErrAlreadyFavorite]).
	Add(ctx context.Context, userID, trendID string) (models.Favorite, error)

	// Remove unfavorites a trend; an absent pair yields
	// [ErrFavoriteNotFound].
	Remove(ctx context.Context, userID, trendID string) error
}

// SettingsService reads and updates one user's dashboard settings.
type SettingsService interface {
	Get(ctx context.Context, userID string) (models.UserSettings, error)

	// Update validates the supplied fields and merges them over the
	// stored (or default) record.
	Update(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error)
}
