package store

import (
	"context"

	"github.com/kmori/techtrends/models"
)

// TrendRepository is the typed access layer for the trends table.
//
// Get and Update return (nil, nil) when the id does not exist; Delete is
// idempotent and succeeds regardless of prior existence.
type TrendRepository interface {
	List(ctx context.Context, limit int) ([]models.Trend, error)
	ListByCategory(ctx context.Context, category string) ([]models.Trend, error)
	Get(ctx context.Context, id string) (*models.Trend, error)
	Create(ctx context.Context, input models.CreateTrendInput) (models.Trend, error)
	Update(ctx context.Context, id string, input models.UpdateTrendInput) (*models.Trend, error)
	Delete(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
}

// FavoriteRepository is the typed access layer for the favorites table.
//
// Add enforces the at-most-one-favorite-per-(user, trend) invariant through
// the store's conditional write: of two concurrent Adds for the same pair,
// exactly one succeeds and the other fails with [ErrFavoriteExists]. Remove
// is idempotent.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Get(ctx context.Context, userID, trendID string) (*models.Favorite, error)
	Add(ctx context.Context, userID, trendID string) (models.Favorite, error)
	Remove(ctx context.Context, userID, trendID string) error
}

// UserSettingsRepository is the typed access layer for the user-settings
// table.
//
// Get never fails on an absent record: it synthesizes the default settings
// without persisting them. Update performs a read-merge-overwrite of the
// full record.
type UserSettingsRepository interface {
	Get(ctx context.Context, userID string) (models.UserSettings, error)
	Update(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error)
}
