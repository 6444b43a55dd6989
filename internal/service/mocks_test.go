package service

import (
	"context"

	"github.com/kmori/techtrends/models"
)

// ─────────────────────────────────────────────
// Mock repositories
// ─────────────────────────────────────────────

// mockTrendRepository implements store.TrendRepository for unit tests.
// Each method field can be overridden per test case; calling an unset
// method panics, which keeps unexpected store calls visible.
type mockTrendRepository struct {
	listFn           func(ctx context.Context, limit int) ([]models.Trend, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Trend, error)
	getFn            func(ctx context.Context, id string) (*models.Trend, error)
	createFn         func(ctx context.Context, input models.CreateTrendInput) (models.Trend, error)
	updateFn         func(ctx context.Context, id string, input models.UpdateTrendInput) (*models.Trend, error)
	deleteFn         func(ctx context.Context, id string) error
	listCategoriesFn func(ctx context.Context) ([]string, error)
}

func (m *mockTrendRepository) List(ctx context.Context, limit int) ([]models.Trend, error) {
	return m.listFn(ctx, limit)
}

func (m *mockTrendRepository) ListByCategory(ctx context.Context, category string) ([]models.Trend, error) {
	return m.listByCategoryFn(ctx, category)
}

func (m *mockTrendRepository) Get(ctx context.Context, id string) (*models.Trend, error) {
	return m.getFn(ctx, id)
}

func (m *mockTrendRepository) Create(ctx context.Context, input models.CreateTrendInput) (models.Trend, error) {
	return m.createFn(ctx, input)
}

func (m *mockTrendRepository) Update(ctx context.Context, id string, input models.UpdateTrendInput) (*models.Trend, error) {
	return m.updateFn(ctx, id, input)
}

func (m *mockTrendRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTrendRepository) ListCategories(ctx context.Context) ([]string, error) {
	return m.listCategoriesFn(ctx)
}

// mockFavoriteRepository implements store.FavoriteRepository for unit tests.
type mockFavoriteRepository struct {
	listByUserFn func(ctx context.Context, userID string) ([]models.Favorite, error)
	getFn        func(ctx context.Context, userID, trendID string) (*models.Favorite, error)
	addFn        func(ctx context.Context, userID, trendID string) (models.Favorite, error)
	removeFn     func(ctx context.Context, userID, trendID string) error
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	return m.listByUserFn(ctx, userID)
}

func (m *mockFavoriteRepository) Get(ctx context.Context, userID, trendID string) (*models.Favorite, error) {
	return m.getFn(ctx, userID, trendID)
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID, trendID string) (models.Favorite, error) {
	return m.addFn(ctx, userID, trendID)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID, trendID string) error {
	return m.removeFn(ctx, userID, trendID)
}

// mockUserSettingsRepository implements store.UserSettingsRepository for
// unit tests.
type mockUserSettingsRepository struct {
	getFn    func(ctx context.Context, userID string) (models.UserSettings, error)
	updateFn func(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error)
}

func (m *mockUserSettingsRepository) Get(ctx context.Context, userID string) (models.UserSettings, error) {
	return m.getFn(ctx, userID)
}

func (m *mockUserSettingsRepository) Update(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error) {
	return m.updateFn(ctx, userID, input)
}
