package http

import (
	"context"
	"net/http"

	"github.com/kmori/techtrends/internal/auth"
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/objectstore"
	"github.com/kmori/techtrends/internal/service"
	"github.com/kmori/techtrends/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockTrendService implements service.TrendService for unit tests. Each
// method field can be overridden per test case.
type mockTrendService struct {
	listFn       func(ctx context.Context, category string, limit int) ([]models.Trend, error)
	getFn        func(ctx context.Context, id string) (models.Trend, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	createFn     func(ctx context.Context, input models.CreateTrendInput) (models.Trend, error)
	updateFn     func(ctx context.Context, id string, input models.UpdateTrendInput) (models.Trend, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockTrendService) List(ctx context.Context, category string, limit int) ([]models.Trend, error) {
	return m.listFn(ctx, category, limit)
}

func (m *mockTrendService) Get(ctx context.Context, id string) (models.Trend, error) {
	return m.getFn(ctx, id)
}

func (m *mockTrendService) Categories(ctx context.Context) ([]string, error) {
	return m.categoriesFn(ctx)
}

func (m *mockTrendService) Create(ctx context.Context, input models.CreateTrendInput) (models.Trend, error) {
	return m.createFn(ctx, input)
}

func (m *mockTrendService) Update(ctx context.Context, id string, input models.UpdateTrendInput) (models.Trend, error) {
	return m.updateFn(ctx, id, input)
}

func (m *mockTrendService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockFavoriteService implements service.FavoriteService for unit tests.
type mockFavoriteService struct {
	listWithTrendsFn func(ctx context.Context, userID string) ([]models.FavoriteWithTrend, error)
	addFn            func(ctx context.Context, userID, trendID string) (models.Favorite, error)
	removeFn         func(ctx context.Context, userID, trendID string) error
}

func (m *mockFavoriteService) ListWithTrends(ctx context.Context, userID string) ([]models.FavoriteWithTrend, error) {
	return m.listWithTrendsFn(ctx, userID)
}

func (m *mockFavoriteService) Add(ctx context.Context, userID, trendID string) (models.Favorite, error) {
	return m.addFn(ctx, userID, trendID)
}

func (m *mockFavoriteService) Remove(ctx context.Context, userID, trendID string) error {
	return m.removeFn(ctx, userID, trendID)
}

// mockSettingsService implements service.SettingsService for unit tests.
type mockSettingsService struct {
	getFn    func(ctx context.Context, userID string) (models.UserSettings, error)
	updateFn func(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error)
}

func (m *mockSettingsService) Get(ctx context.Context, userID string) (models.UserSettings, error) {
	return m.getFn(ctx, userID)
}

func (m *mockSettingsService) Update(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error) {
	return m.updateFn(ctx, userID, input)
}

// ─────────────────────────────────────────────
// Stub verifier and upload issuer
// ─────────────────────────────────────────────

// stubVerifier resolves every request to a fixed result, keyed off the
// Authorization header so one router can serve anonymous, user, and admin
// requests in the same test.
type stubVerifier struct {
	results map[string]models.AuthResult
}

func (s *stubVerifier) Verify(_ context.Context, header http.Header) models.AuthResult {
	return s.results[header.Get("Authorization")]
}

var _ auth.Verifier = (*stubVerifier)(nil)

// mockUploadIssuer implements objectstore.UploadURLIssuer for unit tests.
type mockUploadIssuer struct {
	issueFn func(ctx context.Context, subjectID, contentType string) (models.UploadCredentials, error)
}

func (m *mockUploadIssuer) IssueAvatarUploadURL(ctx context.Context, subjectID, contentType string) (models.UploadCredentials, error) {
	return m.issueFn(ctx, subjectID, contentType)
}

var _ objectstore.UploadURLIssuer = (*mockUploadIssuer)(nil)

// ─────────────────────────────────────────────
// Fixtures and helpers
// ─────────────────────────────────────────────

const (
	userToken  = "Bearer user-token"
	adminToken = "Bearer admin-token"
	badToken   = "Bearer expired-token"
)

var (
	testUser = models.AuthenticatedUser{
		SubjectID: "sub-user",
		Email:     "alice@example.com",
		Role:      models.RoleUser,
		Groups:    []string{},
	}
	testAdmin = models.AuthenticatedUser{
		SubjectID: "sub-admin",
		Email:     "root@example.com",
		Role:      models.RoleAdmin,
		Groups:    []string{"admin"},
	}
)

// newTestVerifier maps the fixture tokens to their auth results: a valid
// user, a valid admin, a rejected token, and anonymous for everything else.
func newTestVerifier() *stubVerifier {
	return &stubVerifier{results: map[string]models.AuthResult{
		userToken:  {Authenticated: true, User: &testUser},
		adminToken: {Authenticated: true, User: &testAdmin},
		badToken:   {Err: auth.ErrInvalidToken},
	}}
}

// newTestHandler assembles a Handler around the given mocks, substituting
// empty mocks for nil ones.
func newTestHandler(trends service.TrendService, favorites service.FavoriteService, settings service.SettingsService, uploads objectstore.UploadURLIssuer) *Handler {
	if trends == nil {
		trends = &mockTrendService{}
	}
	if favorites == nil {
		favorites = &mockFavoriteService{}
	}
	if settings == nil {
		settings = &mockSettingsService{}
	}
	if uploads == nil {
		uploads = &mockUploadIssuer{}
	}

	svcs := &service.Services{
		TrendService:    trends,
		FavoriteService: favorites,
		SettingsService: settings,
	}
	return NewHandler(svcs, newTestVerifier(), uploads, logger.Nop())
}
