package service

import (
	"context"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/store"
	"github.com/kmori/techtrends/models"
)

// Default values applied when an admin creates a trend without scores.
const (
	defaultPopularity = 50
	defaultGrowth     = 0
)

type trendService struct {
	trends store.TrendRepository
	logger *logger.Logger
}

// NewTrendService constructs a [TrendService] over the trend repository.
func NewTrendService(trends store.TrendRepository, logger *logger.Logger) TrendService {
	logger.Debug().Msg("creating trend service")
	return &trendService{
		trends: trends,
		logger: logger,
	}
}

func (s *trendService) List(ctx context.Context, category string, limit int) ([]models.Trend, error) {
	if category != "" {
		return s.trends.ListByCategory(ctx, category)
	}
	return s.trends.List(ctx, limit)
}

func (s *trendService) Get(ctx context.Context, id string) (models.Trend, error) {
	trend, err := s.trends.Get(ctx, id)
	if err != nil {
		return models.Trend{}, err
	}
	if trend == nil {
		return models.Trend{}, ErrTrendNotFound
	}
	return *trend, nil
}

func (s *trendService) Categories(ctx context.Context) ([]string, error) {
	return s.trends.ListCategories(ctx)
}

// Create validates required fields and the popularity range, applies the
// catalog defaults, and delegates the write. Validation failures are
// returned before any store mutation.
func (s *trendService) Create(ctx context.Context, input models.CreateTrendInput) (models.Trend, error) {
	if input.Name == "" || input.Category == "" || input.Description == "" {
		return models.Trend{}, ErrValidationRequiredTrendFields
	}

	if input.Popularity == nil {
		popularity := defaultPopularity
		input.Popularity = &popularity
	}
	if *input.Popularity < 0 || *input.Popularity > 100 {
		return models.Trend{}, ErrPopularityOutOfRange
	}

	if input.Growth == nil {
		growth := defaultGrowth
		input.Growth = &growth
	}

	return s.trends.Create(ctx, input)
}

func (s *trendService) Update(ctx context.Context, id string, input models.UpdateTrendInput) (models.Trend, error) {
	if input.Popularity != nil && (*input.Popularity < 0 || *input.Popularity > 100) {
		return models.Trend{}, ErrPopularityOutOfRange
	}

	trend, err := s.trends.Update(ctx, id, input)
	if err != nil {
		return models.Trend{}, err
	}
	if trend == nil {
		return models.Trend{}, ErrTrendNotFound
	}
	return *trend, nil
}

// Delete existence-checks the id so the API can answer 404, then performs
// the store's unconditional delete.
func (s *trendService) Delete(ctx context.Context, id string) error {
	existing, err := s.trends.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTrendNotFound
	}

	return s.trends.Delete(ctx, id)
}
