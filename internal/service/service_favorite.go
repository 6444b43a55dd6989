package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/store"
	"github.com/kmori/techtrends/models"
)

// enrichmentConcurrency caps the parallel trend lookups of one favorites
// listing.
const enrichmentConcurrency = 8

type favoriteService struct {
	favorites store.FavoriteRepository
	trends    store.TrendRepository
	logger    *logger.Logger
}

// NewFavoriteService constructs a [FavoriteService] over the favorite and
// trend repositories.
func NewFavoriteService(favorites store.FavoriteRepository, trends store.TrendRepository, logger *logger.Logger) FavoriteService {
	logger.Debug().Msg("creating favorite service")
	return &favoriteService{
		favorites: favorites,
		trends:    trends,
		logger:    logger,
	}
}

// ListWithTrends fans out one trend lookup per favorite and waits for all
// of them. Results are written into an index-addressed slice, so the
// response preserves the favorites' original order regardless of lookup
// completion order. A favorite whose trend has been deleted is surfaced
// with a nil Trend rather than failing the listing.
func (s *favoriteService) ListWithTrends(ctx context.Context, userID string) ([]models.FavoriteWithTrend, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.FavoriteWithTrend, len(favorites))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentConcurrency)

	for i, favorite := range favorites {
		g.Go(func() error {
			trend, err := s.trends.Get(gctx, favorite.TrendID)
			if err != nil {
				return err
			}
			enriched[i] = models.FavoriteWithTrend{
				Favorite: favorite,
				Trend:    trend,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return enriched, nil
}

// Add pre-checks that the trend exists and that the pair is new, then
// performs the conditional write. The pre-checks give precise errors; the
// store's condition remains the authoritative guard, so a concurrent
// duplicate that slips past the pre-check still surfaces as
// [ErrAlreadyFavorite].
func (s *favoriteService) Add(ctx context.Context, userID, trendID string) (models.Favorite, error) {
	if trendID == "" {
		return models.Favorite{}, ErrValidationTrendIDRequired
	}

	trend, err := s.trends.Get(ctx, trendID)
	if err != nil {
		return models.Favorite{}, err
	}
	if trend == nil {
		return models.Favorite{}, ErrTrendNotFound
	}

	existing, err := s.favorites.Get(ctx, userID, trendID)
	if err != nil {
		return models.Favorite{}, err
	}
	if existing != nil {
		return models.Favorite{}, ErrAlreadyFavorite
	}

	favorite, err := s.favorites.Add(ctx, userID, trendID)
	if errors.Is(err, store.ErrFavoriteExists) {
		return models.Favorite{}, ErrAlreadyFavorite
	}
	if err != nil {
		return models.Favorite{}, err
	}

	return favorite, nil
}

// Remove existence-checks the pair so the API can answer 404, then performs
// the store's idempotent delete.
func (s *favoriteService) Remove(ctx context.Context, userID, trendID string) error {
	existing, err := s.favorites.Get(ctx, userID, trendID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrFavoriteNotFound
	}

	return s.favorites.Remove(ctx, userID, trendID)
}
