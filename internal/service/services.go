// Package service holds the application's business rules: input validation,
// catalog defaults, the favorite-uniqueness pre-checks, and the enrichment
// fan-out. Services sit between the HTTP handlers and the repositories and
// never touch the transport layer.
package service

import (
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/store"
)

// Services aggregates all services for dependency injection into the
// handler layer.
type Services struct {
	TrendService    TrendService
	FavoriteService FavoriteService
	SettingsService SettingsService
}

// NewServices wires every service to its repositories.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		TrendService:    NewTrendService(storages.TrendRepository, logger),
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, storages.TrendRepository, logger),
		SettingsService: NewSettingsService(storages.UserSettingsRepository, logger),
	}
}
