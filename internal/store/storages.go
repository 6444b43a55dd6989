// Package store implements the typed data-access layer over the managed
// key-value store. Each repository encapsulates one entity's table, key
// schema, and update semantics; the store itself is the single source of
// truth and the only shared mutable resource in the system.
package store

import (
	"github.com/kmori/techtrends/internal/config"
	"github.com/kmori/techtrends/internal/logger"
)

// Storages aggregates all repositories for dependency injection into the
// service layer.
type Storages struct {
	TrendRepository        TrendRepository
	FavoriteRepository     FavoriteRepository
	UserSettingsRepository UserSettingsRepository
}

// NewStorages wires every repository to its configured table over the
// shared client.
func NewStorages(db DynamoAPI, cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{
		TrendRepository:        NewTrendRepository(db, cfg.TrendsTable, logger),
		FavoriteRepository:     NewFavoriteRepository(db, cfg.FavoritesTable, logger),
		UserSettingsRepository: NewUserSettingsRepository(db, cfg.UserSettingsTable, logger),
	}
}
