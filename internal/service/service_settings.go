package service

import (
	"context"
	"unicode/utf8"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/store"
	"github.com/kmori/techtrends/models"
)

const (
	maxDisplayNameLength = 50
	maxBioLength         = 200
)

type settingsService struct {
	settings store.UserSettingsRepository
	logger   *logger.Logger
}

// NewSettingsService constructs a [SettingsService] over the user-settings
// repository.
func NewSettingsService(settings store.UserSettingsRepository, logger *logger.Logger) SettingsService {
	logger.Debug().Msg("creating settings service")
	return &settingsService{
		settings: settings,
		logger:   logger,
	}
}

func (s *settingsService) Get(ctx context.Context, userID string) (models.UserSettings, error) {
	return s.settings.Get(ctx, userID)
}

// Update rejects invalid fields before any store call, so a failed
// validation leaves the stored settings untouched.
func (s *settingsService) Update(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error) {
	if input.Theme != nil && *input.Theme != models.ThemeLight && *input.Theme != models.ThemeDark {
		return models.UserSettings{}, ErrInvalidTheme
	}
	if input.DisplayName != nil && utf8.RuneCountInString(*input.DisplayName) > maxDisplayNameLength {
		return models.UserSettings{}, ErrDisplayNameTooLong
	}
	if input.Bio != nil && utf8.RuneCountInString(*input.Bio) > maxBioLength {
		return models.UserSettings{}, ErrBioTooLong
	}

	return s.settings.Update(ctx, userID, input)
}
