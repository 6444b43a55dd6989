package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

const testSettingsTable = "tech-trends-user-settings"

func newSettingsRepo(db DynamoAPI) UserSettingsRepository {
	return NewUserSettingsRepository(db, testSettingsTable, logger.Nop())
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

// TestSettingsGet_Stored verifies that an existing record is returned as is.
func TestSettingsGet_Stored(t *testing.T) {
	stored := models.UserSettings{
		UserID:        "user-1",
		DisplayName:   "Alice",
		Theme:         models.ThemeDark,
		Notifications: false,
		UpdatedAt:     "2026-01-01T00:00:00Z",
	}

	db := &mockDynamoAPI{
		getItemFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, settingsKey("user-1"), params.Key)
			return &dynamodb.GetItemOutput{Item: settingsItem(t, stored)}, nil
		},
	}

	settings, err := newSettingsRepo(db).Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, stored, settings)
}

// TestSettingsGet_Default verifies that an absent record yields the default
// settings without a write happening.
func TestSettingsGet_Default(t *testing.T) {
	fixedNow(t, "2026-04-01T00:00:00Z")

	db := &mockDynamoAPI{
		getItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
		// putItemFn deliberately unset: a write here must panic the test
	}

	settings, err := newSettingsRepo(db).Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.UserSettings{
		UserID:        "user-1",
		Theme:         models.ThemeLight,
		Notifications: true,
		UpdatedAt:     "2026-04-01T00:00:00Z",
	}, settings)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

// TestSettingsUpdate_MergesOverStored verifies the read-merge-overwrite:
// supplied fields replace stored values, omitted fields survive, and the
// full record is written back.
func TestSettingsUpdate_MergesOverStored(t *testing.T) {
	fixedNow(t, "2026-04-02T00:00:00Z")

	stored := models.UserSettings{
		UserID:        "user-1",
		DisplayName:   "Alice",
		Bio:           "likes Go",
		Theme:         models.ThemeLight,
		Notifications: true,
		UpdatedAt:     "2026-01-01T00:00:00Z",
	}

	var written models.UserSettings
	db := &mockDynamoAPI{
		getItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: settingsItem(t, stored)}, nil
		},
		putItemFn: func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, testSettingsTable, *params.TableName)
			require.NoError(t, attributevalue.UnmarshalMap(params.Item, &written))
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	theme := models.ThemeDark
	notifications := false
	settings, err := newSettingsRepo(db).Update(context.Background(), "user-1", models.UpdateUserSettingsInput{
		Theme:         &theme,
		Notifications: &notifications,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, settings.Theme)
	assert.False(t, settings.Notifications)
	assert.Equal(t, "Alice", settings.DisplayName)
	assert.Equal(t, "likes Go", settings.Bio)
	assert.Equal(t, "2026-04-02T00:00:00Z", settings.UpdatedAt)
	assert.Equal(t, settings, written)
}

// TestSettingsUpdate_FirstWrite verifies that a first-time update merges
// over the synthesized defaults and persists the result.
func TestSettingsUpdate_FirstWrite(t *testing.T) {
	fixedNow(t, "2026-04-03T00:00:00Z")

	wrote := false
	db := &mockDynamoAPI{
		getItemFn: func(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
		putItemFn: func(_ context.Context, _ *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			wrote = true
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	displayName := "Bob"
	settings, err := newSettingsRepo(db).Update(context.Background(), "user-2", models.UpdateUserSettingsInput{
		DisplayName: &displayName,
	})

	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Equal(t, "Bob", settings.DisplayName)
	assert.Equal(t, models.ThemeLight, settings.Theme)
	assert.True(t, settings.Notifications)
}
