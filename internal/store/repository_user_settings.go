package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

// userSettingsRepository is the DynamoDB-backed implementation of
// [UserSettingsRepository]. One item per user, keyed by userId.
type userSettingsRepository struct {
	db     DynamoAPI
	table  string
	logger *logger.Logger
}

// NewUserSettingsRepository constructs a [UserSettingsRepository] over the
// given table.
func NewUserSettingsRepository(db DynamoAPI, table string, logger *logger.Logger) UserSettingsRepository {
	logger.Debug().Str("table", table).Msg("creating user settings repository")
	return &userSettingsRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// Get returns the user's settings. When no record exists, the default
// settings are synthesized and returned without being persisted; they are
// only written on the first explicit update.
func (r *userSettingsRepository) Get(ctx context.Context, userID string) (models.UserSettings, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       settingsKey(userID),
	})
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("getting user settings: %w", err)
	}

	if len(out.Item) == 0 {
		return models.DefaultUserSettings(userID, nowRFC3339()), nil
	}

	var settings models.UserSettings
	if err := attributevalue.UnmarshalMap(out.Item, &settings); err != nil {
		return models.UserSettings{}, fmt.Errorf("unmarshalling user settings: %w", err)
	}

	return settings, nil
}

// Update merges the supplied fields over the existing (or default) record,
// refreshes updatedAt, and overwrites the full item. A nil input field
// keeps its prior value; only explicitly provided fields are replaced.
func (r *userSettingsRepository) Update(ctx context.Context, userID string, input models.UpdateUserSettingsInput) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	settings, err := r.Get(ctx, userID)
	if err != nil {
		return models.UserSettings{}, err
	}

	if input.DisplayName != nil {
		settings.DisplayName = *input.DisplayName
	}
	if input.AvatarURL != nil {
		settings.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		settings.Bio = *input.Bio
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.Notifications != nil {
		settings.Notifications = *input.Notifications
	}
	settings.UserID = userID
	settings.UpdatedAt = nowRFC3339()

	item, err := attributevalue.MarshalMap(settings)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("marshalling user settings: %w", err)
	}

	if _, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return models.UserSettings{}, fmt.Errorf("putting user settings: %w", err)
	}

	log.Debug().Str("user_id", userID).Msg("user settings updated")
	return settings, nil
}

func settingsKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}
