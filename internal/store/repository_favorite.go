package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

// favoriteRepository is the DynamoDB-backed implementation of
// [FavoriteRepository]. Items are keyed by (userId, trendId).
type favoriteRepository struct {
	db     DynamoAPI
	table  string
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] over the given
// table.
func NewFavoriteRepository(db DynamoAPI, table string, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Str("table", table).Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// ListByUser returns all favorites of one user via a partition-key query.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	keyCond := expression.Key("userId").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("building favorites query: %w", err)
	}

	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}

	favorites := make([]models.Favorite, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &favorites); err != nil {
		return nil, fmt.Errorf("unmarshalling favorites: %w", err)
	}

	return favorites, nil
}

// Get returns one favorite, or (nil, nil) when the pair is absent.
func (r *favoriteRepository) Get(ctx context.Context, userID, trendID string) (*models.Favorite, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       favoriteKey(userID, trendID),
	})
	if err != nil {
		return nil, fmt.Errorf("getting favorite: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var favorite models.Favorite
	if err := attributevalue.UnmarshalMap(out.Item, &favorite); err != nil {
		return nil, fmt.Errorf("unmarshalling favorite: %w", err)
	}

	return &favorite, nil
}

// Add writes the favorite with a condition that the pair does not already
// exist. The conditional write is the system's sole concurrency-correctness
// guarantee: of two simultaneous Adds for the same pair, the store accepts
// exactly one and rejects the other with [ErrFavoriteExists].
func (r *favoriteRepository) Add(ctx context.Context, userID, trendID string) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	favorite := models.Favorite{
		UserID:    userID,
		TrendID:   trendID,
		CreatedAt: nowRFC3339(),
	}

	item, err := attributevalue.MarshalMap(favorite)
	if err != nil {
		return models.Favorite{}, fmt.Errorf("marshalling favorite: %w", err)
	}

	cond := expression.AttributeNotExists(expression.Name("userId")).
		And(expression.AttributeNotExists(expression.Name("trendId")))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return models.Favorite{}, fmt.Errorf("building favorite condition: %w", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.table),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return models.Favorite{}, ErrFavoriteExists
		}
		return models.Favorite{}, fmt.Errorf("putting favorite: %w", err)
	}

	log.Debug().Str("trend_id", trendID).Msg("favorite added")
	return favorite, nil
}

// Remove deletes the favorite unconditionally; removing an absent pair
// succeeds.
func (r *favoriteRepository) Remove(ctx context.Context, userID, trendID string) error {
	if _, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       favoriteKey(userID, trendID),
	}); err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}

	return nil
}

func favoriteKey(userID, trendID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId":  &types.AttributeValueMemberS{Value: userID},
		"trendId": &types.AttributeValueMemberS{Value: trendID},
	}
}
