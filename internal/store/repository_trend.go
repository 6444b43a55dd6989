package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

// categoryIndex is the secondary index on the trends table keyed by
// category, serving the filtered listing without a table scan.
const categoryIndex = "category-index"

// trendRepository is the DynamoDB-backed implementation of
// [TrendRepository]. Each trend is one item keyed by id.
type trendRepository struct {
	db     DynamoAPI
	table  string
	logger *logger.Logger
}

// NewTrendRepository constructs a [TrendRepository] over the given table.
func NewTrendRepository(db DynamoAPI, table string, logger *logger.Logger) TrendRepository {
	logger.Debug().Str("table", table).Msg("creating trend repository")
	return &trendRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// List returns all trends, truncated at limit when limit > 0. Order is
// whatever the scan yields; the table has no range key to sort on.
func (r *trendRepository) List(ctx context.Context, limit int) ([]models.Trend, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := r.db.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scanning trends: %w", err)
	}

	trends := make([]models.Trend, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &trends); err != nil {
		return nil, fmt.Errorf("unmarshalling trends: %w", err)
	}

	return trends, nil
}

// ListByCategory returns the trends in one category via the category index.
func (r *trendRepository) ListByCategory(ctx context.Context, category string) ([]models.Trend, error) {
	keyCond := expression.Key("category").Equal(expression.Value(category))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("building category query: %w", err)
	}

	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(categoryIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("querying trends by category: %w", err)
	}

	trends := make([]models.Trend, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &trends); err != nil {
		return nil, fmt.Errorf("unmarshalling trends: %w", err)
	}

	return trends, nil
}

// Get returns the trend with the given id, or (nil, nil) when absent.
func (r *trendRepository) Get(ctx context.Context, id string) (*models.Trend, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       trendKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("getting trend %s: %w", id, err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var trend models.Trend
	if err := attributevalue.UnmarshalMap(out.Item, &trend); err != nil {
		return nil, fmt.Errorf("unmarshalling trend %s: %w", id, err)
	}

	return &trend, nil
}

// Create assigns the id and both timestamps and writes the full record.
// Caller-supplied defaults for popularity and growth are resolved by the
// service layer before this call.
func (r *trendRepository) Create(ctx context.Context, input models.CreateTrendInput) (models.Trend, error) {
	log := logger.FromContext(ctx)
	now := nowRFC3339()

	trend := models.Trend{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Popularity != nil {
		trend.Popularity = *input.Popularity
	}
	if input.Growth != nil {
		trend.Growth = *input.Growth
	}

	item, err := attributevalue.MarshalMap(trend)
	if err != nil {
		return models.Trend{}, fmt.Errorf("marshalling trend: %w", err)
	}

	if _, err := r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return models.Trend{}, fmt.Errorf("putting trend: %w", err)
	}

	log.Debug().Str("trend_id", trend.ID).Msg("trend created")
	return trend, nil
}

// Update applies only the supplied fields of input to the stored record and
// refreshes updatedAt. It existence-checks first and returns (nil, nil) for
// an unknown id; unsupplied fields are left untouched by the targeted
// update expression.
func (r *trendRepository) Update(ctx context.Context, id string, input models.UpdateTrendInput) (*models.Trend, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	update := expression.Set(expression.Name("updatedAt"), expression.Value(nowRFC3339()))
	if input.Name != nil {
		update = update.Set(expression.Name("name"), expression.Value(*input.Name))
	}
	if input.Category != nil {
		update = update.Set(expression.Name("category"), expression.Value(*input.Category))
	}
	if input.Description != nil {
		update = update.Set(expression.Name("description"), expression.Value(*input.Description))
	}
	if input.Popularity != nil {
		update = update.Set(expression.Name("popularity"), expression.Value(*input.Popularity))
	}
	if input.Growth != nil {
		update = update.Set(expression.Name("growth"), expression.Value(*input.Growth))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, fmt.Errorf("building trend update: %w", err)
	}

	out, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       trendKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("updating trend %s: %w", id, err)
	}

	var trend models.Trend
	if err := attributevalue.UnmarshalMap(out.Attributes, &trend); err != nil {
		return nil, fmt.Errorf("unmarshalling updated trend %s: %w", id, err)
	}

	return &trend, nil
}

// Delete removes the trend unconditionally; deleting an absent id succeeds.
func (r *trendRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       trendKey(id),
	}); err != nil {
		return fmt.Errorf("deleting trend %s: %w", id, err)
	}

	return nil
}

// ListCategories returns the sorted, de-duplicated set of categories in
// use. It reads the whole table; the names have no table of their own.
func (r *trendRepository) ListCategories(ctx context.Context) ([]string, error) {
	trends, err := r.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(trends))
	categories := make([]string, 0, len(trends))
	for _, t := range trends {
		if _, dup := seen[t.Category]; dup {
			continue
		}
		seen[t.Category] = struct{}{}
		categories = append(categories, t.Category)
	}

	sort.Strings(categories)
	return categories, nil
}

func trendKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
