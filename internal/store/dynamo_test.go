package store

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"github.com/kmori/techtrends/models"
)

// ─────────────────────────────────────────────
// Mock DynamoAPI
// ─────────────────────────────────────────────

// mockDynamoAPI implements DynamoAPI for unit tests. Each method field can
// be overridden per test case; calling an unset method panics, which keeps
// unexpected store calls visible.
type mockDynamoAPI struct {
	getItemFn    func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	putItemFn    func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	updateItemFn func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	deleteItemFn func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	queryFn      func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	scanFn       func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

func (m *mockDynamoAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.getItemFn(ctx, params, optFns...)
}

func (m *mockDynamoAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return m.putItemFn(ctx, params, optFns...)
}

func (m *mockDynamoAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return m.updateItemFn(ctx, params, optFns...)
}

func (m *mockDynamoAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return m.deleteItemFn(ctx, params, optFns...)
}

func (m *mockDynamoAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return m.queryFn(ctx, params, optFns...)
}

func (m *mockDynamoAPI) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return m.scanFn(ctx, params, optFns...)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// fixedNow pins the repository timestamp source to a constant for the
// duration of one test.
func fixedNow(t *testing.T, now string) {
	t.Helper()
	previous := nowRFC3339
	nowRFC3339 = func() string { return now }
	t.Cleanup(func() { nowRFC3339 = previous })
}

// trendItem marshals a trend into its stored attribute map.
func trendItem(t *testing.T, trend models.Trend) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(trend)
	require.NoError(t, err)
	return item
}

// favoriteItem marshals a favorite into its stored attribute map.
func favoriteItem(t *testing.T, favorite models.Favorite) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(favorite)
	require.NoError(t, err)
	return item
}

// settingsItem marshals user settings into their stored attribute map.
func settingsItem(t *testing.T, settings models.UserSettings) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(settings)
	require.NoError(t, err)
	return item
}
