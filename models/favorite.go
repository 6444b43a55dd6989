package models

// Favorite marks one trend as a favorite of one user. Its identity is the
// composite (UserID, TrendID) pair; uniqueness of the pair is enforced by a
// conditional write in the store, not by application logic.
//
// A Favorite is immutable: it is created once and deleted, never updated.
type Favorite struct {
	UserID    string `json:"userId" dynamodbav:"userId"`
	TrendID   string `json:"trendId" dynamodbav:"trendId"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// FavoriteWithTrend is a Favorite enriched with the trend it points to.
//
// Trend is nil when the referenced trend no longer exists; a favorite may
// legitimately outlive its trend and must still be surfaced to the caller.
type FavoriteWithTrend struct {
	Favorite
	Trend *Trend `json:"trend"`
}
