package models

// Response envelopes returned by the HTTP handlers. Shapes mirror what the
// dashboard frontend consumes.

// HealthResponse is the /health liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// TrendListResponse wraps a trend listing with its total count.
type TrendListResponse struct {
	Trends []Trend `json:"trends"`
	Total  int     `json:"total"`
}

// TrendResponse wraps a single trend, optionally with a status message for
// mutating operations.
type TrendResponse struct {
	Trend   Trend  `json:"trend"`
	Message string `json:"message,omitempty"`
}

// CategoryListResponse carries the sorted distinct category names.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// ProfileResponse wraps the identity derived from the caller's token.
type ProfileResponse struct {
	Profile AuthenticatedUser `json:"profile"`
}

// FavoriteListResponse carries a user's favorites enriched with trend data.
// Total counts favorites, including ones whose trend no longer exists.
type FavoriteListResponse struct {
	Favorites []FavoriteWithTrend `json:"favorites"`
	Total     int                 `json:"total"`
}

// FavoriteResponse confirms a favorite mutation.
type FavoriteResponse struct {
	Message  string   `json:"message"`
	Favorite Favorite `json:"favorite"`
}

// FavoriteRemovedResponse confirms a favorite deletion.
type FavoriteRemovedResponse struct {
	Message string `json:"message"`
	TrendID string `json:"trendId"`
}

// UserSettingsResponse wraps a settings read or write result.
type UserSettingsResponse struct {
	Settings UserSettings `json:"settings"`
	Message  string       `json:"message,omitempty"`
}

// UploadCredentials is a time-limited direct-upload grant for an avatar.
// UploadURL accepts a single PUT of the declared content type; AvatarURL is
// where the object will be publicly served once uploaded.
type UploadCredentials struct {
	UploadURL string `json:"uploadUrl"`
	AvatarURL string `json:"avatarUrl"`
	ExpiresIn int    `json:"expiresIn"`
}

// TrendDeletedResponse confirms a catalog deletion.
type TrendDeletedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ErrorResponse is the uniform error body: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
