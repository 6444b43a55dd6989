package models

// Trend is a single technology-trend catalog entry.
//
// Timestamps are stored as RFC 3339 strings, which is how they are written
// to the trends table and how the API exposes them.
type Trend struct {
	// ID is the server-generated opaque identifier of the trend.
	ID string `json:"id" dynamodbav:"id"`

	// Name is the display name of the technology (e.g. "React", "Zig").
	Name string `json:"name" dynamodbav:"name"`

	// Category groups trends for filtering (e.g. "Frontend", "Backend").
	// The favorites table has no knowledge of categories; filtering is
	// served by a secondary index on this attribute.
	Category string `json:"category" dynamodbav:"category"`

	// Description is a short free-form summary of the technology.
	Description string `json:"description" dynamodbav:"description"`

	// Popularity is a score in [0, 100]. The bound is enforced at the API
	// boundary on create and update, not inside the store.
	Popularity int `json:"popularity" dynamodbav:"popularity"`

	// Growth is a signed percentage describing recent momentum.
	Growth int `json:"growth" dynamodbav:"growth"`

	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CreateTrendInput carries the caller-supplied fields for a new trend.
// The server assigns ID, CreatedAt and UpdatedAt.
type CreateTrendInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`

	// Popularity and Growth are optional on create; when omitted they
	// default to 50 and 0 respectively.
	Popularity *int `json:"popularity"`
	Growth     *int `json:"growth"`
}

// UpdateTrendInput is a partial-field update for an existing trend.
//
// Every field is a pointer so that "explicitly provided" and "omitted" are
// distinguishable: a nil field is left untouched in the store, a non-nil
// field replaces the stored value.
type UpdateTrendInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Popularity  *int    `json:"popularity"`
	Growth      *int    `json:"growth"`
}

// IsEmpty reports whether the update carries no fields at all.
func (in UpdateTrendInput) IsEmpty() bool {
	return in.Name == nil && in.Category == nil && in.Description == nil &&
		in.Popularity == nil && in.Growth == nil
}
