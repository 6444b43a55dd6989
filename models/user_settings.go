package models

// Theme values accepted in UserSettings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UserSettings holds one user's dashboard preferences. Exactly one record
// exists per user; until the user first saves their settings, a virtual
// default record is synthesized on read and never persisted.
type UserSettings struct {
	UserID string `json:"userId" dynamodbav:"userId"`

	// DisplayName is optional and limited to 50 characters.
	DisplayName string `json:"displayName,omitempty" dynamodbav:"displayName,omitempty"`

	// AvatarURL points at the user's uploaded avatar in the object store.
	AvatarURL string `json:"avatarUrl,omitempty" dynamodbav:"avatarUrl,omitempty"`

	// Bio is optional and limited to 200 characters.
	Bio string `json:"bio,omitempty" dynamodbav:"bio,omitempty"`

	// Theme is either "light" or "dark".
	Theme string `json:"theme" dynamodbav:"theme"`

	Notifications bool `json:"notifications" dynamodbav:"notifications"`

	UpdatedAt string `json:"updatedAt" dynamodbav:"updatedAt"`
}

// DefaultUserSettings returns the virtual record served for users who have
// never saved settings.
func DefaultUserSettings(userID, now string) UserSettings {
	return UserSettings{
		UserID:        userID,
		Theme:         ThemeLight,
		Notifications: true,
		UpdatedAt:     now,
	}
}

// UpdateUserSettingsInput is a partial update of UserSettings. Pointer
// fields distinguish "explicitly provided" from "omitted": nil fields keep
// their previous (or default) value during the merge.
type UpdateUserSettingsInput struct {
	DisplayName   *string `json:"displayName"`
	AvatarURL     *string `json:"avatarUrl"`
	Bio           *string `json:"bio"`
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
}
