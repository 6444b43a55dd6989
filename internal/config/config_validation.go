package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Auth settings are deliberately not required here: a missing user pool or
// client id keeps the server bootable (public endpoints still work) and the
// verifier reports itself as not configured on token-bearing requests.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.TrendsTable == "" || cfg.Storage.FavoritesTable == "" || cfg.Storage.UserSettingsTable == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Uploads.Bucket == "" || cfg.Uploads.URLTTL <= 0 {
		return ErrInvalidUploadsConfigs
	}

	return nil
}
