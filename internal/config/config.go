package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tech-trends backend. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults (in that order of precedence).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the identity-provider settings used to verify bearer
	// tokens.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the key-value store settings: AWS region and the
	// table name per entity.
	Storage Storage `envPrefix:"STORAGE_"`

	// Uploads holds the object-store settings for avatar uploads.
	Uploads Uploads `envPrefix:"UPLOADS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// Address is the TCP address on which the HTTP server listens, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// ReadTimeout bounds reading of an inbound request, header included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing of a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// IdleTimeout bounds how long an idle keep-alive connection is held.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ShutdownTimeout is the grace period given to in-flight requests
	// during shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth holds the settings of the external identity provider whose access
// tokens this service verifies. The provider issues tokens out of band; this
// service only validates them against the provider's published signing keys.
type Auth struct {
	// Region is the provider region used to derive the token issuer URL.
	// Env: AUTH_REGION
	Region string `env:"REGION"`

	// UserPoolID identifies the user pool whose tokens are accepted.
	// When empty the verifier reports itself as not configured and every
	// token-bearing request is rejected.
	// Env: AUTH_USER_POOL_ID
	UserPoolID string `env:"USER_POOL_ID"`

	// ClientID is the app client whose tokens are accepted; tokens issued
	// to any other client are rejected.
	// Env: AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Issuer overrides the issuer URL derived from Region and UserPoolID.
	// Intended for local provider emulators and tests.
	// Env: AUTH_ISSUER
	Issuer string `env:"ISSUER"`
}

// Storage holds the key-value store settings. One table per entity; the
// store itself is managed infrastructure and reachable by table name.
type Storage struct {
	// Region is the AWS region the tables live in.
	// Env: STORAGE_REGION
	Region string `env:"REGION"`

	// TrendsTable is the trends catalog table.
	// Env: STORAGE_TRENDS_TABLE
	TrendsTable string `env:"TRENDS_TABLE"`

	// FavoritesTable is the per-user favorites table, keyed by
	// (userId, trendId).
	// Env: STORAGE_FAVORITES_TABLE
	FavoritesTable string `env:"FAVORITES_TABLE"`

	// UserSettingsTable is the per-user settings table, keyed by userId.
	// Env: STORAGE_USER_SETTINGS_TABLE
	UserSettingsTable string `env:"USER_SETTINGS_TABLE"`
}

// Uploads holds the object-store settings for avatar uploads.
type Uploads struct {
	// Bucket is the bucket that stores uploaded avatars and serves them
	// over its public URL.
	// Env: UPLOADS_BUCKET
	Bucket string `env:"BUCKET"`

	// URLTTL is how long an issued upload credential stays valid.
	// Env: UPLOADS_URL_TTL
	URLTTL time.Duration `env:"URL_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources.
//
// Source precedence, highest first: environment variables, command-line
// flags, the optional JSON file, built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
