package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_READ_TIMEOUT":     "30s",
		"SERVER_WRITE_TIMEOUT":    "30s",
		"SERVER_IDLE_TIMEOUT":     "2m",
		"SERVER_SHUTDOWN_TIMEOUT": "20s",

		"AUTH_REGION":       "us-east-1",
		"AUTH_USER_POOL_ID": "us-east-1_abc123",
		"AUTH_CLIENT_ID":    "client-id-1",
		"AUTH_ISSUER":       "http://localhost:9229/pool",

		"STORAGE_REGION":              "eu-west-1",
		"STORAGE_TRENDS_TABLE":        "trends",
		"STORAGE_FAVORITES_TABLE":     "favorites",
		"STORAGE_USER_SETTINGS_TABLE": "settings",

		"UPLOADS_BUCKET":  "avatars-bucket",
		"UPLOADS_URL_TTL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "us-east-1", cfg.Auth.Region)
	assert.Equal(t, "us-east-1_abc123", cfg.Auth.UserPoolID)
	assert.Equal(t, "client-id-1", cfg.Auth.ClientID)
	assert.Equal(t, "http://localhost:9229/pool", cfg.Auth.Issuer)

	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, "trends", cfg.Storage.TrendsTable)
	assert.Equal(t, "favorites", cfg.Storage.FavoritesTable)
	assert.Equal(t, "settings", cfg.Storage.UserSettingsTable)

	assert.Equal(t, "avatars-bucket", cfg.Uploads.Bucket)
	assert.Equal(t, 5*time.Minute, cfg.Uploads.URLTTL)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_TRENDS_TABLE": "only-trends",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only-trends", cfg.Storage.TrendsTable)
	assert.Empty(t, cfg.Storage.FavoritesTable)
	assert.Empty(t, cfg.Server.Address)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_READ_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
