package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON either as a
// duration string ("30s", "5m") or as a raw nanosecond number.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and JSON-friendly duration fields.
type StructuredJSONConfig struct {
	Server struct {
		Address         string   `json:"address"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		IdleTimeout     Duration `json:"idle_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Auth struct {
		Region     string `json:"region"`
		UserPoolID string `json:"user_pool_id"`
		ClientID   string `json:"client_id"`
		Issuer     string `json:"issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		Region            string `json:"region"`
		TrendsTable       string `json:"trends_table"`
		FavoritesTable    string `json:"favorites_table"`
		UserSettingsTable string `json:"user_settings_table"`
	} `json:"storage,omitempty"`

	Uploads struct {
		Bucket string   `json:"bucket"`
		URLTTL Duration `json:"url_ttl"`
	} `json:"uploads,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Address:         jsonCfg.Server.Address,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:     time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Auth: Auth{
			Region:     jsonCfg.Auth.Region,
			UserPoolID: jsonCfg.Auth.UserPoolID,
			ClientID:   jsonCfg.Auth.ClientID,
			Issuer:     jsonCfg.Auth.Issuer,
		},
		Storage: Storage{
			Region:            jsonCfg.Storage.Region,
			TrendsTable:       jsonCfg.Storage.TrendsTable,
			FavoritesTable:    jsonCfg.Storage.FavoritesTable,
			UserSettingsTable: jsonCfg.Storage.UserSettingsTable,
		},
		Uploads: Uploads{
			Bucket: jsonCfg.Uploads.Bucket,
			URLTTL: time.Duration(jsonCfg.Uploads.URLTTL),
		},
	}

	return cfg, nil
}
