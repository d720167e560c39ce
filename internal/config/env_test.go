package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_SIGN_KEY": "jwt_secret",
		"APP_SESSION_ISSUER":   "test_issuer",
		"APP_SESSION_DURATION": "720h",
		"APP_SECURE_COOKIES":   "true",
		"APP_SEED_USERNAME":    "bootstrap",
		"APP_SEED_PASSWORD":    "bootstrap-pass",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + MONGO_
		"STORAGE_MONGO_URI":      "mongodb://localhost:27017",
		"STORAGE_MONGO_DATABASE": "weatherfav_test",

		"WEATHER_API_KEY":         "provider-key",
		"WEATHER_BASE_URL":        "https://api.weatherapi.com",
		"WEATHER_REQUEST_TIMEOUT": "15s",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.SessionSignKey)
	assert.Equal(t, "test_issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 720*time.Hour, cfg.App.SessionDuration)
	assert.True(t, cfg.App.SecureCookies)
	assert.Equal(t, "bootstrap", cfg.App.SeedUsername)
	assert.Equal(t, "bootstrap-pass", cfg.App.SeedPassword)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "weatherfav_test", cfg.Storage.Mongo.Database)

	assert.Equal(t, "provider-key", cfg.Weather.APIKey)
	assert.Equal(t, "https://api.weatherapi.com", cfg.Weather.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Weather.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("STORAGE_MONGO_URI", "mongodb://db:27017")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.Mongo.URI)
	assert.Empty(t, cfg.App.SessionSignKey)
	assert.Empty(t, cfg.Weather.APIKey)
}

func TestValidate_TableTest(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				SessionSignKey:  "secret",
				SessionIssuer:   "weatherfav",
				SessionDuration: 30 * 24 * time.Hour,
			},
			Storage: Storage{Mongo: Mongo{URI: "mongodb://localhost:27017", Database: "weatherfav"}},
			Server:  Server{HTTPAddress: ":8080", RequestTimeout: 30 * time.Second},
			Weather: Weather{APIKey: "key", BaseURL: "https://api.weatherapi.com", RequestTimeout: 15 * time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing mongo uri",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Mongo.URI = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing session sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero session duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SessionDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing weather api key",
			mutate:  func(cfg *StructuredConfig) { cfg.Weather.APIKey = "" },
			wantErr: ErrInvalidWeatherConfigs,
		},
		{
			name:    "missing server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
