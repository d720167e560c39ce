package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the weather
// favorites application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session signing parameters,
	// cookie security, and the bootstrap account credentials.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Weather holds configuration for the external weather provider.
	Weather Weather `envPrefix:"WEATHER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// security and the seed account.
type App struct {
	// SessionSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential. Required.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every issued session
	// token. Tokens with a different issuer are rejected.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration specifies how long a session remains valid after
	// login (e.g. "720h" for 30 days).
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SecureCookies marks the session cookie as Secure so browsers only
	// send it over HTTPS. Enable in production.
	// Env: APP_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`

	// SeedUsername is the username of the bootstrap account ensured at
	// startup by the seed routine.
	// Env: APP_SEED_USERNAME
	SeedUsername string `env:"SEED_USERNAME"`

	// SeedPassword is the plaintext password of the bootstrap account.
	// It is bcrypt-hashed before being persisted and never stored as-is.
	// Env: APP_SEED_PASSWORD
	SeedPassword string `env:"SEED_PASSWORD"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// Mongo holds the document store connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`
}

// Mongo holds connection settings for the MongoDB document store.
type Mongo struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017"). Required.
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the name of the database holding the users collection.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Weather holds settings for the external weather provider API.
type Weather struct {
	// APIKey is the provider API key sent with every request. Required.
	// Env: WEATHER_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the provider base URL
	// (e.g. "https://api.weatherapi.com").
	// Env: WEATHER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound provider call.
	// Env: WEATHER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
