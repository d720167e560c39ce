package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid document store settings
	// (for example, a missing connection string).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing session sign key or zero session duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWeatherConfigs indicates invalid weather provider settings
	// (for example, a missing API key or base URL).
	ErrInvalidWeatherConfigs = errors.New("invalid weather configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
