package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The process fails
// fast when a required secret or connection string is absent.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Mongo.URI == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionSignKey == "" || cfg.App.SessionDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Weather.APIKey == "" || cfg.Weather.BaseURL == "" {
		return ErrInvalidWeatherConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
