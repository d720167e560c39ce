// Package adapter implements outbound integrations with external services.
// Its single integration is the weather provider client used to validate
// city names, fetch current conditions, and serve autocomplete suggestions.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/weather_client_mock.go -package=mock

import (
	"context"

	"weatherfav/models"
)

// WeatherClient is the contract for the external weather provider.
// Implementations translate provider failures into the sentinel errors
// declared in errors.go; callers never see raw transport errors.
type WeatherClient interface {
	// FetchCurrent returns the current conditions for the given city.
	// Fails with ErrCityNotFound when the provider reports no match for the
	// query, and with ErrProviderUnavailable for any other non-success
	// response or transport failure.
	FetchCurrent(ctx context.Context, city string) (models.WeatherSnapshot, error)

	// FetchSuggestions returns autocomplete candidates for the given query
	// prefix. Queries shorter than two characters return an empty slice
	// without a network call. Fails with ErrProviderUnavailable on a
	// non-success response; never returns a partial entry.
	FetchSuggestions(ctx context.Context, query string) ([]models.CitySuggestion, error)
}
