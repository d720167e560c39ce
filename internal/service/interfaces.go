package service

import (
	"context"

	"weatherfav/models"
)

// AuthService verifies credentials and manages session token lifecycle.
type AuthService interface {
	// Login authenticates a user by exact username match and bcrypt
	// password comparison. Fails with ErrUsernameNotFound, ErrWrongPassword,
	// or ErrInvalidDataProvided.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateSessionToken issues a signed session token bound to the user.
	CreateSessionToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseSessionToken validates a raw session token string. Any
	// validation failure is normalised to ErrSessionInvalid.
	ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FavoritesService enforces the business rules around the favorites list.
// It holds no state of its own: all state lives in the user repository, and
// city existence is delegated to the weather client.
type FavoritesService interface {
	// AddCity validates and appends a city to the user's favorites.
	// Fails with ErrBlankCity, adapter.ErrCityNotFound,
	// adapter.ErrProviderUnavailable, ErrFavoritesLimitExceeded, or
	// ErrDuplicateCity; on any failure the stored list is unchanged.
	AddCity(ctx context.Context, userID, rawCityName string) error

	// RemoveCity drops every favorite matching the given name under
	// trimmed, case-insensitive comparison. Removing an absent city is a
	// no-op, not an error.
	RemoveCity(ctx context.Context, userID, cityName string) error

	// ListFavoritesWithWeather returns the user together with one result
	// slot per favorite, in stored order. A failed lookup for one city
	// yields an error descriptor in its slot without affecting the others.
	ListFavoritesWithWeather(ctx context.Context, userID string) (models.User, []models.FavoriteWeather, error)

	// SuggestCities returns autocomplete candidates for the query prefix.
	SuggestCities(ctx context.Context, query string) ([]models.CitySuggestion, error)
}
