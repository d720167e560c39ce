package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"weatherfav/internal/adapter"
	"weatherfav/internal/logger"
	"weatherfav/internal/store"
	"weatherfav/models"
)

// maxFavorites is the hard cap on the number of favorite cities per user.
const maxFavorites = 5

// favoritesService is the concrete implementation of FavoritesService.
// It orchestrates the user repository and the weather client; it keeps no
// state of its own, so every operation is all-or-nothing with respect to the
// stored favorites list.
type favoritesService struct {
	userRepository store.UserRepository
	weather        adapter.WeatherClient
	logger         *logger.Logger
}

// NewFavoritesService constructs a FavoritesService wired to the given
// repository and weather client.
func NewFavoritesService(userRepository store.UserRepository, weather adapter.WeatherClient, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		userRepository: userRepository,
		weather:        weather,
		logger:         logger,
	}
}

// AddCity appends a city to the user's favorites after validating it.
//
// Validation order:
//  1. The name must be non-empty after trimming → ErrBlankCity.
//  2. The city must resolve to a real location via the weather client;
//     adapter.ErrCityNotFound and adapter.ErrProviderUnavailable propagate.
//  3. The list must hold fewer than five entries → ErrFavoritesLimitExceeded.
//  4. No existing entry may match under trim+lowercase comparison →
//     ErrDuplicateCity.
//
// The trimmed, original-cased name is appended, preserving display casing
// while keeping comparison case-insensitive. On any failure nothing is
// persisted.
func (s *favoritesService) AddCity(ctx context.Context, userID, rawCityName string) error {
	log := logger.FromContext(ctx)

	city := strings.TrimSpace(rawCityName)
	if city == "" {
		return ErrBlankCity
	}

	// confirm the city exists before touching the store
	if _, err := s.weather.FetchCurrent(ctx, city); err != nil {
		log.Err(err).Str("city", city).Msg("city validation against weather provider failed")
		return err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if len(user.Favorites) >= maxFavorites {
		return ErrFavoritesLimitExceeded
	}

	normalized := normalizeCity(city)
	for _, existing := range user.Favorites {
		if normalizeCity(existing) == normalized {
			return ErrDuplicateCity
		}
	}

	favorites := append(user.Favorites, city)
	if err = s.userRepository.SaveFavorites(ctx, userID, favorites); err != nil {
		log.Err(err).Str("id", userID).Str("city", city).Msg("persisting favorites failed")
		return fmt.Errorf("persisting favorites failed: %w", err)
	}

	log.Info().Str("id", userID).Str("city", city).Int("favorites", len(favorites)).Msg("city added to favorites")
	return nil
}

// RemoveCity drops every favorite whose normalized form equals the
// normalized input. Dropping duplicates too is defensive: the add invariant
// should make them impossible. Removing a city that is not in the list is a
// successful no-op.
func (s *favoritesService) RemoveCity(ctx context.Context, userID, cityName string) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	normalized := normalizeCity(cityName)
	favorites := make([]string, 0, len(user.Favorites))
	for _, existing := range user.Favorites {
		if normalizeCity(existing) != normalized {
			favorites = append(favorites, existing)
		}
	}

	if err = s.userRepository.SaveFavorites(ctx, userID, favorites); err != nil {
		log.Err(err).Str("id", userID).Str("city", cityName).Msg("persisting favorites failed")
		return fmt.Errorf("persisting favorites failed: %w", err)
	}

	return nil
}

// ListFavoritesWithWeather loads the user and resolves current weather for
// every favorite concurrently. Result order matches the stored favorites
// order, and a failure for one city fills only that city's slot with an
// error descriptor.
func (s *favoritesService) ListFavoritesWithWeather(ctx context.Context, userID string) (models.User, []models.FavoriteWeather, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user lookup failed")
		return models.User{}, nil, fmt.Errorf("user lookup failed: %w", err)
	}

	results := make([]models.FavoriteWeather, len(user.Favorites))

	var wg sync.WaitGroup
	for i, city := range user.Favorites {
		wg.Add(1)
		go func(i int, city string) {
			defer wg.Done()

			snapshot, err := s.weather.FetchCurrent(ctx, city)
			if err != nil {
				results[i] = models.FavoriteWeather{City: city, Error: weatherFailureMessage(err, city)}
				return
			}
			results[i] = models.FavoriteWeather{City: city, Snapshot: &snapshot}
		}(i, city)
	}
	wg.Wait()

	return user, results, nil
}

// SuggestCities returns autocomplete candidates for the query prefix by
// delegating to the weather client.
func (s *favoritesService) SuggestCities(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	return s.weather.FetchSuggestions(ctx, query)
}

// normalizeCity produces the canonical form used for equality checks:
// trimmed and lowercased. Stored entries keep their original casing.
func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// weatherFailureMessage converts a weather client error into the per-city
// message shown on the favorites listing. A not-found error is surfaced
// verbatim (it names the city); everything else becomes a generic fetch
// failure for that city.
func weatherFailureMessage(err error, city string) string {
	if errors.Is(err, adapter.ErrCityNotFound) {
		return err.Error()
	}
	return fmt.Sprintf("failed to fetch weather for %s", city)
}
