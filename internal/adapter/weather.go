package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"weatherfav/internal/config"
	"weatherfav/internal/logger"
	"weatherfav/models"
)

// providerCodeNoMatch is the provider's error code for "no matching
// location found" (returned with HTTP 400 on the current-conditions
// endpoint).
const providerCodeNoMatch = 1006

// suggestionMinQueryLen is the minimum query length in characters (after
// trimming) for which the provider is consulted; shorter queries
// short-circuit to an empty result.
const suggestionMinQueryLen = 2

// providerError is the error envelope the provider returns on non-success
// responses.
type providerError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// providerSearchResult is one entry of the provider's search response.
type providerSearchResult struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type weatherAPIClient struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewWeatherAPIClient constructs a [WeatherClient] talking to a
// WeatherAPI-compatible provider described by cfg.
func NewWeatherAPIClient(cfg config.Weather, log *logger.Logger) WeatherClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &weatherAPIClient{client: cli, apiKey: cfg.APIKey, logger: log}
}

// FetchCurrent queries the provider's current-conditions endpoint for the
// given city.
func (w *weatherAPIClient) FetchCurrent(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	log := logger.FromContext(ctx)

	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": w.apiKey,
			"q":   city,
			"aqi": "no",
		}).
		Get("/v1/current.json")
	if err != nil {
		log.Err(err).Str("city", city).Msg("current conditions request failed")
		return models.WeatherSnapshot{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if err = mapCurrentError(resp, city); err != nil {
		return models.WeatherSnapshot{}, err
	}

	var snapshot models.WeatherSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		log.Err(err).Str("city", city).Msg("decode current conditions response")
		return models.WeatherSnapshot{}, fmt.Errorf("%w: decode response: %w", ErrProviderUnavailable, err)
	}

	return snapshot, nil
}

// FetchSuggestions queries the provider's search endpoint for autocomplete
// candidates. Queries shorter than two characters never reach the network.
func (w *weatherAPIClient) FetchSuggestions(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < suggestionMinQueryLen {
		return []models.CitySuggestion{}, nil
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": w.apiKey,
			"q":   query,
		}).
		Get("/v1/search.json")
	if err != nil {
		log.Err(err).Str("query", query).Msg("suggestions request failed")
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Str("query", query).Msg("suggestions request returned non-success status")
		return nil, fmt.Errorf("%w: http %d", ErrProviderUnavailable, resp.StatusCode())
	}

	var results []providerSearchResult
	if err = json.Unmarshal(resp.Body(), &results); err != nil {
		log.Err(err).Str("query", query).Msg("decode suggestions response")
		return nil, fmt.Errorf("%w: decode response: %w", ErrProviderUnavailable, err)
	}

	suggestions := make([]models.CitySuggestion, 0, len(results))
	for _, result := range results {
		suggestions = append(suggestions, models.CitySuggestion{
			Name:    result.Name,
			Region:  result.Region,
			Country: result.Country,
			ID:      result.Name + "-" + result.Country,
		})
	}

	return suggestions, nil
}

// mapCurrentError translates a non-success current-conditions response into
// one of the adapter's sentinel errors. The provider signals an unknown city
// either with HTTP 404 or with HTTP 400 carrying error code 1006.
func mapCurrentError(resp *resty.Response, city string) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if status == http.StatusNotFound {
		return fmt.Errorf("%w: city %q", ErrCityNotFound, city)
	}

	if status == http.StatusBadRequest {
		var pe providerError
		if err := json.Unmarshal(resp.Body(), &pe); err == nil && pe.Error.Code == providerCodeNoMatch {
			return fmt.Errorf("%w: city %q", ErrCityNotFound, city)
		}
	}

	return fmt.Errorf("%w: http %d", ErrProviderUnavailable, status)
}
