package models

// WeatherSnapshot is the current-conditions payload for one city as returned
// by the weather provider. It is produced per request and never persisted.
type WeatherSnapshot struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Location identifies the place the snapshot describes.
type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Current holds the measured conditions at the time of the lookup.
type Current struct {
	// TempC is the current temperature in degrees Celsius.
	TempC float64 `json:"temp_c"`

	Condition Condition `json:"condition"`

	// Humidity is the relative humidity as a percentage.
	Humidity int `json:"humidity"`

	// PrecipMM is the precipitation amount in millimeters.
	PrecipMM float64 `json:"precip_mm"`
}

// Condition is a short textual description of the weather plus an icon
// reference. The provider returns protocol-relative icon URLs ("//cdn...");
// they are passed through untouched.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// CitySuggestion is one autocomplete candidate returned by the provider's
// search endpoint. ID is derived from name and country and is used by the
// UI to de-duplicate options; it is never persisted.
type CitySuggestion struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
	ID      string `json:"id"`
}

// FavoriteWeather is one slot of a favorites-with-weather listing.
// Exactly one of Snapshot or Error is set: a failed lookup for one city
// produces an error descriptor without affecting the other slots.
type FavoriteWeather struct {
	// City is the favorite entry the slot belongs to, in stored casing.
	City string `json:"city"`

	Snapshot *WeatherSnapshot `json:"snapshot,omitempty"`

	// Error is the user-facing failure message for this city, empty on
	// success.
	Error string `json:"error,omitempty"`
}
