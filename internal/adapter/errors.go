package adapter

import "errors"

// Sentinel errors returned by the weather client. Callers match them with
// [errors.Is].
var (
	// ErrCityNotFound is returned when the provider cannot resolve the
	// queried city to a real location. The wrapping error message names the
	// offending city so it can be surfaced verbatim.
	ErrCityNotFound = errors.New("city not found")

	// ErrProviderUnavailable is returned for every other provider failure:
	// transport errors, non-success responses, and malformed payloads.
	ErrProviderUnavailable = errors.New("weather provider unavailable")
)
