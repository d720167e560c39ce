package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user document produces an empty result set. For an authenticated
	// session this indicates a broken invariant: the session references a
	// user that no longer exists.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFavoritesNotSaved is returned when a favorites update completes
	// without a driver error but the document was not modified as expected.
	ErrFavoritesNotSaved = errors.New("favorites were not saved")
)
