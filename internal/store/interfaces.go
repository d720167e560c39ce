package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"weatherfav/models"
)

// UserRepository is the persistence contract for user documents.
// Implementations translate driver-level failures into the sentinel errors
// declared in errors.go; no driver error crosses this boundary unwrapped.
type UserRepository interface {
	// CreateUser persists a new user document and returns it.
	// Fails with ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID looks a user up by its opaque identifier.
	// Fails with ErrNoUserWasFound when no document matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// FindUserByUsername looks a user up by exact, case-sensitive username.
	// Fails with ErrNoUserWasFound when no document matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// SaveFavorites overwrites the user's full favorites list.
	// Last-writer-wins: no version check is performed, a concurrent save
	// may be silently overwritten. Fails with ErrNoUserWasFound when the
	// user document does not exist and ErrFavoritesNotSaved when the
	// write itself fails.
	SaveFavorites(ctx context.Context, userID string, favorites []string) error
}
