package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"weatherfav/internal/logger"
	"weatherfav/models"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user creation, lookup, and favorites persistence against the
// "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user document.
//
// Error handling:
//   - duplicate key on the unique username index → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.Users().InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user document")

		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the user document whose identifier matches userID.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return foundUser, nil
}

// FindUserByUsername retrieves the user document whose username exactly
// matches the given value. The comparison is case-sensitive.
//
// Error handling mirrors [userRepository.FindUserByID].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.Users().FindOne(ctx, bson.M{"username": username}).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user by username")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return foundUser, nil
}

// SaveFavorites overwrites the full favorites list of the given user.
// The update carries no version predicate: two concurrent saves for the same
// user race and the last writer wins.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - driver-level failure → wrapped in [ErrFavoritesNotSaved].
func (r *userRepository) SaveFavorites(ctx context.Context, userID string, favorites []string) error {
	log := logger.FromContext(ctx)

	if favorites == nil {
		favorites = []string{}
	}

	res, err := r.db.Users().UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"favorites": favorites}},
	)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveFavorites").Msg("error updating favorites")
		return fmt.Errorf("%w: %w", ErrFavoritesNotSaved, err)
	}

	if res.MatchedCount == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
