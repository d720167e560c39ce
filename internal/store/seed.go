package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"weatherfav/internal/config"
	"weatherfav/internal/logger"
	"weatherfav/models"
)

// seedBcryptCost is the bcrypt work factor for the bootstrap password hash.
const seedBcryptCost = 10

// EnsureSeedUser idempotently ensures that the single bootstrap account
// exists. When the configured username is already present the routine is a
// no-op; otherwise it creates the account with a bcrypt-hashed password and
// an empty favorites list.
//
// This is the only way users enter the system: there is no registration
// endpoint.
func EnsureSeedUser(ctx context.Context, users UserRepository, cfg config.App, log *logger.Logger) error {
	if cfg.SeedUsername == "" || cfg.SeedPassword == "" {
		return errors.New("seed credentials are not configured")
	}

	existing, err := users.FindUserByUsername(ctx, cfg.SeedUsername)
	if err == nil {
		log.Info().Str("username", existing.Username).Msg("seed user already exists")
		return nil
	}
	if !errors.Is(err, ErrNoUserWasFound) {
		return fmt.Errorf("error checking for seed user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), seedBcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing seed password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("error generating seed user id: %w", err)
	}

	created, err := users.CreateUser(ctx, models.User{
		UserID:       id.String(),
		Username:     cfg.SeedUsername,
		PasswordHash: string(hash),
		Favorites:    []string{},
	})
	if err != nil {
		// A concurrent process may have seeded between the lookup and the
		// insert; the unique index makes that harmless.
		if errors.Is(err, ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating seed user: %w", err)
	}

	log.Info().Str("username", created.Username).Str("id", created.UserID).Msg("seed user created")
	return nil
}
