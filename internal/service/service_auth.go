package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"weatherfav/internal/config"
	"weatherfav/internal/logger"
	"weatherfav/internal/store"
	"weatherfav/internal/utils"
	"weatherfav/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification against the stored bcrypt hash and the
// session token lifecycle, using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// sessionSignKey is the HMAC secret used to sign and verify session
	// tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains
	// valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both username and password are non-empty, looks the
// account up by exact username match, and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrUsernameNotFound if no account matches the username.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrUsernameNotFound
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateSessionToken issues a signed session token for the given user.
//
// The token is signed with the configured sessionSignKey, carries the
// configured sessionIssuer as the "iss" claim, and expires after
// sessionDuration.
func (a *authService) CreateSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.sessionIssuer, user.UserID, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("session token creation failed: %w", err)
	}

	return token, nil
}

// ParseSessionToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the
// signature, issuer, and expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrSessionInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		return models.Token{}, ErrSessionInvalid
	}

	return token, nil
}
