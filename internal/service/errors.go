package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUsernameNotFound    = errors.New("username not found")
	ErrWrongPassword       = errors.New("wrong password")

	ErrSessionInvalid = errors.New("session is expired or invalid")

	ErrBlankCity              = errors.New("city name must not be empty")
	ErrDuplicateCity          = errors.New("city already in favorites")
	ErrFavoritesLimitExceeded = errors.New("maximum 5 cities allowed")
)
