package http

import (
	"errors"
	"net/http"

	"weatherfav/internal/adapter"
	"weatherfav/internal/service"
	"weatherfav/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrBlankCity:              http.StatusBadRequest,
	service.ErrDuplicateCity:          http.StatusBadRequest,
	service.ErrFavoritesLimitExceeded: http.StatusBadRequest,
	service.ErrUsernameNotFound:       http.StatusUnauthorized,
	service.ErrWrongPassword:          http.StatusUnauthorized,
	service.ErrSessionInvalid:         http.StatusUnauthorized,

	adapter.ErrCityNotFound:        http.StatusBadRequest,
	adapter.ErrProviderUnavailable: http.StatusBadGateway,

	store.ErrNoUserWasFound:    http.StatusInternalServerError,
	store.ErrFavoritesNotSaved: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
