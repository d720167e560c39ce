package http

import (
	"context"
	"net/http"
	"net/url"

	"weatherfav/internal/logger"
	"weatherfav/internal/utils"
)

// requireSession is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the embedded token via
// [service.AuthService.ParseSessionToken], and on success stores the
// authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests without a valid session are redirected to the login page with
// the originally requested path carried in the redirectTo query parameter,
// so the user lands back where they were headed after signing in.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			redirectToLogin(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseSessionToken(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			h.clearSessionCookie(w)
			redirectToLogin(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	query := url.Values{"redirectTo": {r.URL.Path}}
	http.Redirect(w, r, "/login?"+query.Encode(), http.StatusFound)
}
