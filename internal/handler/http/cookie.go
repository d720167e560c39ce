package http

import (
	"net/http"

	"weatherfav/models"
)

// sessionCookieName is the name of the cookie carrying the signed session
// token.
const sessionCookieName = "weather_app_session"

// setSessionCookie attaches the signed session token to the response as an
// HttpOnly cookie. The cookie lifetime matches the token lifetime so the
// browser drops it around the time the token expires anyway.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the browser to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
