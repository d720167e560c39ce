package http

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"weatherfav/internal/logger"
	"weatherfav/internal/service"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// loginView carries the state of the login form between the handler and the
// login template: the sticky username, per-field validation errors keyed by
// input name, and an optional form-level error.
type loginView struct {
	RedirectTo  string
	Username    string
	FieldErrors map[string]string
	FormError   string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	view := loginView{
		RedirectTo: r.URL.Query().Get("redirectTo"),
	}
	h.render(w, r, "login", http.StatusOK, view)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed login form")
		h.render(w, r, "login", http.StatusBadRequest, loginView{
			FormError: "Form not submitted correctly.",
		})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	view := loginView{
		RedirectTo:  r.PostFormValue("redirectTo"),
		Username:    username,
		FieldErrors: map[string]string{},
	}

	if utf8.RuneCountInString(username) < minUsernameLen {
		view.FieldErrors["username"] = "Username is too short"
		h.render(w, r, "login", http.StatusBadRequest, view)
		return
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		view.FieldErrors["password"] = "Password is too short"
		h.render(w, r, "login", http.StatusBadRequest, view)
		return
	}

	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameNotFound):
			log.Err(err).Str("username", username).Msg("login with unknown username")
			view.FieldErrors["username"] = "Username not found"
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("username", username).Msg("login with wrong password")
			view.FieldErrors["password"] = "Invalid password"
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			view.FormError = "An unexpected error occurred"
		}
		h.render(w, r, "login", http.StatusBadRequest, view)
		return
	}

	token, err := h.services.AuthService.CreateSessionToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		view.FormError = "An unexpected error occurred"
		h.render(w, r, "login", http.StatusInternalServerError, view)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, safeRedirect(view.RedirectTo), http.StatusFound)
}

// safeRedirect restricts post-login redirects to same-site paths so the
// redirectTo parameter cannot send users to a foreign origin.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}
