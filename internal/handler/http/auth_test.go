package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherfav/internal/service"
	"weatherfav/models"
)

func postLoginForm(h *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.login(rr, req)
	return rr
}

func loginForm(username, password, redirectTo string) url.Values {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	if redirectTo != "" {
		form.Set("redirectTo", redirectTo)
	}
	return form
}

func TestLoginPage_RendersForm(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/login?redirectTo=/somewhere", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.loginPage(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), `name="username"`)
	assert.Contains(t, rr.Body.String(), `value="/somewhere"`)
}

func TestLogin_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{name: "username too short", username: "ab", password: "carmaker", wantMsg: "Username is too short"},
		{name: "empty username", username: "", password: "carmaker", wantMsg: "Username is too short"},
		{name: "password too short", username: "ipgautomotive", password: "carma", wantMsg: "Password is too short"},
		{name: "empty password", username: "ipgautomotive", password: "", wantMsg: "Password is too short"},
		{name: "two multibyte chars count as two", username: "éé", password: "carmaker", wantMsg: "Username is too short"},
		{name: "five multibyte chars count as five", username: "ipgautomotive", password: "ééééé", wantMsg: "Password is too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubAuthSvc{
				loginFn: func(ctx context.Context, username, password string) (models.User, error) {
					t.Fatal("service must not be called when the form fails validation")
					return models.User{}, nil
				},
			}, nil)

			rr := postLoginForm(h, loginForm(tt.username, tt.password, ""))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMsg)
		})
	}
}

func TestLogin_MultibyteUsernameAtMinimumReachesService(t *testing.T) {
	serviceCalled := false
	h := newTestHandler(&stubAuthSvc{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			serviceCalled = true
			assert.Equal(t, "ééé", username)
			return models.User{}, service.ErrUsernameNotFound
		},
	}, nil)

	rr := postLoginForm(h, loginForm("ééé", "carmaker", ""))

	assert.True(t, serviceCalled, "a three-character username passes validation")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_UnknownUsername(t *testing.T) {
	h := newTestHandler(&stubAuthSvc{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrUsernameNotFound
		},
	}, nil)

	rr := postLoginForm(h, loginForm("somebodyelse", "carmaker", ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Username not found")
	// form stays sticky for correction
	assert.Contains(t, rr.Body.String(), `value="somebodyelse"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler(&stubAuthSvc{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}, nil)

	rr := postLoginForm(h, loginForm("ipgautomotive", "wrong-password", ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid password")
}

func TestLogin_Success_SetsCookieAndRedirects(t *testing.T) {
	h := newTestHandler(&stubAuthSvc{
		createFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-session", UserID: user.UserID}, nil
		},
	}, nil)

	rr := postLoginForm(h, loginForm("ipgautomotive", "carmaker", "/somewhere"))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/somewhere", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session, "session cookie should be set")
	assert.Equal(t, "signed-session", session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
}

func TestLogin_Success_SanitizesRedirect(t *testing.T) {
	tests := []struct {
		name       string
		redirectTo string
		want       string
	}{
		{name: "absent defaults to root", redirectTo: "", want: "/"},
		{name: "local path kept", redirectTo: "/favorites", want: "/favorites"},
		{name: "absolute url rejected", redirectTo: "https://evil.example", want: "/"},
		{name: "protocol-relative rejected", redirectTo: "//evil.example", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, nil)

			rr := postLoginForm(h, loginForm("ipgautomotive", "carmaker", tt.redirectTo))

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, tt.want, rr.Header().Get("Location"))
		})
	}
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	h := newTestHandler(&stubAuthSvc{
		createFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, assert.AnError
		},
	}, nil)

	rr := postLoginForm(h, loginForm("ipgautomotive", "carmaker", ""))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "An unexpected error occurred")
	assert.Empty(t, rr.Result().Cookies(), "no session cookie on failure")
}
