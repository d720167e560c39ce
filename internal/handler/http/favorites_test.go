package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherfav/internal/adapter"
	"weatherfav/internal/service"
	"weatherfav/internal/utils"
	"weatherfav/models"
)

func requestWithUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

func getIndex(h *Handler, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = injectNopLogger(req)
	if userID != "" {
		req = requestWithUserID(req, userID)
	}
	rr := httptest.NewRecorder()
	h.index(rr, req)
	return rr
}

func postMutation(h *Handler, userID string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = injectNopLogger(req)
	if userID != "" {
		req = requestWithUserID(req, userID)
	}
	rr := httptest.NewRecorder()
	h.mutate(rr, req)
	return rr
}

func mutationForm(action, city string) url.Values {
	form := url.Values{}
	form.Set("action", action)
	if city != "" {
		form.Set("city", city)
	}
	return form
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

// ---- Index page ----

func TestIndex_RendersFavoriteCards(t *testing.T) {
	h := newTestHandler(nil, &stubFavoritesSvc{
		listFn: func(ctx context.Context, userID string) (models.User, []models.FavoriteWeather, error) {
			snapshot := models.WeatherSnapshot{
				Location: models.Location{Name: "Paris", Country: "France"},
				Current: models.Current{
					TempC:     18.5,
					Condition: models.Condition{Text: "Partly cloudy"},
					Humidity:  60,
				},
			}
			return models.User{UserID: userID, Username: "ipgautomotive"},
				[]models.FavoriteWeather{
					{City: "Paris", Snapshot: &snapshot},
					{City: "Nowhereville", Error: `city not found: city "Nowhereville"`},
				}, nil
		},
	})

	rr := getIndex(h, "user-1")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Paris")
	assert.Contains(t, body, "18.5")
	assert.Contains(t, body, "Partly cloudy")
	assert.Contains(t, body, "Nowhereville")
	assert.Contains(t, body, "city not found")
	assert.Contains(t, body, "ipgautomotive")
}

func TestIndex_EmptyList(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := getIndex(h, "user-1")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No favorite cities yet")
}

func TestIndex_FullListDisablesAddForm(t *testing.T) {
	h := newTestHandler(nil, &stubFavoritesSvc{
		listFn: func(ctx context.Context, userID string) (models.User, []models.FavoriteWeather, error) {
			favorites := make([]models.FavoriteWeather, 5)
			for i, city := range []string{"Paris", "London", "Berlin", "Madrid", "Rome"} {
				favorites[i] = models.FavoriteWeather{City: city, Error: "failed to fetch weather for " + city}
			}
			return models.User{Username: "ipgautomotive"}, favorites, nil
		},
	})

	rr := getIndex(h, "user-1")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Favorites list is full")
}

func TestIndex_NoUserIDInContext(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := getIndex(h, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestIndex_ServiceFailure(t *testing.T) {
	h := newTestHandler(nil, &stubFavoritesSvc{
		listFn: func(ctx context.Context, userID string) (models.User, []models.FavoriteWeather, error) {
			return models.User{}, nil, assert.AnError
		},
	})

	rr := getIndex(h, "user-1")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- Mutations ----

func TestMutate_AddSuccess_RedirectsHome(t *testing.T) {
	var gotCity string
	h := newTestHandler(nil, &stubFavoritesSvc{
		addFn: func(ctx context.Context, userID, city string) error {
			gotCity = city
			return nil
		},
	})

	rr := postMutation(h, "user-1", mutationForm("add", "Paris"))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, "Paris", gotCity)
}

func TestMutate_AddFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "blank city", err: service.ErrBlankCity, wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: service.ErrDuplicateCity, wantStatus: http.StatusBadRequest},
		{name: "limit reached", err: service.ErrFavoritesLimitExceeded, wantStatus: http.StatusBadRequest},
		{name: "city not found", err: fmt.Errorf("%w: city %q", adapter.ErrCityNotFound, "Xyz"), wantStatus: http.StatusBadRequest},
		{name: "provider down", err: fmt.Errorf("%w: http 503", adapter.ErrProviderUnavailable), wantStatus: http.StatusBadGateway},
		{name: "unexpected", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, &stubFavoritesSvc{
				addFn: func(ctx context.Context, userID, city string) error {
					return tt.err
				},
			})

			rr := postMutation(h, "user-1", mutationForm("add", "Paris"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.err.Error(), decodeErrorBody(t, rr))
		})
	}
}

func TestMutate_RemoveSuccess(t *testing.T) {
	var gotCity string
	h := newTestHandler(nil, &stubFavoritesSvc{
		removeFn: func(ctx context.Context, userID, city string) error {
			gotCity = city
			return nil
		},
	})

	rr := postMutation(h, "user-1", mutationForm("remove", "Paris"))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, "Paris", gotCity)
}

func TestMutate_Logout_ClearsCookieAndRedirects(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := postMutation(h, "user-1", mutationForm("logout", ""))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should drop the session cookie")
}

func TestMutate_UnknownAction(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := postMutation(h, "user-1", mutationForm("frobnicate", ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "unknown action", decodeErrorBody(t, rr))
}

func TestMutate_NoUserIDInContext(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := postMutation(h, "", mutationForm("add", "Paris"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
