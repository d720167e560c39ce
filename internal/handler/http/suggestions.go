package http

import (
	"net/http"

	"weatherfav/internal/logger"
	"weatherfav/internal/utils"
	"weatherfav/models"
)

// suggestionsResponse is the JSON body of the autocomplete endpoint.
type suggestionsResponse struct {
	Suggestions []models.CitySuggestion `json:"suggestions"`
}

// suggestions serves city autocomplete for the add-city input. The endpoint
// is intentionally forgiving: a missing or too-short query and a provider
// failure all produce an empty list with HTTP 200, so the UI never has to
// special-case it.
func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")

	found, err := h.services.FavoritesService.SuggestCities(ctx, query)
	if err != nil {
		log.Err(err).Str("query", query).Msg("fetching suggestions failed")
		found = nil
	}
	if found == nil {
		found = []models.CitySuggestion{}
	}

	utils.WriteJSON(w, suggestionsResponse{Suggestions: found}, http.StatusOK)
}
