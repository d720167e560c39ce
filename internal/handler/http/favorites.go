package http

import (
	"net/http"

	"weatherfav/internal/logger"
	"weatherfav/internal/utils"
	"weatherfav/models"
)

// favoritesLimit mirrors the cap enforced by the favorites service; the
// template uses it to disable the add form once the list is full.
const favoritesLimit = 5

// indexView is the data handed to the index template: the signed-in user's
// name and one card per favorite, each holding either a weather snapshot or
// a per-city error message.
type indexView struct {
	Username  string
	Favorites []models.FavoriteWeather
	AtLimit   bool
	Limit     int
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, favorites, err := h.services.FavoritesService.ListFavoritesWithWeather(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing favorites failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := indexView{
		Username:  user.Username,
		Favorites: favorites,
		AtLimit:   len(favorites) >= favoritesLimit,
		Limit:     favoritesLimit,
	}
	h.render(w, r, "index", http.StatusOK, view)
}

// mutate handles every POST to the index page. The form's action field
// selects the operation: "add" and "remove" change the favorites list,
// "logout" ends the session. Successful mutations redirect back to the
// index so a refresh never replays the form.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form")
		utils.WriteJSON(w, map[string]string{"error": "invalid form data"}, http.StatusBadRequest)
		return
	}

	action := r.PostFormValue("action")
	city := r.PostFormValue("city")

	switch action {
	case "add":
		if err := h.services.FavoritesService.AddCity(ctx, userID, city); err != nil {
			log.Err(err).Str("city", city).Msg("adding city failed")
			utils.WriteJSON(w, map[string]string{"error": err.Error()}, statusFromError(err))
			return
		}
	case "remove":
		if err := h.services.FavoritesService.RemoveCity(ctx, userID, city); err != nil {
			log.Err(err).Str("city", city).Msg("removing city failed")
			utils.WriteJSON(w, map[string]string{"error": err.Error()}, statusFromError(err))
			return
		}
	case "logout":
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	default:
		log.Error().Str("action", action).Msg("unknown form action")
		utils.WriteJSON(w, map[string]string{"error": "unknown action"}, http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
