package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/api/suggestions", h.suggestions)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/", h.index)
		r.Post("/", h.mutate)
	})

	return router
}
