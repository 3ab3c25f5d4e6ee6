package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	router.Get("/", h.liveness)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.With(h.limitGuests).Post("/guest", h.guest)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/decks", func(r chi.Router) {
			r.Get("/", h.listDecks)
			r.Post("/", h.createDeck)
			r.Get("/{id}", h.getDeck)
			r.Put("/{id}", h.renameDeck)
			r.Delete("/{id}", h.deleteDeck)
			r.Post("/{id}/sync", h.syncDeck)
		})

		r.Route("/api/cards", func(r chi.Router) {
			r.Post("/", h.createCard)
			r.Put("/{id}", h.updateCard)
			r.Delete("/{id}", h.deleteCard)
		})

		r.Post("/api/gemini/generate-stem", h.generateStem)
		r.Delete("/api/users/profile", h.deleteProfile)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "*Handler.notFound", ErrRouteNotFound)
}
