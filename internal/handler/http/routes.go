package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// trendIDPattern restricts parameterized route ids to alphanumeric and
// hyphen characters; anything else falls through to the 404 handler.
const trendIDPattern = "[a-zA-Z0-9-]+"

// Init builds the router. Ordering is what the dashboard contract requires:
// CORS preflights terminate before anything else, /health never touches the
// verifier, public catalog reads need no token, /api/user/* needs a
// verified user, and /api/admin/* additionally needs the admin role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		// public catalog reads
		r.Get("/trends", h.listTrends)
		r.Get(fmt.Sprintf("/trends/{trendID:%s}", trendIDPattern), h.getTrend)
		r.Get("/categories", h.listCategories)

		r.Route("/user", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Use(h.requireUser)

			r.Get("/profile", h.profile)
			r.Get("/favorites", h.listFavorites)
			r.Post("/favorites", h.addFavorite)
			r.Delete(fmt.Sprintf("/favorites/{trendID:%s}", trendIDPattern), h.removeFavorite)
			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)
			r.Post("/upload-url", h.uploadURL)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Use(h.requireUser)
			r.Use(h.requireAdmin)

			r.Post("/trends", h.createTrend)
			r.Put(fmt.Sprintf("/trends/{trendID:%s}", trendIDPattern), h.updateTrend)
			r.Delete(fmt.Sprintf("/trends/{trendID:%s}", trendIDPattern), h.deleteTrend)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Not Found: %s", r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return router
}
