package http

import "net/http"

// Fixed CORS policy of the dashboard API. The frontend is served from a
// separate origin, so every response carries these headers.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization"
)

// withCORS sets the CORS headers on every response and terminates OPTIONS
// preflights with an empty success before any verification or routing runs.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
