package http

import (
	"context"
	"net/http"

	"github.com/kmori/techtrends/internal/auth"
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/models"
)

// authenticate runs the token verifier against the request headers and
// stores the [models.AuthResult] in the request context. It never rejects
// by itself; requireUser and requireAdmin decide what the result allows.
//
// Verification happens at most once per request regardless of how many
// gates follow.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := h.verifier.Verify(r.Context(), r.Header)

		ctx := context.WithValue(r.Context(), authResultKey, result)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser rejects requests whose auth result does not carry a verified
// user. The 401 body surfaces the verifier's error text when there is one
// (invalid token, missing configuration); a request with no token at all
// gets the plain "Unauthorized".
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := authResultFromContext(r.Context())
		if !auth.RequireAuth(result) {
			log := logger.FromRequest(r)

			message := "Unauthorized"
			if result.Err != nil {
				message = result.Err.Error()
				log.Warn().Err(result.Err).Msg("token rejected")
			}
			respondError(w, http.StatusUnauthorized, message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects verified users without the admin role. It runs after
// requireUser, so an unauthenticated request never reaches it.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := authResultFromContext(r.Context())
		if !auth.RequireAdmin(result) {
			respondError(w, http.StatusForbidden, "Forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// currentUser returns the verified user for handlers behind requireUser.
func currentUser(r *http.Request) *models.AuthenticatedUser {
	return authResultFromContext(r.Context()).User
}
