package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"staynest-admin-backend/internal/security"
)

// AuthMiddleware rejects requests without a valid admin bearer token.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if _, err := tokens.Validate(strings.TrimPrefix(header, "Bearer ")); err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
