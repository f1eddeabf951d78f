package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"digiboard/api/internal/auth"
	"digiboard/api/internal/services"
)

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthenticated."})
}

// AuthMiddleware resolves the bearer token to its user and stores the user on
// the request context. Requests with no token, an unknown token, or a token
// whose user was deleted are rejected with 401.
func AuthMiddleware(authSvc *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				unauthenticated(w)
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if token == "" {
				unauthenticated(w)
				return
			}

			user, err := authSvc.ResolveToken(r.Context(), token)
			if err != nil {
				unauthenticated(w)
				return
			}

			ctx := auth.SetCurrentUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
