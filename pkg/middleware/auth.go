package middleware

import (
	"net/http"
	"strings"

	"github.com/ovenlight/bakehouse/pkg/auth"
	"github.com/ovenlight/bakehouse/pkg/response"
)

// Auth rejects requests without a valid bearer token and stores the
// verified claims in the request context for downstream handlers.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(w, "No token provided")
			return
		}

		claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
