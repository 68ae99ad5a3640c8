package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/studynotes/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth extracts and validates the Bearer access token and stores the
// user ID in the request context.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeErrorMessage(w, http.StatusUnauthorized, "missing token")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			writeErrorMessage(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeErrorMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// userIDFromContext returns the authenticated user's ID. The auth middleware
// guarantees it is present on protected routes.
func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
