package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user id stored by Authenticator, or "".
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithUserID returns a context carrying the authenticated user id.
// Exposed so handler tests can simulate an authenticated request.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Authenticator rejects requests without a valid Bearer token and stores the
// authenticated user id on the request context.
func Authenticator(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "No token provided")
				return
			}

			userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}
		return http.HandlerFunc(fn)
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(api.Error{Error: msg}) //nolint:errcheck
}
