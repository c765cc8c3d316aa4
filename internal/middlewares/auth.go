package middlewares

import (
	"context"
	"net/http"

	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	usernameKey contextKey = "username"
)

// RequireAuth validates the bearer token and stores the caller's
// identity on the request context.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			username, err := utils.GetUsernameFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's id, zero when unauthenticated.
func UserID(r *http.Request) uint {
	id, _ := r.Context().Value(userIDKey).(uint)
	return id
}

// Username returns the authenticated user's name, empty when unauthenticated.
func Username(r *http.Request) string {
	name, _ := r.Context().Value(usernameKey).(string)
	return name
}
