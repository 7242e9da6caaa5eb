// Package middleware provides HTTP middlewares for authentication, logging
// and metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// Authenticator resolves a bearer token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// BearerAuth resolves the Authorization header and stores the user in the
// request context. Requests without a token pass through anonymously, so
// public routes can share the chain; an invalid token is rejected with 401.
func BearerAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			u, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey, &u)
}

// UserFromContext extracts the authenticated user from ctx. Returns nil if
// not found.
func UserFromContext(ctx context.Context) *models.User {
	if u, ok := ctx.Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}
