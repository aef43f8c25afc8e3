package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/logger"
)

type ctxKey string

const claimsKey ctxKey = "authClaims"

// Error messages returned to clients
const (
	ErrMsgMissingToken = "Authorization token required"
	ErrMsgInvalidToken = "Invalid token"
)

// Authenticator verifies a bearer token and yields the subject's claims
type Authenticator interface {
	Authenticate(tokenString string) (*auth.Claims, error)
}

// RequireAuth validates the Authorization bearer token and injects the
// verified claims into the request context. Missing token yields 401,
// an invalid or expired one 403.
func RequireAuth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				log.Warn("Request without bearer token", "path", r.URL.Path)
				http.Error(w, ErrMsgMissingToken, http.StatusUnauthorized)
				return
			}

			claims, err := authenticator.Authenticate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Warn("Request with invalid token", "path", r.URL.Path, "error", err)
				http.Error(w, ErrMsgInvalidToken, http.StatusForbidden)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithClaims returns a new context containing the verified claims
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext extracts the verified claims from the context, if present
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
