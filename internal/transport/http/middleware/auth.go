package middleware

import (
	"context"
	"net/http"

	jwtinfra "github.com/codeShowREX/major-project/internal/infrastructure/jwt"
)

type contextKey string

const userIDKey contextKey = "user_id"

// tokenVerifier decodes and verifies a signed session token.
type tokenVerifier interface {
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

// Session returns middleware that reads the session cookie, verifies the
// signed token, and injects the authenticated user ID into the context.
// Requests without a valid cookie never reach the handler.
func Session(verifier tokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - no token provided")
				return
			}
			claims, err := verifier.Verify(c.Value)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized - invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
