package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/zeromock/threads-api/internal/transport"
)

type ctxKey int

const userIDKey ctxKey = iota

// RequireToken verifies the Bearer token on mutating routes. It is optional
// in the default configuration because the development client does not attach
// the token it receives at login.
func RequireToken(issuer *Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractToken(r)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			sub, err := issuer.Verify(tokenString)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the verified token subject, if any.
func UserID(ctx context.Context) string {
	v := ctx.Value(userIDKey)
	if v == nil {
		return ""
	}
	return v.(string)
}

func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing token")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid token format")
	}

	return parts[1], nil
}
