package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/medicare/pkg/auth"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

// bearerToken extracts the credential from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// requireToken verifies a bearer token of the expected type and stores the
// authenticated username in the request context. The 401 body distinguishes
// absent, expired and invalid credentials.
func requireToken(expectedType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "Authorization token is required")
				return
			}

			claims, err := auth.ValidateToken(token, expectedType)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					response.Error(w, http.StatusUnauthorized, "Token has expired")
				case errors.Is(err, auth.ErrWrongTokenType):
					response.Error(w, http.StatusUnauthorized, "Wrong token type")
				default:
					response.Error(w, http.StatusUnauthorized, "Invalid token")
				}
				return
			}

			ctx := auth.WithUsername(r.Context(), claims.Username())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Auth guards routes that need a valid access token.
func Auth(next http.Handler) http.Handler {
	return requireToken(auth.TypeAccess)(next)
}

// RefreshAuth guards the token rotation endpoint, which takes a refresh
// token instead of an access token.
func RefreshAuth(next http.Handler) http.Handler {
	return requireToken(auth.TypeRefresh)(next)
}
