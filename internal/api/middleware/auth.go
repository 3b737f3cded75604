package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rosterhub/rosterhub/internal/api/apierr"
	"github.com/rosterhub/rosterhub/internal/services/auth"
)

type contextKey string

const identityContextKey contextKey = "identity"

// TokenCookieName is the cookie carrying the session token for browser
// clients; API clients use the Authorization header instead
const TokenCookieName = "token"

// Auth creates authentication middleware. A missing token yields 401; a
// token that is present but malformed or expired yields 403.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			identity, err := authService.Authenticate(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated non-admin identities with 403.
// Must be applied after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := MustGetIdentity(r.Context())
		if !identity.IsAdmin() {
			apierr.WriteError(w, apierr.NewForbiddenError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to cookie
	cookie, err := r.Cookie(TokenCookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetIdentity returns the authenticated identity from the request context
func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(auth.Identity)
	return identity, ok
}

// MustGetIdentity returns the authenticated identity or panics
func MustGetIdentity(ctx context.Context) auth.Identity {
	identity, ok := GetIdentity(ctx)
	if !ok {
		panic("no identity in context - auth middleware not applied?")
	}
	return identity
}
