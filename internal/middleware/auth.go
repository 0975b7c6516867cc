package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

type contextKey string

const (
	OrgKey    contextKey = "organization"
	UserKey   contextKey = "user"
	APIKeyKey contextKey = "api_key"
)

// Principal is the identity a bearer token resolves to.
type Principal struct {
	Organization string
	User         string
}

// openPath reports whether a path is served without credentials.
func openPath(p string) bool {
	return p == "/health" || p == "/ready" || p == "/metrics" || strings.HasPrefix(p, "/blobs/")
}

// BearerAuth validates the Authorization header against the configured
// token set and stores the resolved principal on the context.
func BearerAuth(tokens map[string]Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if openPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}

			// Support both "Bearer <key>" and "<key>" formats
			apiKey := strings.TrimPrefix(auth, "Bearer ")
			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				http.Error(w, "invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			// Constant-time comparison to prevent timing attacks
			valid := false
			var who Principal
			for key, p := range tokens {
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					valid = true
					who = p
					break
				}
			}
			if !valid {
				http.Error(w, "invalid API key", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OrgKey, who.Organization)
			ctx = context.WithValue(ctx, UserKey, who.User)
			ctx = context.WithValue(ctx, APIKeyKey, apiKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOrgFromContext extracts the authenticated organization id.
func GetOrgFromContext(ctx context.Context) string {
	if org, ok := ctx.Value(OrgKey).(string); ok {
		return org
	}
	return ""
}

// GetUserFromContext extracts the authenticated user id.
func GetUserFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(UserKey).(string); ok {
		return user
	}
	return ""
}
