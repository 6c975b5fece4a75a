package middleware

import (
	"context"
	"net/http"
	"strings"

	"mansionmarket-backend/internal/auth"
	"mansionmarket-backend/internal/transport"
)

type claimsKey struct{}

// RequireRole gates a route behind a bearer token whose role claim is one of
// the allowed roles. Missing or invalid tokens get 401, a wrong role gets 403.
func RequireRole(manager *auth.Manager, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "auth not configured", nil)
				return
			}

			header := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" || token == header {
				transport.WriteError(w, http.StatusUnauthorized, "no token provided", nil)
				return
			}

			claims, err := manager.Parse(token)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			if len(allowed) > 0 && !allowed[claims.Role] {
				transport.WriteError(w, http.StatusForbidden, "access denied", nil)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if v := ctx.Value(claimsKey{}); v != nil {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
