package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"vitrine-backend/internal/auth"
	"vitrine-backend/internal/transport"
)

type claimsKey struct{}

// ClaimsFromContext returns the session claims set by Authenticate or AdminAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

// Authenticate requires a valid access cookie.
func Authenticate(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "auth not configured", nil)
				return
			}
			claims, ok := accessClaims(r, manager)
			if !ok {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

// AdminAuth lets a request through when it carries the static admin key or an
// access cookie for a user with the admin role.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if validAdminKey(r.Header.Get("X-Admin-Key"), adminKey) {
				next.ServeHTTP(w, r)
				return
			}

			if manager != nil {
				if claims, ok := accessClaims(r, manager); ok && claims.Role == auth.RoleAdmin {
					next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
					return
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}

// validAdminKey compares in constant time. An empty configured key never
// matches.
func validAdminKey(got, want string) bool {
	if want == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func accessClaims(r *http.Request, manager *auth.Manager) (*auth.Claims, bool) {
	cookie, err := r.Cookie(auth.AccessCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err := manager.Parse(cookie.Value)
	if err != nil || claims.Kind != auth.KindAccess {
		return nil, false
	}
	return claims, true
}
