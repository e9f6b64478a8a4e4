package fakeapi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/paylane/paylane-go/internal/domain"
)

// NewAuthMiddleware enforces Authorization: Bearer <api key>.
//
// With no keys configured any non-empty key is accepted, which is how the fake
// provider runs locally. On success the principal derived from the key is
// stored in request context, so each key sees only its own sessions.
func NewAuthMiddleware(apiKeys ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing Authorization header", nil)
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "malformed Authorization header", nil)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
				return
			}
			if len(apiKeys) > 0 && !keyAllowed(raw, apiKeys) {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid API key", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), domain.PrincipalFromAPIKey(raw))))
		})
	}
}

func keyAllowed(key string, allowed []string) bool {
	ok := false
	for _, k := range allowed {
		if subtle.ConstantTimeCompare([]byte(key), []byte(k)) == 1 {
			ok = true
		}
	}
	return ok
}
