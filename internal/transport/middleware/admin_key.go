package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// AdminKeyHeader carries the reviewer API key.
const AdminKeyHeader = "X-API-Key"

// AdminKey rejects requests that do not present key, either in
// X-API-Key or as a bearer token.
func AdminKey(key string) Middleware {
	want := []byte(key)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if got == "" {
				got = bearer(r)
			}
			if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				writeError(w, http.StatusUnauthorized, domain.KindAuth, "admin key required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
