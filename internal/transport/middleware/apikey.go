package middleware

import (
	"crypto/subtle"
	"net/http"
)

const apiKeyHeader = "api-key"

// APIKey returns middleware that rejects requests whose api-key header does
// not match the configured key. The comparison is constant-time. Health
// routes are mounted outside this middleware and stay open.
func APIKey(key string) Middleware {
	want := []byte(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(apiKeyHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
