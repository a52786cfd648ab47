package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes bounds request payloads; meal and sleep documents are small.
const DefaultMaxBodyBytes = 1 << 20

// DrainAndCloseRequest caps the request body size, and after the handler is
// done drains and closes the body so the connection can be reused.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
