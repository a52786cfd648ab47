package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// OwnerIDHeader carries the id of the user authenticated by the upstream gateway.
	OwnerIDHeader = "X-Owner-ID"
	// GatewaySecretHeader proves that the request passed through the gateway.
	GatewaySecretHeader = "X-Gateway-Secret"
)

type ownerCtxKey struct{}

func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerCtxKey{}, ownerID)
}

// OwnerFromContext returns the authenticated owner id set by the Owner middleware.
func OwnerFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ownerCtxKey{}).(string)
	return ownerID, ok && ownerID != ""
}

// Owner puts the owner id passed by the auth gateway into the request context.
// Credential checks happen in the gateway; here we only verify the shared
// gateway secret, when one is configured.
func Owner(gatewaySecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if gatewaySecret != "" {
				got := r.Header.Get(GatewaySecretHeader)
				if subtle.ConstantTimeCompare([]byte(got), []byte(gatewaySecret)) != 1 {
					log.Warnf("owner: invalid gateway secret for path [%s]", r.URL.Path)
					http.Error(w, "no", http.StatusUnauthorized)
					return
				}
			}

			ownerID := strings.TrimSpace(r.Header.Get(OwnerIDHeader))
			if ownerID == "" {
				http.Error(w, "missing owner", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), ownerID)))
		})
	}
}

// RequireOwner returns the owner id of the request, or responds with 401.
func RequireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing owner", http.StatusUnauthorized)
		return "", false
	}
	return ownerID, true
}
