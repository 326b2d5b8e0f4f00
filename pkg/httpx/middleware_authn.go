package httpx

import (
	"net/http"
	"strings"

	"github.com/modboard/modboard/pkg/jwtx"
	"github.com/modboard/modboard/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer session token. The actor id is put
// on the request context and on the request logger.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(strings.TrimSpace(raw))
			if err != nil {
				log.Warn("session token rejected", "err", err)
				writeBearerError(w, "invalid or expired session token")
				return
			}

			ctx = WithActor(ctx, claims)
			ctx = slogx.WithActor(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750 style challenge with a JSON body the SDK can decode.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthenticated",
		"error_description": desc,
	})
}
