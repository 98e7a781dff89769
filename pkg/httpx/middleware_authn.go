package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// AuthnMiddleware rejects requests without a valid bearer session token.
// Every verification failure gets the same client facing response; the
// failure kind is only logged.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token rejected", slog.String("kind", jwtx.Kind(err)), slog.Any("err", err))
				writeBearerError(w, "invalid or expired token")
				return
			}

			ctx = slogx.With(contextWithAuth(ctx, claims), "account_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, ErrorBody{Error: "invalid_token", ErrorDescription: desc})
}
