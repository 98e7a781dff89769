package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("k", 32))

func signToken(t *testing.T, secret []byte, subject string, ttl time.Duration) string {
	t.Helper()
	s, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	token, err := s.Sign(jwtx.NewSessionClaims(subject, subject+"@example.com", "", ttl, time.Now()))
	require.NoError(t, err)
	return token
}

func protected(t *testing.T) http.Handler {
	t.Helper()
	v, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
	require.NoError(t, err)

	return httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"account_id": httpx.AccountIDFromContext(r.Context()),
			"email":      claims.Email,
		})
	}), httpx.AuthnMiddleware(v))
}

func TestAuthnMiddleware(t *testing.T) {
	h := protected(t)

	tests := []struct {
		name   string
		header string
		want   int
		desc   string
	}{
		{"valid token", "Bearer " + signToken(t, testSecret, "acct-1", time.Minute), http.StatusOK, ""},
		{"lowercase scheme", "bearer " + signToken(t, testSecret, "acct-1", time.Minute), http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "missing bearer token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "missing bearer token"},
		{"empty token", "Bearer   ", http.StatusUnauthorized, "missing bearer token"},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, "invalid or expired token"},
		{"foreign secret", "Bearer " + signToken(t, []byte(strings.Repeat("x", 32)), "acct-1", time.Minute), http.StatusUnauthorized, "invalid or expired token"},
		{"expired token", "Bearer " + signToken(t, testSecret, "acct-1", -time.Minute), http.StatusUnauthorized, "invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
			require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			if tt.want == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Equal(t, "acct-1", body["account_id"])
				require.Equal(t, "acct-1@example.com", body["email"])
				return
			}

			require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
			var body httpx.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, "invalid_token", body.Error)
			require.Equal(t, tt.desc, body.ErrorDescription)
		})
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"vault"}`, ""},
		{"empty", ``, "request body is empty"},
		{"unknown field", `{"name":"x","extra":1}`, "malformed JSON body"},
		{"trailing object", `{"name":"x"}{"name":"y"}`, "single JSON object"},
		{"not json", `name=x`, "malformed JSON body"},
		{"too large", `{"name":"` + strings.Repeat("a", httpx.MaxBodyBytes) + `"}`, "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := httpx.DecodeJSON(httptest.NewRecorder(), req, &p)
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.Equal(t, "vault", p.Name)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
