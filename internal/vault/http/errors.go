package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

// writeServiceError maps service errors onto HTTP responses. Descriptions
// are fixed strings so clients learn nothing about which check failed.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, verr.Error())
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "invalid request")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, vaultsdk.ErrorCodeConflict, "email is already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidCredentials, "invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
		httpx.WriteError(w, http.StatusUnauthorized, vaultsdk.ErrorCodeInvalidToken, "invalid or expired token")
	case errors.Is(err, service.ErrAccessDenied):
		httpx.WriteError(w, http.StatusForbidden, vaultsdk.ErrorCodeAccessDenied, "access denied")
	case errors.Is(err, service.ErrDecryption):
		httpx.WriteError(w, http.StatusInternalServerError, vaultsdk.ErrorCodeServerError, "stored secret could not be decrypted")
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, vaultsdk.ErrorCodeServerError, "internal server error")
	}
}

func writeBadRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, err.Error())
}

// identity returns the caller set by the authn middleware.
func identity(r *http.Request) domain.Identity {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return domain.Identity{}
	}
	return service.IdentityFromClaims(claims)
}
