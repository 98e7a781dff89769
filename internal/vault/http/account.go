package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

// AccountHandler serves registration, login and profile endpoints.
type AccountHandler struct {
	AccountService *service.AccountService
}

// HandleRegister handles POST /v1/register
//
//	@Summary		Register Account
//	@Description	Creates an account with a default vault seeded with placeholder entries.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	vaultsdk.AccountResponse
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"email already registered"
//	@Failure		500		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/register [post].
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	account, err := h.AccountService.Register(r.Context(), service.RegisterInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAccountResponse(account))
}

// HandleLogin handles POST /v1/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for a short lived bearer token.
//	@Description	Unknown emails and wrong passwords return the same error.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	vaultsdk.LoginResponse
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"invalid_credentials"
//	@Failure		500		{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/login [post].
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	session, err := h.AccountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.LoginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   int(time.Until(session.ExpiresAt).Round(time.Second) / time.Second),
		Account:     toAccountResponse(session.Account),
	})
}

// HandleMe handles GET /v1/me
//
//	@Summary		Current Account
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	vaultsdk.AccountResponse
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Router			/v1/me [get].
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	account, err := h.AccountService.Profile(r.Context(), identity(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandleVerifyPassword handles POST /v1/verify-password
//
//	@Summary		Re-check Password
//	@Description	Confirms the caller still knows the account password before secrets are shown.
//	@Tags			Accounts
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request	body	vaultsdk.VerifyPasswordRequest	true	"Password"
//	@Success		204
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid_credentials or invalid_token"
//	@Router			/v1/verify-password [post].
func (h *AccountHandler) HandleVerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.VerifyPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.AccountService.VerifyPassword(r.Context(), identity(r), req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleChangePassword handles PUT /v1/me/password
//
//	@Summary		Change Password
//	@Description	Replaces the account password. Existing tokens stay valid until they expire.
//	@Tags			Accounts
//	@Accept			json
//	@Security		BearerAuth
//	@Param			request	body	vaultsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		204
//	@Failure		400	{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid_credentials or invalid_token"
//	@Router			/v1/me/password [put].
func (h *AccountHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	if err := h.AccountService.ChangePassword(r.Context(), identity(r), req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
