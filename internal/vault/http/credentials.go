package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

// CredentialHandler serves credential entry endpoints. Every route requires
// a session and the caller must own the vault or entry.
type CredentialHandler struct {
	CredentialService *service.CredentialService
}

// HandleList handles GET /v1/vaults/{vault_id}/credentials
//
//	@Summary		List Credentials
//	@Description	Returns every entry with its secret decrypted. An entry whose secret
//	@Description	cannot be decrypted is returned with decrypt_error=true and no secret.
//	@Tags			Credentials
//	@Produce		json
//	@Security		BearerAuth
//	@Param			vault_id	path		string	true	"Vault ID"
//	@Success		200			{object}	vaultsdk.CredentialListResponse
//	@Failure		401			{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Failure		403			{object}	vaultsdk.ErrorResponse	"access_denied"
//	@Router			/v1/vaults/{vault_id}/credentials [get].
func (h *CredentialHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.CredentialService.ReadAll(r.Context(), identity(r), r.PathValue("vault_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := vaultsdk.CredentialListResponse{Credentials: make([]vaultsdk.CredentialResponse, 0, len(views))}
	for _, v := range views {
		resp.Credentials = append(resp.Credentials, toCredentialResponse(v))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /v1/vaults/{vault_id}/credentials
//
//	@Summary		Create Credential
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			vault_id	path		string						true	"Vault ID"
//	@Param			reveal		query		bool						false	"Echo the secret in the response"
//	@Param			request		body		vaultsdk.CredentialRequest	true	"Entry"
//	@Success		201			{object}	vaultsdk.CredentialResponse
//	@Failure		400			{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401			{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Failure		403			{object}	vaultsdk.ErrorResponse	"access_denied"
//	@Router			/v1/vaults/{vault_id}/credentials [post].
func (h *CredentialHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var reveal bool
	if raw := r.URL.Query().Get("reveal"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "reveal must be a boolean")
			return
		}
		reveal = v
	}

	var req vaultsdk.CredentialRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	view, err := h.CredentialService.Create(r.Context(), identity(r), r.PathValue("vault_id"), toCredentialInput(req), reveal)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCredentialResponse(view))
}

// HandleGet handles GET /v1/credentials/{credential_id}
//
//	@Summary		Get Credential
//	@Tags			Credentials
//	@Produce		json
//	@Security		BearerAuth
//	@Param			credential_id	path		string	true	"Credential ID"
//	@Success		200				{object}	vaultsdk.CredentialResponse
//	@Failure		401				{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Failure		403				{object}	vaultsdk.ErrorResponse	"access_denied"
//	@Failure		500				{object}	vaultsdk.ErrorResponse	"secret could not be decrypted"
//	@Router			/v1/credentials/{credential_id} [get].
func (h *CredentialHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.CredentialService.Get(r.Context(), identity(r), r.PathValue("credential_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCredentialResponse(view))
}

// HandleUpdate handles PUT /v1/credentials/{credential_id}
//
//	@Summary		Update Credential
//	@Description	Replaces the entry. The secret is always re-encrypted; the response never includes it.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			credential_id	path		string						true	"Credential ID"
//	@Param			request			body		vaultsdk.CredentialRequest	true	"Entry"
//	@Success		200				{object}	vaultsdk.CredentialResponse
//	@Failure		400				{object}	vaultsdk.ErrorResponse	"error, error_description"
//	@Failure		401				{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Failure		403				{object}	vaultsdk.ErrorResponse	"access_denied"
//	@Router			/v1/credentials/{credential_id} [put].
func (h *CredentialHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.CredentialRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	view, err := h.CredentialService.Update(r.Context(), identity(r), r.PathValue("credential_id"), toCredentialInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCredentialResponse(view))
}

// HandleDelete handles DELETE /v1/credentials/{credential_id}
//
//	@Summary		Delete Credential
//	@Tags			Credentials
//	@Security		BearerAuth
//	@Param			credential_id	path	string	true	"Credential ID"
//	@Success		204
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Failure		403	{object}	vaultsdk.ErrorResponse	"access_denied"
//	@Router			/v1/credentials/{credential_id} [delete].
func (h *CredentialHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CredentialService.Delete(r.Context(), identity(r), r.PathValue("credential_id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
