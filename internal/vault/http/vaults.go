package http

import (
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

type VaultHandler struct {
	VaultService *service.VaultService
}

// HandleList handles GET /v1/vaults
//
//	@Summary		List Vaults
//	@Tags			Vaults
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	vaultsdk.VaultListResponse
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Router			/v1/vaults [get].
func (h *VaultHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	vaults, err := h.VaultService.List(r.Context(), identity(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := vaultsdk.VaultListResponse{Vaults: make([]vaultsdk.VaultResponse, 0, len(vaults))}
	for _, v := range vaults {
		resp.Vaults = append(resp.Vaults, toVaultResponse(v))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/vaults/{vault_id}
//
//	@Summary		Get Vault
//	@Tags			Vaults
//	@Produce		json
//	@Security		BearerAuth
//	@Param			vault_id	path		string	true	"Vault ID"
//	@Success		200			{object}	vaultsdk.VaultResponse
//	@Failure		401			{object}	vaultsdk.ErrorResponse	"invalid_token"
//	@Failure		403			{object}	vaultsdk.ErrorResponse	"access_denied, also for unknown IDs"
//	@Router			/v1/vaults/{vault_id} [get].
func (h *VaultHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vault, err := h.VaultService.Get(r.Context(), identity(r), r.PathValue("vault_id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toVaultResponse(vault))
}
