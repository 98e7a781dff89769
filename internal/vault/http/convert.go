package http

import (
	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

func toAccountResponse(a domain.Account) vaultsdk.AccountResponse {
	return vaultsdk.AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		ProfilePath: a.ProfilePath,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toVaultResponse(v domain.Vault) vaultsdk.VaultResponse {
	return vaultsdk.VaultResponse{ID: v.ID, Name: v.Name, CreatedAt: v.CreatedAt}
}

func toCredentialResponse(v domain.CredentialView) vaultsdk.CredentialResponse {
	resp := vaultsdk.CredentialResponse{
		ID:           v.ID,
		VaultID:      v.VaultID,
		ServiceName:  v.ServiceName,
		ServiceURL:   v.ServiceURL,
		Username:     v.Username,
		DecryptError: v.DecryptFailed,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.Revealed {
		secret := v.Secret
		resp.Secret = &secret
	}
	return resp
}

func toCredentialInput(req vaultsdk.CredentialRequest) service.CredentialInput {
	return service.CredentialInput{
		ServiceName: req.ServiceName,
		ServiceURL:  req.ServiceURL,
		Username:    req.Username,
		Secret:      req.Secret,
	}
}
