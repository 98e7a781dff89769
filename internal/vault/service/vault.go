package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
)

type VaultService struct {
	Store      store.Store
	Authorizer Authorizer
}

// List returns the caller's vaults.
func (s *VaultService) List(ctx context.Context, identity domain.Identity) ([]domain.Vault, error) {
	if identity.IsZero() {
		return nil, ErrAccessDenied
	}
	vaults, err := s.Store.Vaults().ListVaultsByAccount(ctx, identity.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}
	return vaults, nil
}

// Get returns one of the caller's vaults. Missing and foreign vaults are
// both ErrAccessDenied.
func (s *VaultService) Get(ctx context.Context, identity domain.Identity, vaultID string) (domain.Vault, error) {
	resource := "vault:" + vaultID
	if identity.IsZero() || vaultID == "" {
		return domain.Vault{}, s.Authorizer.Require(ctx, identity, "", resource)
	}

	vault, err := s.Store.Vaults().FindVaultByIDAndOwner(ctx, vaultID, identity.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Vault{}, s.Authorizer.Require(ctx, identity, "", resource)
		}
		return domain.Vault{}, fmt.Errorf("get vault: %w", err)
	}

	if err := s.Authorizer.Require(ctx, identity, vault.AccountID, resource); err != nil {
		return domain.Vault{}, err
	}
	return vault, nil
}
