package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/aussiebroadwan/passvault/pkg/idx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// CredentialService manages credential entries. Secrets are encrypted before
// they reach the store and decrypted only on the way back to their owner.
type CredentialService struct {
	Store      store.Store
	Cipher     *cryptox.Cipher
	Authorizer Authorizer
}

// Create adds an entry to vaultID. The returned view carries the plaintext
// secret only when reveal is set.
func (s *CredentialService) Create(
	ctx context.Context,
	identity domain.Identity,
	vaultID string,
	in CredentialInput,
	reveal bool,
) (domain.CredentialView, error) {
	in, err := in.normalize()
	if err != nil {
		return domain.CredentialView{}, err
	}

	vault, err := s.resolveVault(ctx, identity, vaultID)
	if err != nil {
		return domain.CredentialView{}, err
	}

	envelope, err := s.Cipher.EncryptString(in.Secret)
	if err != nil {
		return domain.CredentialView{}, fmt.Errorf("encrypt secret: %w", err)
	}

	now := time.Now().UTC()
	c := domain.Credential{
		ID:          idx.New().String(),
		VaultID:     vault.ID,
		OwnerID:     vault.AccountID,
		ServiceName: in.ServiceName,
		ServiceURL:  in.ServiceURL,
		Username:    in.Username,
		Secret:      envelope,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Credentials().InsertCredentials(ctx, []domain.Credential{c}); err != nil {
		return domain.CredentialView{}, fmt.Errorf("insert credential: %w", err)
	}

	slogx.FromContext(ctx).Info("credential created",
		slog.String("credential_id", c.ID),
		slog.String("vault_id", c.VaultID),
	)

	view := c.View()
	if reveal {
		view.Secret = in.Secret
		view.Revealed = true
	}
	return view, nil
}

// ReadAll returns every entry in vaultID with its secret decrypted. An entry
// that fails to decrypt is reported on its own and does not fail the call.
func (s *CredentialService) ReadAll(ctx context.Context, identity domain.Identity, vaultID string) ([]domain.CredentialView, error) {
	vault, err := s.resolveVault(ctx, identity, vaultID)
	if err != nil {
		return nil, err
	}

	entries, err := s.Store.Credentials().ListCredentialsByVault(ctx, vault.ID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	log := slogx.FromContext(ctx)
	out := make([]domain.CredentialView, 0, len(entries))
	for _, c := range entries {
		view, err := s.reveal(c)
		if err != nil {
			log.Error("credential decrypt failed",
				slog.String("credential_id", c.ID),
				slog.String("vault_id", c.VaultID),
				slog.Any("error", err),
			)
		}
		out = append(out, view)
	}
	return out, nil
}

// Get returns a single entry with its secret decrypted.
func (s *CredentialService) Get(ctx context.Context, identity domain.Identity, credentialID string) (domain.CredentialView, error) {
	c, err := s.resolveCredential(ctx, identity, credentialID)
	if err != nil {
		return domain.CredentialView{}, err
	}

	view, err := s.reveal(c)
	if err != nil {
		slogx.FromContext(ctx).Error("credential decrypt failed",
			slog.String("credential_id", c.ID),
			slog.Any("error", err),
		)
		return domain.CredentialView{}, err
	}
	return view, nil
}

// Update replaces the content of an entry. The secret is re-encrypted under
// a fresh IV even when it did not change. The returned view is redacted.
func (s *CredentialService) Update(
	ctx context.Context,
	identity domain.Identity,
	credentialID string,
	in CredentialInput,
) (domain.CredentialView, error) {
	in, err := in.normalize()
	if err != nil {
		return domain.CredentialView{}, err
	}

	c, err := s.resolveCredential(ctx, identity, credentialID)
	if err != nil {
		return domain.CredentialView{}, err
	}

	envelope, err := s.Cipher.EncryptString(in.Secret)
	if err != nil {
		return domain.CredentialView{}, fmt.Errorf("encrypt secret: %w", err)
	}

	c.ServiceName = in.ServiceName
	c.ServiceURL = in.ServiceURL
	c.Username = in.Username
	c.Secret = envelope
	c.UpdatedAt = time.Now().UTC()

	if err := s.Store.Credentials().UpdateCredential(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CredentialView{}, s.Authorizer.Require(ctx, identity, "", "credential:"+credentialID)
		}
		return domain.CredentialView{}, fmt.Errorf("update credential: %w", err)
	}

	slogx.FromContext(ctx).Info("credential updated", slog.String("credential_id", c.ID))
	return c.View(), nil
}

// Delete permanently removes an entry.
func (s *CredentialService) Delete(ctx context.Context, identity domain.Identity, credentialID string) error {
	c, err := s.resolveCredential(ctx, identity, credentialID)
	if err != nil {
		return err
	}

	if err := s.Store.Credentials().DeleteCredential(ctx, c.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.Authorizer.Require(ctx, identity, "", "credential:"+credentialID)
		}
		return fmt.Errorf("delete credential: %w", err)
	}

	slogx.FromContext(ctx).Info("credential deleted", slog.String("credential_id", c.ID))
	return nil
}

func (s *CredentialService) resolveVault(ctx context.Context, identity domain.Identity, vaultID string) (domain.Vault, error) {
	resource := "vault:" + vaultID
	if vaultID == "" {
		return domain.Vault{}, s.Authorizer.Require(ctx, identity, "", resource)
	}

	vault, err := s.Store.Vaults().GetVaultByID(ctx, vaultID)
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

func (s *CredentialService) resolveCredential(ctx context.Context, identity domain.Identity, credentialID string) (domain.Credential, error) {
	resource := "credential:" + credentialID
	if credentialID == "" {
		return domain.Credential{}, s.Authorizer.Require(ctx, identity, "", resource)
	}

	c, err := s.Store.Credentials().GetCredentialByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Credential{}, s.Authorizer.Require(ctx, identity, "", resource)
		}
		return domain.Credential{}, fmt.Errorf("get credential: %w", err)
	}

	if err := s.Authorizer.Require(ctx, identity, c.OwnerID, resource); err != nil {
		return domain.Credential{}, err
	}
	return c, nil
}

// reveal decrypts c into a view. On failure the view is still returned with
// DecryptFailed set and no secret.
func (s *CredentialService) reveal(c domain.Credential) (domain.CredentialView, error) {
	view := c.View()
	plain, err := s.Cipher.DecryptString(c.Secret)
	if err != nil {
		view.DecryptFailed = true
		return view, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	view.Secret = plain
	view.Revealed = true
	return view, nil
}
