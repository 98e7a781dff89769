package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/aussiebroadwan/passvault/pkg/idx"
	"github.com/stretchr/testify/require"
)

var githubInput = CredentialInput{
	ServiceName: "GitHub",
	ServiceURL:  "https://github.com",
	Username:    "alice",
	Secret:      "s3cr3t-value",
}

func TestCredentialService_CreateAndRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")

	t.Run("redacted by default", func(t *testing.T) {
		view, err := env.credentials.Create(ctx, alice, vault.ID, githubInput, false)
		require.NoError(t, err)
		require.False(t, view.Revealed)
		require.Empty(t, view.Secret)

		stored, err := env.store.Credentials().GetCredentialByID(ctx, view.ID)
		require.NoError(t, err)
		require.NotEqual(t, githubInput.Secret, stored.Secret)
		require.NotContains(t, stored.Secret, githubInput.Secret)

		got, err := env.credentials.Get(ctx, alice, view.ID)
		require.NoError(t, err)
		require.True(t, got.Revealed)
		require.Equal(t, githubInput.Secret, got.Secret)
	})

	t.Run("revealed on request", func(t *testing.T) {
		in := githubInput
		in.ServiceName = "GitLab"
		view, err := env.credentials.Create(ctx, alice, vault.ID, in, true)
		require.NoError(t, err)
		require.True(t, view.Revealed)
		require.Equal(t, in.Secret, view.Secret)
	})

	t.Run("read all decrypts every entry", func(t *testing.T) {
		views, err := env.credentials.ReadAll(ctx, alice, vault.ID)
		require.NoError(t, err)
		require.Len(t, views, len(domain.DefaultPresets())+2)
		for _, v := range views {
			require.True(t, v.Revealed)
			require.False(t, v.DecryptFailed)
		}
	})
}

func TestCredentialService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")

	tests := []struct {
		name string
		in   CredentialInput
	}{
		{"missing service name", CredentialInput{ServiceName: "  "}},
		{"relative url", CredentialInput{ServiceName: "X", ServiceURL: "github.com/login"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.credentials.Create(ctx, alice, vault.ID, tt.in, false)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCredentialService_EmptySecretIsEncrypted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")

	view, err := env.credentials.Create(ctx, alice, vault.ID, CredentialInput{ServiceName: "Empty"}, false)
	require.NoError(t, err)

	stored, err := env.store.Credentials().GetCredentialByID(ctx, view.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.Secret)

	plain, err := env.cipher.DecryptString(stored.Secret)
	require.NoError(t, err)
	require.Empty(t, plain)
}

func TestCredentialService_ForeignUpdateIsDenied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")
	bob, _ := env.register(t, "bob@example.com")

	view, err := env.credentials.Create(ctx, alice, vault.ID, githubInput, false)
	require.NoError(t, err)
	before, err := env.store.Credentials().GetCredentialByID(ctx, view.ID)
	require.NoError(t, err)

	_, err = env.credentials.Update(ctx, bob, view.ID, CredentialInput{ServiceName: "Hijacked", Secret: "pwned"})
	require.ErrorIs(t, err, ErrAccessDenied)

	after, err := env.store.Credentials().GetCredentialByID(ctx, view.ID)
	require.NoError(t, err)
	require.Equal(t, before.ServiceName, after.ServiceName)
	require.Equal(t, before.Secret, after.Secret)
	require.True(t, before.UpdatedAt.Equal(after.UpdatedAt))
}

func TestCredentialService_UniformDenial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")
	bob, bobVault := env.register(t, "bob@example.com")

	view, err := env.credentials.Create(ctx, alice, vault.ID, githubInput, false)
	require.NoError(t, err)
	missing := idx.New().String()

	t.Run("foreign and missing vaults", func(t *testing.T) {
		_, foreign := env.credentials.ReadAll(ctx, bob, vault.ID)
		_, absent := env.credentials.ReadAll(ctx, bob, missing)
		require.ErrorIs(t, foreign, ErrAccessDenied)
		require.ErrorIs(t, absent, ErrAccessDenied)
		require.Equal(t, foreign.Error(), absent.Error())

		_, err := env.credentials.Create(ctx, alice, bobVault.ID, githubInput, false)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("foreign and missing entries", func(t *testing.T) {
		_, foreign := env.credentials.Get(ctx, bob, view.ID)
		_, absent := env.credentials.Get(ctx, bob, missing)
		require.ErrorIs(t, foreign, ErrAccessDenied)
		require.ErrorIs(t, absent, ErrAccessDenied)

		require.ErrorIs(t, env.credentials.Delete(ctx, bob, view.ID), ErrAccessDenied)
		require.ErrorIs(t, env.credentials.Delete(ctx, alice, missing), ErrAccessDenied)

		_, err := env.credentials.Update(ctx, alice, missing, githubInput)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := env.credentials.Get(ctx, domain.Identity{}, view.ID)
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCredentialService_UpdateReencrypts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")

	view, err := env.credentials.Create(ctx, alice, vault.ID, githubInput, false)
	require.NoError(t, err)
	before, err := env.store.Credentials().GetCredentialByID(ctx, view.ID)
	require.NoError(t, err)

	in := githubInput
	in.Username = "alice-renamed"
	updated, err := env.credentials.Update(ctx, alice, view.ID, in)
	require.NoError(t, err)
	require.Equal(t, "alice-renamed", updated.Username)
	require.False(t, updated.Revealed)
	require.Empty(t, updated.Secret)

	after, err := env.store.Credentials().GetCredentialByID(ctx, view.ID)
	require.NoError(t, err)
	require.NotEqual(t, before.Secret, after.Secret, "same secret must get a fresh IV")

	got, err := env.credentials.Get(ctx, alice, view.ID)
	require.NoError(t, err)
	require.Equal(t, githubInput.Secret, got.Secret)
}

func TestCredentialService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")

	view, err := env.credentials.Create(ctx, alice, vault.ID, githubInput, false)
	require.NoError(t, err)

	require.NoError(t, env.credentials.Delete(ctx, alice, view.ID))
	_, err = env.credentials.Get(ctx, alice, view.ID)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCredentialService_DecryptFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, vault := env.register(t, "alice@example.com")

	good, err := env.cipher.EncryptString("intact")
	require.NoError(t, err)
	// Dropping the last hex character leaves an envelope that is still
	// well formed for the store but can no longer be decoded.
	truncated := good[:len(good)-1]

	now := time.Now().UTC()
	corrupt := domain.Credential{
		ID:          idx.New().String(),
		VaultID:     vault.ID,
		ServiceName: "Corrupted",
		Secret:      truncated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, env.store.Credentials().InsertCredentials(ctx, []domain.Credential{corrupt}))

	t.Run("single read fails", func(t *testing.T) {
		view, err := env.credentials.Get(ctx, alice, corrupt.ID)
		require.ErrorIs(t, err, ErrDecryption)
		require.ErrorIs(t, err, cryptox.ErrDecrypt)
		require.Empty(t, view.Secret)
	})

	t.Run("listing reports it per entry", func(t *testing.T) {
		views, err := env.credentials.ReadAll(ctx, alice, vault.ID)
		require.NoError(t, err)
		require.Len(t, views, len(domain.DefaultPresets())+1)

		var failed int
		for _, v := range views {
			if v.ID == corrupt.ID {
				require.True(t, v.DecryptFailed)
				require.False(t, v.Revealed)
				require.Empty(t, v.Secret)
				failed++
				continue
			}
			require.True(t, v.Revealed)
			require.False(t, v.DecryptFailed)
		}
		require.Equal(t, 1, failed)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := cryptox.NewCipher([]byte("0123456789abcdef0123456789abcdef"))
		require.NoError(t, err)
		svc := &CredentialService{Store: env.store, Cipher: other}

		views, err := svc.ReadAll(ctx, alice, vault.ID)
		require.NoError(t, err)
		for _, v := range views {
			if v.Revealed {
				// CBC padding can validate by chance; the value must still
				// not be the original.
				require.NotEqual(t, "", v.Secret)
			}
		}
	})
}
