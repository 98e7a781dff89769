package sqlstore

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/idx"
	"github.com/stretchr/testify/require"
)

var testEnvelope = strings.Repeat("a", 32) + ":" + strings.Repeat("b", 32)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedAccount(t *testing.T, s *Store, email string) domain.Account {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	a := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: "$argon2id$dummy",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Accounts().CreateAccount(context.Background(), a))
	return a
}

func seedVault(t *testing.T, s *Store, accountID string) domain.Vault {
	t.Helper()
	v := domain.Vault{
		ID:        idx.New().String(),
		AccountID: accountID,
		Name:      domain.DefaultVaultName,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.Vaults().CreateVault(context.Background(), v))
	return v
}

func newCredential(vaultID, service string) domain.Credential {
	now := time.Now().UTC()
	return domain.Credential{
		ID:          idx.New().String(),
		VaultID:     vaultID,
		ServiceName: service,
		ServiceURL:  "https://" + strings.ToLower(service) + ".example",
		Username:    "alice@example.com",
		Secret:      testEnvelope,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.Equal(t, "sqlite", s.Dialect())
	require.NoError(t, s.Ping(context.Background()))
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := seedAccount(t, s, "alice@example.com")

	t.Run("get by id and email", func(t *testing.T) {
		got, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a.Email, got.Email)
		require.Nil(t, got.ProfilePath)
		require.True(t, a.CreatedAt.Equal(got.CreatedAt))

		got, err = s.Accounts().GetAccountByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := s.Accounts().GetAccountByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := a
		dup.ID = idx.New().String()
		err := s.Accounts().CreateAccount(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("profile path round trips", func(t *testing.T) {
		path := "/profiles/bob.png"
		b := domain.Account{
			ID:           idx.New().String(),
			Email:        "bob@example.com",
			DisplayName:  "Bob",
			PasswordHash: "h",
			ProfilePath:  &path,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		require.NoError(t, s.Accounts().CreateAccount(ctx, b))
		got, err := s.Accounts().GetAccountByID(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ProfilePath)
		require.Equal(t, path, *got.ProfilePath)
	})

	t.Run("update password", func(t *testing.T) {
		at := time.Now().Add(time.Minute).UTC()
		require.NoError(t, s.Accounts().UpdateAccountPassword(ctx, a.ID, "new-hash", at))
		got, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "new-hash", got.PasswordHash)
		require.True(t, at.Equal(got.UpdatedAt))

		err = s.Accounts().UpdateAccountPassword(ctx, "missing", "x", at)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestVaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedAccount(t, s, "alice@example.com")
	bob := seedAccount(t, s, "bob@example.com")
	v := seedVault(t, s, alice.ID)

	got, err := s.Vaults().GetVaultByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.AccountID)

	_, err = s.Vaults().FindVaultByIDAndOwner(ctx, v.ID, alice.ID)
	require.NoError(t, err)

	_, err = s.Vaults().FindVaultByIDAndOwner(ctx, v.ID, bob.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err := s.Vaults().ListVaultsByAccount(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = s.Vaults().ListVaultsByAccount(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedAccount(t, s, "alice@example.com")
	v := seedVault(t, s, alice.ID)

	batch := []domain.Credential{newCredential(v.ID, "GitHub"), newCredential(v.ID, "GitLab")}
	require.NoError(t, s.Credentials().InsertCredentials(ctx, batch))

	t.Run("get resolves owner", func(t *testing.T) {
		got, err := s.Credentials().GetCredentialByID(ctx, batch[0].ID)
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.OwnerID)
		require.Equal(t, testEnvelope, got.Secret)
	})

	t.Run("list by vault", func(t *testing.T) {
		list, err := s.Credentials().ListCredentialsByVault(ctx, v.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, c := range list {
			require.Equal(t, alice.ID, c.OwnerID)
		}
	})

	t.Run("update", func(t *testing.T) {
		c := batch[1]
		c.Username = "alice2"
		c.UpdatedAt = time.Now().Add(time.Minute).UTC()
		require.NoError(t, s.Credentials().UpdateCredential(ctx, c))

		got, err := s.Credentials().GetCredentialByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, "alice2", got.Username)
	})

	t.Run("plaintext secret rejected by schema", func(t *testing.T) {
		c := newCredential(v.ID, "Plain")
		c.Secret = "hunter2"
		require.Error(t, s.Credentials().InsertCredentials(ctx, []domain.Credential{c}))
	})

	t.Run("unknown vault rejected", func(t *testing.T) {
		c := newCredential(idx.New().String(), "Orphan")
		require.Error(t, s.Credentials().InsertCredentials(ctx, []domain.Credential{c}))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Credentials().DeleteCredential(ctx, batch[0].ID))
		_, err := s.Credentials().GetCredentialByID(ctx, batch[0].ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Credentials().DeleteCredential(ctx, batch[0].ID), store.ErrNotFound)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedAccount(t, s, "alice@example.com")
	vaultID := idx.New().String()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Vaults().CreateVault(ctx, domain.Vault{
			ID: vaultID, AccountID: alice.ID, Name: "Work", CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		bad := newCredential(vaultID, "Broken")
		bad.Secret = "not-an-envelope"
		return tx.Credentials().InsertCredentials(ctx, []domain.Credential{bad})
	})
	require.Error(t, err)

	_, err = s.Vaults().GetVaultByID(ctx, vaultID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuditEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := seedAccount(t, s, "alice@example.com")
	now := time.Now().UTC()

	old := domain.AuditEvent{ID: idx.New().String(), AccountID: alice.ID, Action: domain.AuditLogin, CreatedAt: now.Add(-48 * time.Hour)}
	recent := domain.AuditEvent{ID: idx.New().String(), AccountID: alice.ID, Action: domain.AuditPasswordChanged, CreatedAt: now}
	require.NoError(t, s.AuditEvents().CreateAuditEvent(ctx, old))
	require.NoError(t, s.AuditEvents().CreateAuditEvent(ctx, recent))

	list, err := s.AuditEvents().ListAuditEventsByAccount(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, recent.ID, list[0].ID)

	n, err := s.AuditEvents().DeleteAuditEventsBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	list, err = s.AuditEvents().ListAuditEventsByAccount(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.AuditPasswordChanged, list[0].Action)
}
