package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_RegisterSeedsDefaultVault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, vault := env.register(t, "Alice@Example.com")
	require.Equal(t, "alice@example.com", id.Email)
	require.Equal(t, domain.DefaultVaultName, vault.Name)
	require.Equal(t, id.AccountID, vault.AccountID)

	stored, err := env.store.Credentials().ListCredentialsByVault(ctx, vault.ID)
	require.NoError(t, err)
	require.Len(t, stored, len(domain.DefaultPresets()))

	seen := map[string]bool{}
	for i, c := range stored {
		require.NotEmpty(t, c.Secret)
		require.Contains(t, c.Secret, ":")
		require.False(t, seen[c.Secret], "envelopes must differ")
		seen[c.Secret] = true

		plain, err := env.cipher.DecryptString(c.Secret)
		require.NoError(t, err)
		require.Empty(t, plain)

		require.Equal(t, "alice@example.com", c.Username)
		require.Equal(t, domain.DefaultPresets()[i].ServiceName, c.ServiceName)
	}
}

func TestAccountService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
		field string
	}{
		{"missing name", RegisterInput{Email: "a@example.com", Password: "longenough"}, "display_name"},
		{"long name", RegisterInput{DisplayName: strings.Repeat("n", 65), Email: "a@example.com", Password: "longenough"}, "display_name"},
		{"bad email", RegisterInput{DisplayName: "A", Email: "not-an-email", Password: "longenough"}, "email"},
		{"email with display part", RegisterInput{DisplayName: "A", Email: "Alice <a@example.com>", Password: "longenough"}, "email"},
		{"short password", RegisterInput{DisplayName: "A", Email: "a@example.com", Password: "short"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.accounts.Register(ctx, tt.input)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com")

	_, err := env.accounts.Register(context.Background(), RegisterInput{
		DisplayName: "Alice Again",
		Email:       "ALICE@example.com",
		Password:    "another password",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAccountService_LoginFailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice@example.com")

	_, wrongPassword := env.accounts.Login(ctx, "alice@example.com", "wrong password")
	_, unknownEmail := env.accounts.Login(ctx, "nobody@example.com", "correct horse battery")
	_, badEmail := env.accounts.Login(ctx, "nope", "correct horse battery")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.ErrorIs(t, badEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	require.Equal(t, wrongPassword.Error(), badEmail.Error())
}

func TestAccountService_LoginIssuesSessionAndAudits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id, _ := env.register(t, "alice@example.com")

	session, err := env.accounts.Login(ctx, "  Alice@example.com ", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, id.AccountID, session.Account.ID)
	require.NotEmpty(t, session.AccessToken)

	got, err := env.sessions.Verify(ctx, session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, id, got)

	events, err := env.store.AuditEvents().ListAuditEventsByAccount(ctx, id.AccountID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, domain.AuditLogin, events[0].Action)
}

func TestAccountService_LoginUpgradesLegacyHash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id, _ := env.register(t, "legacy@example.com")

	legacy, err := bcrypt.GenerateFromPassword([]byte("old bcrypt pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.store.Accounts().UpdateAccountPassword(ctx, id.AccountID, string(legacy), env.clock))

	_, err = env.accounts.Login(ctx, "legacy@example.com", "old bcrypt pass")
	require.NoError(t, err)

	account, err := env.store.Accounts().GetAccountByID(ctx, id.AccountID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(account.PasswordHash, "$argon2id$"))

	_, err = env.accounts.Login(ctx, "legacy@example.com", "old bcrypt pass")
	require.NoError(t, err)
}

func TestAccountService_LoginCorruptHash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id, _ := env.register(t, "broken@example.com")

	require.NoError(t, env.store.Accounts().UpdateAccountPassword(ctx, id.AccountID, "$argon2id$garbage", env.clock))

	_, err := env.accounts.Login(ctx, "broken@example.com", "correct horse battery")
	require.ErrorIs(t, err, cryptox.ErrInvalidHash)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_Profile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id, _ := env.register(t, "alice@example.com")

	account, err := env.accounts.Profile(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", account.Email)

	_, err = env.accounts.Profile(ctx, domain.Identity{AccountID: "01HNOPE"})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccountService_VerifyPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id, _ := env.register(t, "alice@example.com")

	require.NoError(t, env.accounts.VerifyPassword(ctx, id, "correct horse battery"))
	require.ErrorIs(t, env.accounts.VerifyPassword(ctx, id, "nope"), ErrInvalidCredentials)
}

func TestAccountService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id, _ := env.register(t, "alice@example.com")

	err := env.accounts.ChangePassword(ctx, id, "wrong current", "brand new password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	err = env.accounts.ChangePassword(ctx, id, "correct horse battery", "short")
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, env.accounts.ChangePassword(ctx, id, "correct horse battery", "brand new password"))

	_, err = env.accounts.Login(ctx, "alice@example.com", "correct horse battery")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = env.accounts.Login(ctx, "alice@example.com", "brand new password")
	require.NoError(t, err)

	events, err := env.store.AuditEvents().ListAuditEventsByAccount(ctx, id.AccountID, 10)
	require.NoError(t, err)
	actions := make([]string, 0, len(events))
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	require.Contains(t, actions, domain.AuditPasswordChanged)
	require.Contains(t, actions, domain.AuditLogin)
}
