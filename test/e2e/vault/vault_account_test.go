package vault_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
	"github.com/stretchr/testify/require"
)

// TestAccountFlow covers register, login, profile and password change.
func TestAccountFlow(t *testing.T) {
	client := setupVaultContainer(t, nil)
	ctx := t.Context()

	session := registerAndLogin(t, client, "Alice@Example.com")
	require.Equal(t, "alice@example.com", session.Account().Email)
	require.False(t, session.Expired())

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, session.Account().ID, me.ID)

	_, err = client.Register(ctx, vaultsdk.RegisterRequest{DisplayName: "Dup", Email: "alice@example.com", Password: testPassword})
	require.True(t, vaultsdk.IsConflict(err), "duplicate email should conflict, got %v", err)

	require.NoError(t, session.VerifyPassword(ctx, testPassword))
	require.True(t, vaultsdk.IsInvalidCredentials(session.VerifyPassword(ctx, "nope nope nope")))

	require.NoError(t, session.ChangePassword(ctx, testPassword, "an even better passphrase"))

	_, err = client.Login(ctx, "alice@example.com", testPassword)
	require.True(t, vaultsdk.IsInvalidCredentials(err))

	_, err = client.Login(ctx, "alice@example.com", "an even better passphrase")
	require.NoError(t, err)
}

// TestLoginFailuresLookAlike checks unknown emails and wrong passwords get
// the same response.
func TestLoginFailuresLookAlike(t *testing.T) {
	client := setupVaultContainer(t, nil)
	registerAndLogin(t, client, "bob@example.com")

	_, wrongPassword := client.Login(t.Context(), "bob@example.com", "definitely wrong")
	_, unknownEmail := client.Login(t.Context(), "nobody@example.com", testPassword)

	require.True(t, vaultsdk.IsInvalidCredentials(wrongPassword))
	require.True(t, vaultsdk.IsInvalidCredentials(unknownEmail))
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

// TestSessionExpiry runs with a short TTL and checks the token stops working.
func TestSessionExpiry(t *testing.T) {
	client := setupVaultContainer(t, map[string]string{"TOKEN_TTL": "2s"})

	session := registerAndLogin(t, client, "carol@example.com")
	_, err := session.Me(t.Context())
	require.NoError(t, err)

	time.Sleep(3 * time.Second)

	_, err = session.Me(t.Context())
	require.True(t, vaultsdk.IsInvalidToken(err), "expired token should be rejected, got %v", err)
}
