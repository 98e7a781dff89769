package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store/sqlstore"
	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "passvault-test"

var (
	testJWTSecret = []byte(strings.Repeat("s", 32))
	testCipherKey = []byte(strings.Repeat("k", 32))
)

type testEnv struct {
	store       *sqlstore.Store
	cipher      *cryptox.Cipher
	hasher      *cryptox.Hasher
	sessions    *SessionService
	accounts    *AccountService
	vaults      *VaultService
	credentials *CredentialService

	// clock drives both token issuing and verification.
	clock time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	c, err := cryptox.NewCipher(testCipherKey)
	require.NoError(t, err)

	env := &testEnv{
		store:  st,
		cipher: c,
		hasher: cryptox.NewHasher(cryptox.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1}, "pepper"),
		clock:  time.Now().UTC(),
	}
	now := func() time.Time { return env.clock }

	signer, err := jwtx.NewSignerHS256(testJWTSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testJWTSecret, jwtx.VerifyOptions{Issuer: testIssuer, Now: now})
	require.NoError(t, err)

	env.sessions = &SessionService{
		Signer:   signer,
		Verifier: verifier,
		Issuer:   testIssuer,
		TTL:      jwtx.DefaultSessionTTL,
		Now:      now,
	}
	env.accounts = &AccountService{Store: st, Hasher: env.hasher, Cipher: c, Sessions: env.sessions}
	env.vaults = &VaultService{Store: st}
	env.credentials = &CredentialService{Store: st, Cipher: c}
	return env
}

// register creates an account and returns its identity and default vault.
func (e *testEnv) register(t *testing.T, email string) (domain.Identity, domain.Vault) {
	t.Helper()
	ctx := context.Background()

	account, err := e.accounts.Register(ctx, RegisterInput{
		DisplayName: "Test " + email,
		Email:       email,
		Password:    "correct horse battery",
	})
	require.NoError(t, err)

	id := domain.Identity{AccountID: account.ID, Email: account.Email}
	vaults, err := e.vaults.List(ctx, id)
	require.NoError(t, err)
	require.Len(t, vaults, 1)
	return id, vaults[0]
}
