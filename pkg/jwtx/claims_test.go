package jwtx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "passvault",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("passvault"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("other-service")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewSessionClaims("acct-1", "alice@example.com", "passvault", 10*time.Minute, now)

	require.Equal(t, "acct-1", c.Subject)
	require.Equal(t, "alice@example.com", c.Email)
	require.Equal(t, "passvault", c.Issuer)
	require.True(t, now.Equal(c.IssuedAt.Time))
	require.True(t, now.Equal(c.NotBefore.Time))
	require.True(t, now.Add(10*time.Minute).Equal(c.ExpiresAt.Time))
	require.NotEmpty(t, c.ID)

	other := jwtx.NewSessionClaims("acct-1", "alice@example.com", "passvault", 10*time.Minute, now)
	require.NotEqual(t, c.ID, other.ID, "jti must be unique per token")
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{jwtx.ErrExpired, "expired"},
		{jwtx.ErrInvalidSig, "bad_signature"},
		{jwtx.ErrMalformed, "malformed"},
		{jwtx.ErrNotYetValid, "not_yet_valid"},
		{jwtx.ErrIssuer, "issuer_mismatch"},
		{jwtx.ErrInvalidClaim, "invalid_claims"},
		{errors.New("anything else"), "invalid_claims"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, jwtx.Kind(tt.err))
		})
	}
}
