package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// SessionService issues and verifies bearer session tokens. Tokens cannot be
// revoked; they stop working when they expire.
type SessionService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.TTL
}

// Issue signs a token for identity expiring TTL from now.
func (s *SessionService) Issue(ctx context.Context, identity domain.Identity) (domain.Session, error) {
	if identity.IsZero() {
		return domain.Session{}, invalid("identity", "account id is required")
	}

	now := s.now()
	claims := jwtx.NewSessionClaims(identity.AccountID, identity.Email, s.Issuer, s.ttl(), now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign session: %w", err)
	}

	slogx.FromContext(ctx).Debug("session issued",
		slog.String("account_id", identity.AccountID),
		slog.String("jti", claims.ID),
	)

	return domain.Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Verify returns the identity carried by token. Failures wrap both
// ErrInvalidToken and the jwtx error naming the failed check.
func (s *SessionService) Verify(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		slogx.FromContext(ctx).Info("session token rejected", slog.String("kind", jwtx.Kind(err)))
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return IdentityFromClaims(claims), nil
}

// IdentityFromClaims maps verified token claims to an identity.
func IdentityFromClaims(c jwtx.Claims) domain.Identity {
	return domain.Identity{AccountID: c.Subject, Email: c.Email}
}
