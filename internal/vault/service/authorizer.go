package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Authorizer gates every vault and credential operation on ownership. A
// resource that does not exist is denied exactly like one owned by someone
// else, so callers cannot probe for identifiers.
type Authorizer struct{}

// Authorize allows only when the identity names the recorded owner.
func (Authorizer) Authorize(identity domain.Identity, ownerID string) Decision {
	if identity.IsZero() || ownerID == "" {
		return Deny
	}
	if identity.AccountID != ownerID {
		return Deny
	}
	return Allow
}

// Require returns ErrAccessDenied unless identity owns the resource. Pass an
// empty ownerID for a resource that could not be found.
func (a Authorizer) Require(ctx context.Context, identity domain.Identity, ownerID, resource string) error {
	if a.Authorize(identity, ownerID) == Allow {
		return nil
	}
	slogx.FromContext(ctx).Warn("access denied",
		slog.String("account_id", identity.AccountID),
		slog.String("resource", resource),
	)
	return ErrAccessDenied
}
