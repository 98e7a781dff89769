package domain

import "time"

// DefaultVaultName is the vault every account gets at registration.
const DefaultVaultName = "Default Vault"

type Vault struct {
	ID        string
	AccountID string // owner, immutable
	Name      string
	CreatedAt time.Time
}
