package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it.
// Secrets go in and come out exactly as cipher envelopes; no driver ever
// encrypts or decrypts.
type Store interface {
	Accounts() Accounts
	Vaults() Vaults
	Credentials() Credentials
	AuditEvents() AuditEvents

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Repositories
	// obtained from tx must not be used after fn returns.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx exposes the repositories bound to a single transaction.
type Tx interface {
	Accounts() Accounts
	Vaults() Vaults
	Credentials() Credentials
	AuditEvents() AuditEvents
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail looks up an account by its normalised email.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account. ErrAlreadyExists on duplicate email.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateAccountPassword sets password_hash and bumps updated_at.
	UpdateAccountPassword(ctx context.Context, accountID, passwordHash string, at time.Time) error
}

type Vaults interface {
	CreateVault(ctx context.Context, v domain.Vault) error

	// GetVaultByID returns a vault regardless of owner.
	GetVaultByID(ctx context.Context, id string) (domain.Vault, error)

	// FindVaultByIDAndOwner returns ErrNotFound unless the vault exists and
	// belongs to accountID.
	FindVaultByIDAndOwner(ctx context.Context, id, accountID string) (domain.Vault, error)

	// ListVaultsByAccount returns the account's vaults oldest first.
	ListVaultsByAccount(ctx context.Context, accountID string) ([]domain.Vault, error)
}

type Credentials interface {
	// InsertCredentials inserts a batch of entries.
	InsertCredentials(ctx context.Context, batch []domain.Credential) error

	// GetCredentialByID returns the entry with OwnerID resolved through its vault.
	GetCredentialByID(ctx context.Context, id string) (domain.Credential, error)

	// UpdateCredential replaces the mutable fields of an entry.
	UpdateCredential(ctx context.Context, c domain.Credential) error

	// DeleteCredential removes an entry permanently.
	DeleteCredential(ctx context.Context, id string) error

	// ListCredentialsByVault returns a vault's entries oldest first.
	ListCredentialsByVault(ctx context.Context, vaultID string) ([]domain.Credential, error)
}

type AuditEvents interface {
	CreateAuditEvent(ctx context.Context, e domain.AuditEvent) error

	// ListAuditEventsByAccount returns the newest events first.
	ListAuditEventsByAccount(ctx context.Context, accountID string, limit int) ([]domain.AuditEvent, error)

	// DeleteAuditEventsBefore prunes events created before cutoff and
	// reports how many were removed.
	DeleteAuditEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
