package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/aussiebroadwan/passvault/pkg/idx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// RegisterInput is the sign-up form.
type RegisterInput struct {
	DisplayName string
	Email       string
	Password    string
}

type AccountService struct {
	Store    store.Store
	Hasher   *cryptox.Hasher
	Cipher   *cryptox.Cipher
	Sessions *SessionService

	dummyOnce sync.Once
	dummyHash string
}

// Register creates an account together with its default vault and the
// preset entries. Everything is written in one transaction.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	name, err := validateDisplayName(in.DisplayName)
	if err != nil {
		return domain.Account{}, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return domain.Account{}, err
	}
	if err := validatePassword("password", in.Password); err != nil {
		return domain.Account{}, err
	}

	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, email); err == nil {
		return domain.Account{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, fmt.Errorf("lookup account: %w", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	vault := domain.Vault{
		ID:        idx.New().String(),
		AccountID: account.ID,
		Name:      domain.DefaultVaultName,
		CreatedAt: now,
	}

	presets := domain.DefaultPresets()
	batch := make([]domain.Credential, 0, len(presets))
	for _, p := range presets {
		// Each placeholder gets its own envelope, so no two share an IV.
		envelope, err := s.Cipher.EncryptString("")
		if err != nil {
			return domain.Account{}, fmt.Errorf("encrypt preset: %w", err)
		}
		batch = append(batch, domain.Credential{
			ID:          idx.New().String(),
			VaultID:     vault.ID,
			OwnerID:     account.ID,
			ServiceName: p.ServiceName,
			ServiceURL:  p.ServiceURL,
			Username:    email,
			Secret:      envelope,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}
		if err := tx.Vaults().CreateVault(ctx, vault); err != nil {
			return err
		}
		return tx.Credentials().InsertCredentials(ctx, batch)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrEmailTaken
		}
		log.Error("failed to register account", slog.Any("error", err))
		return domain.Account{}, fmt.Errorf("register account: %w", err)
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("vault_id", vault.ID),
	)
	return account, nil
}

// Login checks email and password and issues a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	email, err := normalizeEmail(email)
	if err != nil {
		s.burnVerify(password)
		return domain.Session{}, ErrInvalidCredentials
	}

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.burnVerify(password)
			log.Info("login failed", slog.String("reason", "unknown_email"))
			return domain.Session{}, ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("lookup account: %w", err)
	}

	ok, err := s.Hasher.Verify(password, account.PasswordHash)
	if err != nil {
		log.Error("stored password hash is invalid",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return domain.Session{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		log.Info("login failed",
			slog.String("account_id", account.ID),
			slog.String("reason", "bad_password"),
		)
		return domain.Session{}, ErrInvalidCredentials
	}

	if s.Hasher.NeedsRehash(account.PasswordHash) {
		s.upgradeHash(ctx, account.ID, password)
	}

	s.audit(ctx, account.ID, domain.AuditLogin)

	session, err := s.Sessions.Issue(ctx, domain.Identity{AccountID: account.ID, Email: account.Email})
	if err != nil {
		return domain.Session{}, err
	}
	session.Account = account

	log.Info("login succeeded", slog.String("account_id", account.ID))
	return session, nil
}

// Profile returns the caller's own account.
func (s *AccountService) Profile(ctx context.Context, identity domain.Identity) (domain.Account, error) {
	if identity.IsZero() {
		return domain.Account{}, ErrInvalidToken
	}
	account, err := s.Store.Accounts().GetAccountByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// A valid token for a vanished account.
			return domain.Account{}, ErrInvalidToken
		}
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// VerifyPassword re-checks the caller's password before sensitive views are
// unlocked.
func (s *AccountService) VerifyPassword(ctx context.Context, identity domain.Identity, password string) error {
	account, err := s.Profile(ctx, identity)
	if err != nil {
		return err
	}

	ok, err := s.Hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		slogx.FromContext(ctx).Info("password re-check failed", slog.String("account_id", account.ID))
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword replaces the caller's password after checking the current
// one. Sessions already issued stay valid until they expire.
func (s *AccountService) ChangePassword(ctx context.Context, identity domain.Identity, current, next string) error {
	if err := s.VerifyPassword(ctx, identity, current); err != nil {
		return err
	}
	if err := validatePassword("new_password", next); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().UpdateAccountPassword(ctx, identity.AccountID, hash, now); err != nil {
			return err
		}
		return tx.AuditEvents().CreateAuditEvent(ctx, domain.AuditEvent{
			ID:        idx.New().String(),
			AccountID: identity.AccountID,
			Action:    domain.AuditPasswordChanged,
			CreatedAt: now,
		})
	})
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("account_id", identity.AccountID))
	return nil
}

// burnVerify runs a verify against a throwaway hash so a miss on the email
// lookup costs about as much as a wrong password.
func (s *AccountService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash(idx.New().String())
	})
	if s.dummyHash != "" {
		_, _ = s.Hasher.Verify(password, s.dummyHash)
	}
}

func (s *AccountService) upgradeHash(ctx context.Context, accountID, password string) {
	log := slogx.FromContext(ctx)
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		log.Warn("password rehash failed", slog.String("account_id", accountID), slog.Any("error", err))
		return
	}
	if err := s.Store.Accounts().UpdateAccountPassword(ctx, accountID, hash, time.Now().UTC()); err != nil {
		log.Warn("password rehash not stored", slog.String("account_id", accountID), slog.Any("error", err))
		return
	}
	log.Info("password hash upgraded", slog.String("account_id", accountID))
}

func (s *AccountService) audit(ctx context.Context, accountID, action string) {
	err := s.Store.AuditEvents().CreateAuditEvent(ctx, domain.AuditEvent{
		ID:        idx.New().String(),
		AccountID: accountID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to record audit event",
			slog.String("account_id", accountID),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}
