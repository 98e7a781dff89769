package vaultsdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated view of the API. It is safe for concurrent
// use; its token never changes.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
	account   AccountResponse
}

func newSession(c *Client, login *LoginResponse) *Session {
	return &Session{
		client:    c,
		token:     login.AccessToken,
		expiresAt: time.Now().Add(time.Duration(login.ExpiresIn) * time.Second),
		account:   login.Account,
	}
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *Client) NewSessionFromToken(token string, expiresAt time.Time) *Session {
	return &Session{client: c, token: token, expiresAt: expiresAt}
}

// AccessToken returns the bearer token.
func (s *Session) AccessToken() string { return s.token }

// Account returns the account the session was issued to, as of login.
func (s *Session) Account() AccountResponse { return s.account }

// Expired reports whether the token has passed its expiry.
func (s *Session) Expired() bool { return !time.Now().Before(s.expiresAt) }

// ============================================================================
// Account
// ============================================================================

// Me returns the current profile.
func (s *Session) Me(ctx context.Context) (*AccountResponse, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/v1/me", s.token, nil)
	if err != nil {
		return nil, err
	}

	var account AccountResponse
	if err := decodeJSON(resp, &account, http.StatusOK); err != nil {
		return nil, err
	}
	return &account, nil
}

// VerifyPassword re-checks the account password.
func (s *Session) VerifyPassword(ctx context.Context, password string) error {
	resp, err := s.client.do(ctx, http.MethodPost, "/v1/verify-password", s.token, VerifyPasswordRequest{Password: password})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ChangePassword replaces the account password.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	resp, err := s.client.do(ctx, http.MethodPut, "/v1/me/password", s.token, ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Vaults
// ============================================================================

func (s *Session) ListVaults(ctx context.Context) ([]VaultResponse, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/v1/vaults", s.token, nil)
	if err != nil {
		return nil, err
	}

	var list VaultListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Vaults, nil
}

func (s *Session) GetVault(ctx context.Context, vaultID string) (*VaultResponse, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/v1/vaults/"+url.PathEscape(vaultID), s.token, nil)
	if err != nil {
		return nil, err
	}

	var vault VaultResponse
	if err := decodeJSON(resp, &vault, http.StatusOK); err != nil {
		return nil, err
	}
	return &vault, nil
}

// ============================================================================
// Credentials
// ============================================================================

// ListCredentials returns every entry in a vault with secrets revealed.
// Entries whose secret could not be decrypted have DecryptError set.
func (s *Session) ListCredentials(ctx context.Context, vaultID string) ([]CredentialResponse, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/v1/vaults/"+url.PathEscape(vaultID)+"/credentials", s.token, nil)
	if err != nil {
		return nil, err
	}

	var list CredentialListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Credentials, nil
}

// CreateCredential adds an entry. With reveal the response echoes the secret.
func (s *Session) CreateCredential(ctx context.Context, vaultID string, req CredentialRequest, reveal bool) (*CredentialResponse, error) {
	path := "/v1/vaults/" + url.PathEscape(vaultID) + "/credentials"
	if reveal {
		path += "?reveal=true"
	}

	resp, err := s.client.do(ctx, http.MethodPost, path, s.token, req)
	if err != nil {
		return nil, err
	}

	var entry CredentialResponse
	if err := decodeJSON(resp, &entry, http.StatusCreated); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Session) GetCredential(ctx context.Context, credentialID string) (*CredentialResponse, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/v1/credentials/"+url.PathEscape(credentialID), s.token, nil)
	if err != nil {
		return nil, err
	}

	var entry CredentialResponse
	if err := decodeJSON(resp, &entry, http.StatusOK); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Session) UpdateCredential(ctx context.Context, credentialID string, req CredentialRequest) (*CredentialResponse, error) {
	resp, err := s.client.do(ctx, http.MethodPut, "/v1/credentials/"+url.PathEscape(credentialID), s.token, req)
	if err != nil {
		return nil, err
	}

	var entry CredentialResponse
	if err := decodeJSON(resp, &entry, http.StatusOK); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Session) DeleteCredential(ctx context.Context, credentialID string) error {
	resp, err := s.client.do(ctx, http.MethodDelete, "/v1/credentials/"+url.PathEscape(credentialID), s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
