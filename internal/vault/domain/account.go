package domain

import "time"

type Account struct {
	ID           string
	Email        string // lower-cased, unique
	DisplayName  string
	PasswordHash string // argon2id PHC, or bcrypt for imported accounts
	ProfilePath  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is who a verified session token says the caller is.
type Identity struct {
	AccountID string
	Email     string
}

// IsZero reports whether the identity names no account.
func (i Identity) IsZero() bool { return i.AccountID == "" }

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string // always "Bearer"
	ExpiresAt   time.Time
	Account     Account
}
