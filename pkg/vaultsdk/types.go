package vaultsdk

import "time"

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Account Types
// ============================================================================

// RegisterRequest is the body of POST /v1/register.
type RegisterRequest struct {
	// DisplayName is shown in the UI (max 64 chars)
	DisplayName string `json:"display_name" example:"Alice"`

	// Email is the login name. It is stored lower-cased.
	Email string `json:"email" example:"alice@example.com"`

	// Password must be at least 8 characters
	Password string `json:"password" example:"correct horse battery"`
}

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery"`
}

// AccountResponse describes an account. It never includes the password hash.
type AccountResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	ProfilePath *string   `json:"profile_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse is returned by POST /v1/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	Account AccountResponse `json:"account"`
}

// VerifyPasswordRequest is the body of POST /v1/verify-password.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of PUT /v1/me/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ============================================================================
// Vault Types
// ============================================================================

type VaultResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type VaultListResponse struct {
	Vaults []VaultResponse `json:"vaults"`
}

// ============================================================================
// Credential Types
// ============================================================================

// CredentialRequest is the body for creating or replacing an entry.
type CredentialRequest struct {
	ServiceName string `json:"service_name" example:"GitHub"`
	ServiceURL  string `json:"service_url,omitempty" example:"https://github.com"`
	Username    string `json:"username,omitempty" example:"alice"`
	Secret      string `json:"secret"`
}

// CredentialResponse is one credential entry. Secret is only present when
// the server revealed it; DecryptError is set when the stored secret could
// not be decrypted.
type CredentialResponse struct {
	ID           string    `json:"id"`
	VaultID      string    `json:"vault_id"`
	ServiceName  string    `json:"service_name"`
	ServiceURL   string    `json:"service_url"`
	Username     string    `json:"username"`
	Secret       *string   `json:"secret,omitempty"`
	DecryptError bool      `json:"decrypt_error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CredentialListResponse struct {
	Credentials []CredentialResponse `json:"credentials"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
