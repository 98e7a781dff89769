package domain

import "time"

// Credential is a stored credential entry. Secret is always a cipher
// envelope, never plaintext.
type Credential struct {
	ID          string
	VaultID     string
	OwnerID     string // account owning VaultID, filled by joined reads
	ServiceName string
	ServiceURL  string
	Username    string
	Secret      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CredentialView is a credential as returned to its owner. Secret holds the
// decrypted value only when Revealed is set.
type CredentialView struct {
	ID            string
	VaultID       string
	ServiceName   string
	ServiceURL    string
	Username      string
	Secret        string
	Revealed      bool
	DecryptFailed bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// View returns c without its secret.
func (c Credential) View() CredentialView {
	return CredentialView{
		ID:          c.ID,
		VaultID:     c.VaultID,
		ServiceName: c.ServiceName,
		ServiceURL:  c.ServiceURL,
		Username:    c.Username,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Preset is a placeholder credential seeded into every new default vault.
type Preset struct {
	ServiceName string
	ServiceURL  string
}

// DefaultPresets returns the services seeded at registration with the
// account email as username and an empty secret.
func DefaultPresets() []Preset {
	return []Preset{
		{ServiceName: "YouTube", ServiceURL: "https://youtube.com"},
		{ServiceName: "Instagram", ServiceURL: "https://instagram.com"},
		{ServiceName: "Outlook", ServiceURL: "https://outlook.com"},
		{ServiceName: "Google", ServiceURL: "https://accounts.google.com"},
		{ServiceName: "Facebook", ServiceURL: "https://facebook.com"},
	}
}
