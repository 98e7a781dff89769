package service

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength    = 8
	MaxPasswordLength    = 1024
	MaxDisplayNameLength = 64

	MaxServiceNameLength = 128
	MaxServiceURLLength  = 2048
	MaxUsernameLength    = 256
	MaxSecretLength      = 4096
)

// normalizeEmail lower-cases and trims an address and rejects anything that
// is not a bare addr-spec.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", invalid("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "is not a valid address")
	}
	return email, nil
}

func validatePassword(field, pw string) error {
	n := utf8.RuneCountInString(pw)
	switch {
	case n < MinPasswordLength:
		return invalid(field, "must be at least 8 characters")
	case len(pw) > MaxPasswordLength:
		return invalid(field, "is too long")
	}
	return nil
}

func validateDisplayName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid("display_name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return "", invalid("display_name", "must be at most 64 characters")
	}
	return name, nil
}

// CredentialInput is the caller supplied content of a credential entry.
// Secret is plaintext here and nowhere past the cipher.
type CredentialInput struct {
	ServiceName string
	ServiceURL  string
	Username    string
	Secret      string
}

func (in CredentialInput) normalize() (CredentialInput, error) {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	in.ServiceURL = strings.TrimSpace(in.ServiceURL)
	in.Username = strings.TrimSpace(in.Username)

	if in.ServiceName == "" {
		return in, invalid("service_name", "is required")
	}
	if utf8.RuneCountInString(in.ServiceName) > MaxServiceNameLength {
		return in, invalid("service_name", "is too long")
	}
	if len(in.ServiceURL) > MaxServiceURLLength {
		return in, invalid("service_url", "is too long")
	}
	if in.ServiceURL != "" {
		u, err := url.Parse(in.ServiceURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return in, invalid("service_url", "must be an absolute URL")
		}
	}
	if utf8.RuneCountInString(in.Username) > MaxUsernameLength {
		return in, invalid("username", "is too long")
	}
	if len(in.Secret) > MaxSecretLength {
		return in, invalid("secret", "is too long")
	}
	return in, nil
}
