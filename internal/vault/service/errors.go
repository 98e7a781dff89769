package service

import "errors"

var (
	ErrValidation         = errors.New("invalid_request")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrAccessDenied       = errors.New("access_denied")
	ErrDecryption         = errors.New("secret could not be decrypted")
)

// ValidationError describes one rejected input field. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
