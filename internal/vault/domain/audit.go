package domain

import "time"

// Audit actions.
const (
	AuditLogin           = "login"
	AuditPasswordChanged = "password_changed"
)

type AuditEvent struct {
	ID        string
	AccountID string
	Action    string
	CreatedAt time.Time
}
