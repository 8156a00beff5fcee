package models

import "time"

// Audit event names
const (
	AuditEventSignIn        = "sign_in"
	AuditEventSignInFailed  = "sign_in_failed"
	AuditEventSignOut       = "sign_out"
	AuditEventShellMutation = "shell_mutation"
)

// AuditLogEntry represents a single authentication or HTTP mutation event
type AuditLogEntry struct {
	ID        string
	Timestamp time.Time
	UserID    string
	Event     string
	Method    string
	Path      string
	Detail    string
	UserAgent string
	IPAddress string
}
