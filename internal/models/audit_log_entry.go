package models

import (
	"fmt"
	"time"
)

// AuditAction tags the kind of security event an audit entry records.
type AuditAction string

const (
	ActionAuthenticationAttempt AuditAction = "AUTHENTICATION_ATTEMPT"
	ActionAuthenticationSuccess AuditAction = "AUTHENTICATION_SUCCESS"
	ActionAuthenticationFailed  AuditAction = "AUTHENTICATION_FAILED"
	ActionAuthenticationBlocked AuditAction = "AUTHENTICATION_BLOCKED"
	ActionMFAValidationFailed   AuditAction = "MFA_VALIDATION_FAILED"
	ActionMFACodeGenerated      AuditAction = "MFA_CODE_GENERATED"
	ActionSessionExpired        AuditAction = "SESSION_EXPIRED"
	ActionAccessCheck           AuditAction = "ACCESS_CHECK"
	ActionLogout                AuditAction = "LOGOUT"
	ActionStaffRegistered       AuditAction = "STAFF_REGISTERED"
)

// AuditLogEntry is one immutable record of a security-relevant event.
// Entries are append-only: they are never mutated or deleted.
type AuditLogEntry struct {
	EntryID    string      `json:"entry_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Username   string      `json:"username"`
	Action     AuditAction `json:"action"`
	Details    string      `json:"details"`
	ClientInfo string      `json:"client_info"`
}

func (e AuditLogEntry) String() string {
	return fmt.Sprintf("[%s] %s - %s: %s (%s)",
		e.Timestamp.Format(time.RFC3339), e.Username, e.Action, e.Details, e.ClientInfo)
}
