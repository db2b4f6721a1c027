package models

import (
	"fmt"
	"time"

	"staff-auth-service/internal/hashing"
)

// StaffCredential is the stored record for one registered staff member.
// Records are treated as immutable values: MFA code regeneration stores a
// replacement copy rather than mutating in place.
type StaffCredential struct {
	Username     string              `json:"username"`
	PasswordHash *hashing.HashResult `json:"password_hash"`
	Role         StaffRole           `json:"role"`
	Email        string              `json:"email"`
	CreatedAt    time.Time           `json:"created_at"`

	// CurrentMFACode is the single outstanding code for this user,
	// empty when none has been generated yet.
	CurrentMFACode string    `json:"current_mfa_code,omitempty"`
	MFAGeneratedAt time.Time `json:"mfa_generated_at,omitempty"`

	Active bool `json:"active"`
}

// WithMFACode returns a copy of the credential carrying a new MFA code,
// invalidating any previously issued code.
func (c StaffCredential) WithMFACode(code string, generatedAt time.Time) StaffCredential {
	c.CurrentMFACode = code
	c.MFAGeneratedAt = generatedAt
	return c
}

// MFACodeLiveAt reports whether an outstanding code exists and is still
// inside its validity window at the given instant. A code generated at T
// is expired at exactly T+window.
func (c StaffCredential) MFACodeLiveAt(now time.Time, window time.Duration) bool {
	if c.CurrentMFACode == "" {
		return false
	}
	return now.Before(c.MFAGeneratedAt.Add(window))
}

func (c StaffCredential) String() string {
	return fmt.Sprintf("StaffCredential{username=%s, role=%s, email=%s, active=%t}",
		c.Username, c.Role, c.Email, c.Active)
}
