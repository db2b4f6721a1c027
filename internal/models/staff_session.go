package models

import (
	"fmt"
	"time"
)

// StaffSession is one authenticated session. The role is copied from the
// credential at creation and stays fixed for the session's life. Sessions
// are immutable values: renewal stores a copy with fresh activity and
// expiry timestamps instead of mutating a shared object.
type StaffSession struct {
	Token        string    `json:"token"`
	Username     string    `json:"username"`
	Role         StaffRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ExpiredAt reports whether the session has expired at the given instant.
// A session is live up to and including its exact expiry time.
func (s StaffSession) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Renewed returns a copy with last activity set to now and the expiry
// pushed out by the session timeout.
func (s StaffSession) Renewed(now time.Time, timeout time.Duration) StaffSession {
	s.LastActivity = now
	s.ExpiresAt = now.Add(timeout)
	return s
}

func (s StaffSession) String() string {
	return fmt.Sprintf("StaffSession{username=%s, role=%s, created=%s, expires=%s}",
		s.Username, s.Role, s.CreatedAt.Format(time.RFC3339), s.ExpiresAt.Format(time.RFC3339))
}
