package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStaffSessionExpiredAt(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	session := StaffSession{
		Token:     "token",
		Username:  "alice",
		Role:      RoleInstructor,
		CreatedAt: created,
		ExpiresAt: created.Add(30 * time.Minute),
	}

	require.False(t, session.ExpiredAt(created))
	// Live up to and including the exact expiry instant.
	require.False(t, session.ExpiredAt(session.ExpiresAt))
	require.True(t, session.ExpiredAt(session.ExpiresAt.Add(time.Nanosecond)))
}

func TestStaffSessionRenewedIsACopy(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	session := StaffSession{
		Token:        "token",
		Username:     "alice",
		Role:         RoleInstructor,
		CreatedAt:    created,
		LastActivity: created,
		ExpiresAt:    created.Add(30 * time.Minute),
	}

	now := created.Add(10 * time.Minute)
	renewed := session.Renewed(now, 30*time.Minute)

	require.Equal(t, now, renewed.LastActivity)
	require.Equal(t, now.Add(30*time.Minute), renewed.ExpiresAt)
	require.Equal(t, created, renewed.CreatedAt)
	require.Equal(t, session.Role, renewed.Role)

	// The original value is untouched.
	require.Equal(t, created, session.LastActivity)
	require.Equal(t, created.Add(30*time.Minute), session.ExpiresAt)
}

func TestStaffCredentialMFACodeLiveAt(t *testing.T) {
	generated := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	window := 5 * time.Minute

	credential := StaffCredential{Username: "alice"}
	require.False(t, credential.MFACodeLiveAt(generated, window), "no code issued yet")

	credential = credential.WithMFACode("123456", generated)
	require.True(t, credential.MFACodeLiveAt(generated, window))
	require.True(t, credential.MFACodeLiveAt(generated.Add(window-time.Nanosecond), window))
	// Expired at exactly generation time plus the window.
	require.False(t, credential.MFACodeLiveAt(generated.Add(window), window))
}

func TestStaffCredentialWithMFACodeReplaces(t *testing.T) {
	generated := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	credential := StaffCredential{Username: "alice"}.WithMFACode("111111", generated)
	updated := credential.WithMFACode("222222", generated.Add(time.Minute))

	require.Equal(t, "222222", updated.CurrentMFACode)
	require.Equal(t, generated.Add(time.Minute), updated.MFAGeneratedAt)

	// The original value keeps the old code.
	require.Equal(t, "111111", credential.CurrentMFACode)
}
