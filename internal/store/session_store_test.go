package store

import (
	"fmt"
	"testing"
	"time"

	"staff-auth-service/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testSession(token string) models.StaffSession {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return models.StaffSession{
		Token:        token,
		Username:     "alice",
		Role:         models.RoleInstructor,
		CreatedAt:    created,
		LastActivity: created,
		ExpiresAt:    created.Add(30 * time.Minute),
	}
}

func TestSessionStorePutGetDelete(t *testing.T) {
	s := NewSessionStore(8)

	session := testSession("token-1")
	s.Put(session)

	got, ok := s.Get("token-1")
	require.True(t, ok)
	require.Equal(t, session, got)

	_, ok = s.Get("token-2")
	require.False(t, ok)

	removed, ok := s.Delete("token-1")
	require.True(t, ok)
	require.Equal(t, "alice", removed.Username)

	_, ok = s.Delete("token-1")
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
}

func TestSessionStoreReplaceOnRenewal(t *testing.T) {
	s := NewSessionStore(8)

	session := testSession("token-1")
	s.Put(session)

	renewed := session.Renewed(session.CreatedAt.Add(10*time.Minute), 30*time.Minute)
	s.Put(renewed)

	got, ok := s.Get("token-1")
	require.True(t, ok)
	require.Equal(t, renewed.ExpiresAt, got.ExpiresAt)
	require.Equal(t, 1, s.Len())
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	s := NewSessionStore(16)

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		token := fmt.Sprintf("token-%d", i)
		g.Go(func() error {
			s.Put(testSession(token))
			if _, ok := s.Get(token); !ok {
				return fmt.Errorf("session %s missing after put", token)
			}
			if _, ok := s.Delete(token); !ok {
				return fmt.Errorf("session %s missing on delete", token)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 0, s.Len())
}
