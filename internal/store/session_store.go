package store

import (
	"sync"

	"staff-auth-service/internal/models"
)

// SessionStore holds active sessions keyed by token across mutex-guarded
// shards. Sessions are values: renewal writes a replacement copy, never
// mutates a stored session in place.
type SessionStore struct {
	sharder *keySharder
	shards  []*sessionShard
}

type sessionShard struct {
	mu       sync.RWMutex
	sessions map[string]models.StaffSession
}

func NewSessionStore(shardCount int) *SessionStore {
	s := &SessionStore{
		sharder: newKeySharder(shardCount),
		shards:  make([]*sessionShard, shardCount),
	}
	for i := range s.shards {
		s.shards[i] = &sessionShard{
			sessions: make(map[string]models.StaffSession),
		}
	}
	return s
}

func (s *SessionStore) shardFor(token string) *sessionShard {
	return s.shards[s.sharder.index(token)]
}

// Get returns the session for token, if present.
func (s *SessionStore) Get(token string) (models.StaffSession, bool) {
	shard := s.shardFor(token)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	session, ok := shard.sessions[token]
	return session, ok
}

// Put stores or replaces the session for its token.
func (s *SessionStore) Put(session models.StaffSession) {
	shard := s.shardFor(session.Token)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.sessions[session.Token] = session
}

// Delete removes the session for token and reports whether one was present.
func (s *SessionStore) Delete(token string) (models.StaffSession, bool) {
	shard := s.shardFor(token)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	session, ok := shard.sessions[token]
	if ok {
		delete(shard.sessions, token)
	}
	return session, ok
}

// Len returns the number of active sessions.
func (s *SessionStore) Len() int {
	total := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		total += len(shard.sessions)
		shard.mu.RUnlock()
	}
	return total
}
