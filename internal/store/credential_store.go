package store

import (
	"sync"
	"time"

	"staff-auth-service/internal/models"
)

// CredentialStore holds staff credentials keyed by username across a fixed
// set of mutex-guarded shards. Records are stored by value and replaced
// wholesale on update.
type CredentialStore struct {
	sharder *keySharder
	shards  []*credentialShard
}

type credentialShard struct {
	mu          sync.RWMutex
	credentials map[string]models.StaffCredential
}

func NewCredentialStore(shardCount int) *CredentialStore {
	s := &CredentialStore{
		sharder: newKeySharder(shardCount),
		shards:  make([]*credentialShard, shardCount),
	}
	for i := range s.shards {
		s.shards[i] = &credentialShard{
			credentials: make(map[string]models.StaffCredential),
		}
	}
	return s
}

func (s *CredentialStore) shardFor(username string) *credentialShard {
	return s.shards[s.sharder.index(username)]
}

// Get returns the credential for username, if registered.
func (s *CredentialStore) Get(username string) (models.StaffCredential, bool) {
	shard := s.shardFor(username)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	credential, ok := shard.credentials[username]
	return credential, ok
}

// PutIfAbsent stores the credential unless the username is already taken.
// It reports whether the credential was stored.
func (s *CredentialStore) PutIfAbsent(credential models.StaffCredential) bool {
	shard := s.shardFor(credential.Username)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, exists := shard.credentials[credential.Username]; exists {
		return false
	}
	shard.credentials[credential.Username] = credential
	return true
}

// SetMFACode replaces the credential's outstanding MFA code under the shard
// lock, invalidating any prior unconsumed code. It reports whether a
// credential existed for username.
func (s *CredentialStore) SetMFACode(username, code string, generatedAt time.Time) bool {
	shard := s.shardFor(username)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	credential, ok := shard.credentials[username]
	if !ok {
		return false
	}
	shard.credentials[username] = credential.WithMFACode(code, generatedAt)
	return true
}

// Len returns the number of registered credentials.
func (s *CredentialStore) Len() int {
	total := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		total += len(shard.credentials)
		shard.mu.RUnlock()
	}
	return total
}
