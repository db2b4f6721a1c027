package store

import "sync"

// AttemptCounter tracks consecutive authentication failures per username.
// Increments are atomic per key: concurrent failed logins for the same
// account cannot lose updates.
type AttemptCounter struct {
	sharder *keySharder
	shards  []*counterShard
}

type counterShard struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewAttemptCounter(shardCount int) *AttemptCounter {
	c := &AttemptCounter{
		sharder: newKeySharder(shardCount),
		shards:  make([]*counterShard, shardCount),
	}
	for i := range c.shards {
		c.shards[i] = &counterShard{counts: make(map[string]int)}
	}
	return c
}

func (c *AttemptCounter) shardFor(username string) *counterShard {
	return c.shards[c.sharder.index(username)]
}

// Increment adds one failure for username and returns the new count.
func (c *AttemptCounter) Increment(username string) int {
	shard := c.shardFor(username)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.counts[username]++
	return shard.counts[username]
}

// Get returns the current failure count for username (zero if none).
func (c *AttemptCounter) Get(username string) int {
	shard := c.shardFor(username)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	return shard.counts[username]
}

// Reset clears the failure count for username.
func (c *AttemptCounter) Reset(username string) {
	shard := c.shardFor(username)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	delete(shard.counts, username)
}
