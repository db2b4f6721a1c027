// Package store provides the in-memory, concurrency-safe containers backing
// the staff auth service: sharded credential and session maps, per-username
// failure counters, and an append-only audit log. Shards give per-key
// atomicity without a coarse lock serializing unrelated keys.
package store

import (
	"hash"
	"sync"

	"github.com/spaolacci/murmur3"
)

// keySharder maps string keys onto a fixed set of shards using murmur3.
// A pool of hashers avoids per-call allocation on hot paths.
type keySharder struct {
	shards     int
	hasherPool sync.Pool
}

func newKeySharder(shards int) *keySharder {
	if shards <= 0 {
		shards = 1
	}
	return &keySharder{
		shards: shards,
		hasherPool: sync.Pool{
			New: func() interface{} {
				return murmur3.New64()
			},
		},
	}
}

// index returns the consistent shard for key (0 to shards-1).
func (k *keySharder) index(key string) int {
	hasher := k.hasherPool.Get().(hash.Hash64)
	defer k.hasherPool.Put(hasher)

	hasher.Reset()
	hasher.Write([]byte(key))
	return int(hasher.Sum64() % uint64(k.shards))
}
