package store

import (
	"iter"
	"sort"
	"sync"
	"time"

	"staff-auth-service/internal/models"
)

// AuditFilter narrows an audit log query. Zero values mean "no constraint".
// Time bounds are strict: an entry matches when its timestamp is strictly
// after From and strictly before To.
type AuditFilter struct {
	Username string
	From     time.Time
	To       time.Time
}

func (f AuditFilter) matches(entry models.AuditLogEntry) bool {
	if f.Username != "" && entry.Username != f.Username {
		return false
	}
	if !f.From.IsZero() && !entry.Timestamp.After(f.From) {
		return false
	}
	if !f.To.IsZero() && !entry.Timestamp.Before(f.To) {
		return false
	}
	return true
}

// AuditLog is an append-only log of security events. Entries are never
// mutated or deleted; appends are safe under concurrency and queries
// operate on a snapshot.
type AuditLog struct {
	mu      sync.RWMutex
	entries []models.AuditLogEntry
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append records one entry.
func (l *AuditLog) Append(entry models.AuditLogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
}

// Len returns the number of recorded entries.
func (l *AuditLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// Query returns a lazy, restartable sequence of matching entries ordered
// newest first. The log is snapshotted each time the sequence is ranged
// over, so held iterators never block appenders.
func (l *AuditLog) Query(filter AuditFilter) iter.Seq[models.AuditLogEntry] {
	return func(yield func(models.AuditLogEntry) bool) {
		matched := l.snapshot(filter)
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].Timestamp.After(matched[j].Timestamp)
		})
		for _, entry := range matched {
			if !yield(entry) {
				return
			}
		}
	}
}

func (l *AuditLog) snapshot(filter AuditFilter) []models.AuditLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matched := make([]models.AuditLogEntry, 0, len(l.entries))
	for _, entry := range l.entries {
		if filter.matches(entry) {
			matched = append(matched, entry)
		}
	}
	return matched
}
