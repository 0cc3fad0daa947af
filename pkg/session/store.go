package session

import (
	"sync"
	"time"
)

// Store maps session IDs to records. Implementations must be safe for
// concurrent use. Get must not return expired records.
type Store interface {
	Get(sid string) (*Record, bool)
	Put(sid string, rec *Record, ttl time.Duration) error
	Delete(sid string) error
}

// MemoryStore is an in-process Store, sufficient for single-instance
// deployments. Expired entries are evicted lazily on Get and swept by a
// background janitor.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	rec       *Record
	expiresAt time.Time
}

// NewMemoryStore creates a MemoryStore and starts its janitor.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{entries: map[string]memoryEntry{}}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			s.mu.Lock()
			for sid, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, sid)
				}
			}
			s.mu.Unlock()
		}
	}()

	return s
}

func (s *MemoryStore) Get(sid string) (*Record, bool) {
	s.mu.RLock()
	e, ok := s.entries[sid]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sid)
		s.mu.Unlock()
		return nil, false
	}
	return e.rec, true
}

func (s *MemoryStore) Put(sid string, rec *Record, ttl time.Duration) error {
	s.mu.Lock()
	s.entries[sid] = memoryEntry{rec: rec, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(sid string) error {
	s.mu.Lock()
	delete(s.entries, sid)
	s.mu.Unlock()
	return nil
}
