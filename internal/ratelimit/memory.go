package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is the counter for one key in one window.
type memoryEntry struct {
	window int64
	count  int64
}

// MemoryStore is the default in-process Store: a map of counters behind a
// mutex. Entries from past windows are dropped opportunistically whenever
// the map grows past cleanupThreshold, which keeps memory bounded without a
// background sweeper.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

const cleanupThreshold = 4096

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window int64, _ time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		if len(s.entries) >= cleanupThreshold {
			s.evictStale(window)
		}
		e = &memoryEntry{window: window}
		s.entries[key] = e
	}

	if e.window != window {
		e.window = window
		e.count = 0
	}

	e.count++
	return e.count, nil
}

// evictStale removes counters from windows older than the current one.
// Caller must hold mu.
func (s *MemoryStore) evictStale(window int64) {
	for key, e := range s.entries {
		if e.window < window {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of live counters, for tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
