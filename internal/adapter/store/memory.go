package store

import (
	"context"
	"sync"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// MemoryStore is an in-memory recent-searches store for tests and for
// running without redis.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]domain.RecentSearchEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]domain.RecentSearchEntry{}}
}

// Get implements domain.RecentStore.
func (s *MemoryStore) Get(_ context.Context, sessionID string) ([]domain.RecentSearchEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.data[sessionID]
	result := make([]domain.RecentSearchEntry, len(entries))
	copy(result, entries)
	return result, nil
}

// Set implements domain.RecentStore.
func (s *MemoryStore) Set(_ context.Context, sessionID string, entries []domain.RecentSearchEntry) error {
	if len(entries) > domain.MaxRecentSearches {
		entries = entries[:domain.MaxRecentSearches]
	}
	stored := make([]domain.RecentSearchEntry, len(entries))
	copy(stored, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = stored
	return nil
}

// Ensure MemoryStore implements the port at compile time.
var _ domain.RecentStore = (*MemoryStore)(nil)
