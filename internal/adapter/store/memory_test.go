package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripsearch/internal/domain"
)

func sampleEntries(n int) []domain.RecentSearchEntry {
	entries := make([]domain.RecentSearchEntry, 0, n)
	codes := []string{"BOM", "DEL", "BLR", "MAA", "CCU"}
	for i := 0; i < n; i++ {
		entries = append(entries, domain.RecentSearchEntry{
			OriginCode:      codes[i%len(codes)],
			DestinationCode: codes[(i+1)%len(codes)],
			Timestamp:       time.Now(),
		})
	}
	return entries
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	got, err := s.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	entries := sampleEntries(2)
	require.NoError(t, s.Set(ctx, "session-1", entries))

	got, err = s.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session-1", sampleEntries(1)))

	got, err := s.Get(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStoreCopiesSlices(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entries := sampleEntries(2)
	require.NoError(t, s.Set(ctx, "session-1", entries))
	entries[0].OriginCode = "XXX"

	got, err := s.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "BOM", got[0].OriginCode)

	// Mutating the returned slice must not leak into the store either.
	got[0].OriginCode = "YYY"
	again, err := s.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "BOM", again[0].OriginCode)
}

func TestMemoryStoreCapsList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session-1", sampleEntries(5)))

	got, err := s.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, got, domain.MaxRecentSearches)
}
