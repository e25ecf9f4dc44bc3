package domain

import (
	"context"
	"time"
)

// MaxRecentSearches caps the persisted recent-search list.
const MaxRecentSearches = 3

// RecentSearchEntry is one remembered route, shown as a shortcut on the
// search form.
type RecentSearchEntry struct {
	OriginCode      string    `json:"originCode"`
	DestinationCode string    `json:"destinationCode"`
	OriginCity      string    `json:"originCity"`
	DestinationCity string    `json:"destinationCity"`
	Date            string    `json:"date"`
	Timestamp       time.Time `json:"timestamp"`
}

// SameRoute reports whether two entries cover the same origin-destination
// pair, which is the deduplication key for the recent list.
func (e RecentSearchEntry) SameRoute(other RecentSearchEntry) bool {
	return e.OriginCode == other.OriginCode && e.DestinationCode == other.DestinationCode
}

// PushRecent prepends entry to list, deduplicating by route and capping the
// result at MaxRecentSearches. Newest entries come first. The input slice is
// not mutated.
func PushRecent(list []RecentSearchEntry, entry RecentSearchEntry) []RecentSearchEntry {
	result := make([]RecentSearchEntry, 0, MaxRecentSearches)
	result = append(result, entry)
	for _, e := range list {
		if e.SameRoute(entry) {
			continue
		}
		result = append(result, e)
		if len(result) == MaxRecentSearches {
			break
		}
	}
	return result
}

// RecentStore is the port to the external key-value store holding recent
// searches. It is injected so tests can substitute an in-memory fake.
type RecentStore interface {
	// Get returns the stored list, most recent first, at most
	// MaxRecentSearches entries. A missing key yields an empty list.
	Get(ctx context.Context, sessionID string) ([]RecentSearchEntry, error)

	// Set persists the list for the session.
	Set(ctx context.Context, sessionID string, entries []RecentSearchEntry) error
}
