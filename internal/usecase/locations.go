package usecase

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// MinKeywordLength is the shortest keyword, in runes, that triggers a
// remote lookup. Anything shorter is answered from the static fallback
// list.
const MinKeywordLength = 2

// DefaultDebounce is the quiet period after the last keystroke before a
// remote lookup fires.
const DefaultDebounce = 300 * time.Millisecond

// ResolverConfig contains configuration options for the location resolver.
type ResolverConfig struct {
	// Debounce is the quiet period before a queued lookup fires.
	Debounce time.Duration
}

// DefaultResolverConfig returns the default configuration.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{Debounce: DefaultDebounce}
}

// LocationResolver resolves partial keywords against the remote directory
// with a static fallback. Queued lookups are debounced, and responses from
// superseded keywords are discarded via a monotonically increasing sequence
// number (last keyword wins).
type LocationResolver struct {
	remote   domain.LocationDirectory
	fallback []domain.Location
	debounce time.Duration
	log      zerolog.Logger

	mu       sync.Mutex
	seq      uint64
	timer    *time.Timer
	degraded bool
}

// NewLocationResolver creates a resolver over the remote directory and the
// static fallback list.
func NewLocationResolver(remote domain.LocationDirectory, fallback []domain.Location, cfg ResolverConfig, log zerolog.Logger) *LocationResolver {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &LocationResolver{
		remote:   remote,
		fallback: fallback,
		debounce: debounce,
		log:      log,
	}
}

// Lookup resolves a keyword synchronously.
//
// Keywords shorter than MinKeywordLength are answered from the static list
// with no remote call. Remote failures fall back to the static list
// silently; the lookup is non-critical and the user never sees an error.
// Failure is per-call, not sticky: the next keystroke retries the remote.
func (r *LocationResolver) Lookup(ctx context.Context, keyword string, category domain.LookupCategory) []domain.Location {
	if utf8.RuneCountInString(keyword) < MinKeywordLength {
		return domain.FilterLocations(r.fallback, keyword)
	}

	results, err := r.remote.Search(ctx, keyword, category)
	r.mu.Lock()
	r.degraded = err != nil
	r.mu.Unlock()
	if err != nil {
		r.log.Warn().Err(err).Str("keyword", keyword).Msg("location lookup failed, using static fallback")
		return domain.FilterLocations(r.fallback, keyword)
	}

	// Drop nameless entries before display.
	return domain.FilterLocations(results, "")
}

// Query schedules a debounced lookup for a keystroke. Each call cancels the
// prior pending timer; only the last keyword after the quiet period fires a
// remote call. A response is delivered only while its sequence number is
// still current, so a late response for a superseded keyword can never
// overwrite a newer result set.
//
// Short keywords are answered synchronously from the static list.
func (r *LocationResolver) Query(ctx context.Context, keyword string, category domain.LookupCategory, deliver func([]domain.Location)) {
	r.mu.Lock()
	r.seq++
	mine := r.seq
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	if utf8.RuneCountInString(keyword) < MinKeywordLength {
		r.mu.Unlock()
		deliver(domain.FilterLocations(r.fallback, keyword))
		return
	}

	r.timer = time.AfterFunc(r.debounce, func() {
		results := r.Lookup(ctx, keyword, category)

		r.mu.Lock()
		current := r.seq == mine
		r.mu.Unlock()
		if !current {
			// Superseded by a newer keystroke; drop the result.
			return
		}
		deliver(results)
	})
	r.mu.Unlock()
}

// Degraded reports whether the most recent remote lookup fell back to the
// static list. It resets on the next successful call.
func (r *LocationResolver) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.degraded
}
