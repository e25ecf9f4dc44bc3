package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
)

// SearchSubmitter runs the submission pipeline: validate the configuration,
// dispatch it to the flight-search API, and remember the route. Both the
// controller and the HTTP submission endpoint go through it.
type SearchSubmitter struct {
	dispatcher domain.SearchDispatcher
	recent     domain.RecentStore
	clock      timeutil.Clock
	log        zerolog.Logger
}

// NewSearchSubmitter creates a submitter over the given ports.
func NewSearchSubmitter(dispatcher domain.SearchDispatcher, recent domain.RecentStore, clock timeutil.Clock, log zerolog.Logger) *SearchSubmitter {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &SearchSubmitter{
		dispatcher: dispatcher,
		recent:     recent,
		clock:      clock,
		log:        log,
	}
}

// Submit validates and dispatches a finalized configuration.
//
// Validation fails closed: FieldErrors are returned and no dispatch call
// occurs. On dispatch success the route is pushed onto the session's
// recent-searches list; store failures are logged and swallowed since
// remembering the route is a courtesy, not part of the search.
func (s *SearchSubmitter) Submit(ctx context.Context, sessionID string, cfg domain.SearchConfiguration) (*domain.SearchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result, err := s.dispatcher.Dispatch(ctx, cfg.DispatchRequest())
	if err != nil {
		return nil, err
	}

	s.recordRecent(ctx, sessionID, &cfg)
	return result, nil
}

func (s *SearchSubmitter) recordRecent(ctx context.Context, sessionID string, cfg *domain.SearchConfiguration) {
	if s.recent == nil || sessionID == "" {
		return
	}
	existing, err := s.recent.Get(ctx, sessionID)
	if err != nil {
		s.log.Warn().Err(err).Msg("reading recent searches failed")
		existing = nil
	}
	updated := domain.PushRecent(existing, cfg.RecentFrom(s.clock.Now()))
	if err := s.recent.Set(ctx, sessionID, updated); err != nil {
		s.log.Warn().Err(err).Msg("persisting recent searches failed")
	}
}

// Recent reads the session's remembered routes, newest first.
func (s *SearchSubmitter) Recent(ctx context.Context, sessionID string) ([]domain.RecentSearchEntry, error) {
	if s.recent == nil {
		return nil, nil
	}
	return s.recent.Get(ctx, sessionID)
}
