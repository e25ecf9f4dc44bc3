package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/logger"
)

var fallbackList = []domain.Location{
	{CityName: "Mumbai", Code: "BOM"},
	{CityName: "New Delhi", Code: "DEL"},
	{CityName: "Bengaluru", Code: "BLR"},
}

func newResolver(t *testing.T, debounce time.Duration) (*LocationResolver, *domain.MockLocationDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := domain.NewMockLocationDirectory(ctrl)
	r := NewLocationResolver(remote, fallbackList, ResolverConfig{Debounce: debounce}, logger.Nop())
	return r, remote
}

func TestLookupShortKeywordNeverCallsRemote(t *testing.T) {
	r, remote := newResolver(t, DefaultDebounce)
	// No EXPECT registered: any remote call fails the test.
	_ = remote

	got := r.Lookup(context.Background(), "m", domain.CategoryFlights)

	require.Len(t, got, 1)
	assert.Equal(t, "BOM", got[0].Code)
	assert.False(t, r.Degraded())
}

func TestLookupRemoteSuccess(t *testing.T) {
	r, remote := newResolver(t, DefaultDebounce)
	remote.EXPECT().
		Search(gomock.Any(), "mum", domain.CategoryFlights).
		Return([]domain.Location{
			{CityName: "Mumbai", Code: "BOM"},
			{Code: "ZZZ"}, // nameless rows never reach the caller
		}, nil)

	got := r.Lookup(context.Background(), "mum", domain.CategoryFlights)

	require.Len(t, got, 1)
	assert.Equal(t, "BOM", got[0].Code)
	assert.False(t, r.Degraded())
}

func TestLookupRemoteFailureFallsBackSilently(t *testing.T) {
	r, remote := newResolver(t, DefaultDebounce)
	remote.EXPECT().
		Search(gomock.Any(), "del", domain.CategoryFlights).
		Return(nil, errors.New("connection refused"))

	got := r.Lookup(context.Background(), "del", domain.CategoryFlights)

	// The static list answers and the failure is only visible via Degraded.
	require.Len(t, got, 1)
	assert.Equal(t, "DEL", got[0].Code)
	assert.True(t, r.Degraded())
}

func TestLookupDegradedResetsOnNextSuccess(t *testing.T) {
	r, remote := newResolver(t, DefaultDebounce)
	gomock.InOrder(
		remote.EXPECT().
			Search(gomock.Any(), "del", domain.CategoryFlights).
			Return(nil, errors.New("boom")),
		remote.EXPECT().
			Search(gomock.Any(), "delh", domain.CategoryFlights).
			Return([]domain.Location{{CityName: "New Delhi", Code: "DEL"}}, nil),
	)

	_ = r.Lookup(context.Background(), "del", domain.CategoryFlights)
	assert.True(t, r.Degraded())

	_ = r.Lookup(context.Background(), "delh", domain.CategoryFlights)
	assert.False(t, r.Degraded())
}

func TestQueryShortKeywordDeliversSynchronously(t *testing.T) {
	r, _ := newResolver(t, DefaultDebounce)

	var got []domain.Location
	r.Query(context.Background(), "b", domain.CategoryFlights, func(locs []domain.Location) {
		got = locs
	})

	// "b" matches both BOM (code substring) and Bengaluru.
	require.Len(t, got, 2)
	assert.Equal(t, "BOM", got[0].Code)
	assert.Equal(t, "BLR", got[1].Code)
}

func TestLookupCountsRunesNotBytes(t *testing.T) {
	r, remote := newResolver(t, DefaultDebounce)
	// No EXPECT registered: a single CJK rune is still a short keyword
	// even though it spans several bytes.
	_ = remote

	got := r.Lookup(context.Background(), "東", domain.CategoryFlights)

	assert.Empty(t, got)
	assert.False(t, r.Degraded())
}

func TestQueryDebouncesKeystrokes(t *testing.T) {
	r, remote := newResolver(t, 30*time.Millisecond)

	// Only the final keyword survives the quiet period.
	remote.EXPECT().
		Search(gomock.Any(), "delh", domain.CategoryFlights).
		Return([]domain.Location{{CityName: "New Delhi", Code: "DEL"}}, nil)

	delivered := make(chan []domain.Location, 2)
	deliver := func(locs []domain.Location) { delivered <- locs }

	r.Query(context.Background(), "de", domain.CategoryFlights, deliver)
	r.Query(context.Background(), "del", domain.CategoryFlights, deliver)
	r.Query(context.Background(), "delh", domain.CategoryFlights, deliver)

	select {
	case got := <-delivered:
		require.Len(t, got, 1)
		assert.Equal(t, "DEL", got[0].Code)
	case <-time.After(time.Second):
		t.Fatal("debounced lookup never delivered")
	}

	// No second delivery from the superseded keywords.
	select {
	case extra := <-delivered:
		t.Fatalf("unexpected extra delivery: %v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestQueryDropsStaleResponse(t *testing.T) {
	r, remote := newResolver(t, 5*time.Millisecond)

	slowStarted := make(chan struct{})
	release := make(chan struct{})
	remote.EXPECT().
		Search(gomock.Any(), "bom", domain.CategoryFlights).
		DoAndReturn(func(context.Context, string, domain.LookupCategory) ([]domain.Location, error) {
			close(slowStarted)
			<-release
			return []domain.Location{{CityName: "Stale Mumbai", Code: "BOM"}}, nil
		})
	remote.EXPECT().
		Search(gomock.Any(), "delh", domain.CategoryFlights).
		Return([]domain.Location{{CityName: "New Delhi", Code: "DEL"}}, nil)

	delivered := make(chan []domain.Location, 2)
	deliver := func(locs []domain.Location) { delivered <- locs }

	r.Query(context.Background(), "bom", domain.CategoryFlights, deliver)

	// Let the slow lookup fire, then supersede it while it is in flight.
	<-slowStarted
	r.Query(context.Background(), "delh", domain.CategoryFlights, deliver)

	got := <-delivered
	require.Len(t, got, 1)
	assert.Equal(t, "DEL", got[0].Code)

	// Releasing the slow lookup must not produce a second delivery: its
	// sequence number is stale.
	close(release)
	select {
	case extra := <-delivered:
		t.Fatalf("stale response delivered: %v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}
