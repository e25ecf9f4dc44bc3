package mock

import (
	"context"
	"sync"
	"time"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// Directory is a configurable mock implementation of
// domain.LocationDirectory for integration tests.
type Directory struct {
	locations []domain.Location
	err       error
	delay     time.Duration

	mu          sync.Mutex
	callCount   int
	lastKeyword string
}

// NewDirectory creates a new mock directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// WithLocations configures the directory to return the given locations.
func (d *Directory) WithLocations(locations []domain.Location) *Directory {
	d.locations = locations
	return d
}

// WithError configures the directory to fail lookups with the given error.
func (d *Directory) WithError(err error) *Directory {
	d.err = err
	return d
}

// WithDelay configures the directory to wait before responding.
func (d *Directory) WithDelay(delay time.Duration) *Directory {
	d.delay = delay
	return d
}

// Search implements domain.LocationDirectory.
func (d *Directory) Search(ctx context.Context, keyword string, _ domain.LookupCategory) ([]domain.Location, error) {
	d.mu.Lock()
	d.callCount++
	d.lastKeyword = keyword
	d.mu.Unlock()

	if d.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.delay):
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	return domain.FilterLocations(d.locations, keyword), nil
}

// CallCount returns the number of times Search was called.
func (d *Directory) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.callCount
}

// LastKeyword returns the most recently searched keyword.
func (d *Directory) LastKeyword() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastKeyword
}

// Ensure Directory implements domain.LocationDirectory at compile time.
var _ domain.LocationDirectory = (*Directory)(nil)
