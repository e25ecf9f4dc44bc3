// Package mock provides test doubles for the trip search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// Dispatcher is a configurable mock implementation of
// domain.SearchDispatcher. It supports configurable delays, errors, and
// responses for testing timeouts and failure recovery.
type Dispatcher struct {
	result *domain.SearchResult
	err    error
	delay  time.Duration

	mu        sync.Mutex
	callCount int
	lastReq   domain.SearchRequest
}

// NewDispatcher creates a new mock dispatcher.
// The dispatcher is configured using the builder pattern methods.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// WithResult configures the dispatcher to return the given result.
func (d *Dispatcher) WithResult(result *domain.SearchResult) *Dispatcher {
	d.result = result
	return d
}

// WithError configures the dispatcher to return the given error.
func (d *Dispatcher) WithError(err error) *Dispatcher {
	d.err = err
	return d
}

// WithDelay configures the dispatcher to wait before responding.
// This is useful for testing timeout behavior.
func (d *Dispatcher) WithDelay(delay time.Duration) *Dispatcher {
	d.delay = delay
	return d
}

// Dispatch implements domain.SearchDispatcher. It respects context
// cancellation, applies the configured delay, and returns the configured
// result or error.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	d.mu.Lock()
	d.callCount++
	d.lastReq = req
	d.mu.Unlock()

	if d.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.delay):
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if d.err != nil {
		return nil, d.err
	}
	if d.result != nil {
		return d.result, nil
	}
	return &domain.SearchResult{
		Flights:       []domain.FlightOffer{},
		ReturnFlights: []domain.FlightOffer{},
	}, nil
}

// CallCount returns the number of times Dispatch was called.
func (d *Dispatcher) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.callCount
}

// LastRequest returns the most recently dispatched request.
func (d *Dispatcher) LastRequest() domain.SearchRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastReq
}

// Ensure Dispatcher implements domain.SearchDispatcher at compile time.
var _ domain.SearchDispatcher = (*Dispatcher)(nil)

// SampleOffers returns realistic flight offers for testing.
func SampleOffers(from, to string, count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)
	for i := 0; i < count; i++ {
		offers[i] = domain.FlightOffer{
			ID:            fmt.Sprintf("%s-%s-%d", from, to, i+1),
			FlightNumber:  fmt.Sprintf("AI %d01", i+1),
			AirlineCode:   "AI",
			AirlineName:   "Air India",
			From:          from,
			To:            to,
			DepartureTime: "08:00",
			ArrivalTime:   "10:15",
			Duration:      "2h 15m",
			Stops:         0,
			Price:         4200 + float64(i*350),
			Currency:      "INR",
		}
	}
	return offers
}

// SampleResult returns a populated search result for testing.
func SampleResult(from, to string) *domain.SearchResult {
	return &domain.SearchResult{
		Flights:       SampleOffers(from, to, 3),
		ReturnFlights: []domain.FlightOffer{},
	}
}
