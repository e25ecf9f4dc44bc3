// Package integration contains end-to-end tests that exercise the full
// HTTP stack against in-memory infrastructure.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	triphttp "github.com/tripdesk/tripsearch/internal/adapter/http"
	"github.com/tripdesk/tripsearch/internal/adapter/http/middleware"
	"github.com/tripdesk/tripsearch/internal/adapter/locdir"
	"github.com/tripdesk/tripsearch/internal/adapter/store"
	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/logger"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
	"github.com/tripdesk/tripsearch/internal/usecase"
	"github.com/tripdesk/tripsearch/test/mock"
)

// Frozen test time. Every server starts mid-March so date fixtures in
// April and May are always in the future.
const testToday = "2026-03-15"

// TestServer bundles an echo instance wired with in-memory
// infrastructure and configurable mocks for end-to-end tests.
type TestServer struct {
	Echo       *echo.Echo
	Dispatcher *mock.Dispatcher
	Directory  *mock.Directory
	Store      *store.MemoryStore
	Clock      *timeutil.MockClock
}

// NewTestServer creates a fully wired test server. The dispatcher and
// directory can be reconfigured per test before issuing requests.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dispatcher := mock.NewDispatcher()
	directory := mock.NewDirectory()
	recentStore := store.NewMemoryStore()
	clock := timeutil.NewMockClockFromKey(testToday)
	log := logger.Nop()

	submitter := usecase.NewSearchSubmitter(dispatcher, recentStore, clock, log)
	fallback := locdir.FallbackFor(domain.CategoryFlights)
	resolver := usecase.NewLocationResolver(directory, fallback, usecase.DefaultResolverConfig(), log)
	handler := triphttp.NewTripHandler(submitter, resolver, clock)

	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, log)
	triphttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:       e,
		Dispatcher: dispatcher,
		Directory:  directory,
		Store:      recentStore,
		Clock:      clock,
	}
}

// Request describes an HTTP request to issue against the test server.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Do issues the request through the full middleware and routing stack
// and returns the recorded response.
func (s *TestServer) Do(t *testing.T, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if r.Body != nil {
		raw, err := json.Marshal(r.Body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(r.Method, r.Path, body)
	if r.Body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorded body into out, failing the test on
// malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// DefaultSearchRequest returns a valid round-trip search request that
// tests can modify before submission.
func DefaultSearchRequest() triphttp.SearchTripsRequest {
	return triphttp.SearchTripsRequest{
		TripType:      "roundtrip",
		Origin:        &triphttp.LocationDTO{Code: "BOM", CityName: "Mumbai"},
		Destination:   &triphttp.LocationDTO{Code: "DEL", CityName: "New Delhi"},
		DepartureDate: "2026-04-10",
		ReturnDate:    "2026-04-17",
		Adults:        2,
		Children:      1,
		CabinClass:    "economy",
	}
}

// MulticitySearchRequest returns a valid two-leg multi-city request.
func MulticitySearchRequest() triphttp.SearchTripsRequest {
	return triphttp.SearchTripsRequest{
		TripType: "multicity",
		Legs: []triphttp.LegDTO{
			{
				Origin:      triphttp.LocationDTO{Code: "BOM", CityName: "Mumbai"},
				Destination: triphttp.LocationDTO{Code: "DXB", CityName: "Dubai"},
				Date:        "2026-04-10",
			},
			{
				Origin:      triphttp.LocationDTO{Code: "DXB", CityName: "Dubai"},
				Destination: triphttp.LocationDTO{Code: "LHR", CityName: "London"},
				Date:        "2026-04-14",
			},
		},
		Adults: 1,
	}
}
