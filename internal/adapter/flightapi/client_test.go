package flightapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/logger"
)

func testRequest() domain.SearchRequest {
	return domain.SearchRequest{
		From:          "BOM",
		To:            "DEL",
		DepartureDate: "2026-04-10",
		Passengers:    1,
		Class:         domain.CabinEconomy,
		Page:          1,
		Limit:         20,
	}
}

func newTestClient(baseURL string) *Client {
	c := NewClient(Config{
		BaseURL:       baseURL,
		Timeout:       2 * time.Second,
		RatePerSecond: 1000,
		RateBurst:     1000,
	}, logger.Nop())
	// Keep retries fast in tests.
	c.retry.InitialDelay = time.Millisecond
	c.retry.MaxDelay = 5 * time.Millisecond
	return c
}

func TestDispatchSuccess(t *testing.T) {
	var gotBody domain.SearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, searchPath, r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(domain.SearchResult{
			Flights: []domain.FlightOffer{{ID: "f1", From: "BOM", To: "DEL", Price: 4200}},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	result, err := c.Dispatch(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "f1", result.Flights[0].ID)
	assert.Equal(t, "BOM", gotBody.From)
	assert.Equal(t, "2026-04-10", gotBody.DepartureDate)

	// Absent lists are normalized to empty, never nil.
	assert.NotNil(t, result.ReturnFlights)
	assert.Empty(t, result.ReturnFlights)
}

func TestDispatchServerErrorCarriesMessage(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "upstream capacity exceeded"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	result, err := c.Dispatch(context.Background(), testRequest())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, domain.IsDispatchFailed(err))

	var de *domain.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusBadGateway, de.StatusCode)
	assert.Equal(t, "upstream capacity exceeded", de.Message)

	// 5xx answers are transport-level trouble and get retried.
	assert.Equal(t, int32(c.retry.MaxAttempts), atomic.LoadInt32(&calls))
}

func TestDispatchClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown airport code"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Dispatch(context.Background(), testRequest())

	require.Error(t, err)
	var de *domain.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "unknown airport code", de.Message)

	// A rejected request will not get better on its own.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDispatchRecoversAfterTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.SearchResult{Flights: []domain.FlightOffer{{ID: "f1"}}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	result, err := c.Dispatch(context.Background(), testRequest())

	require.NoError(t, err)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDispatchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(srv.URL)

	_, err := c.Dispatch(context.Background(), testRequest())

	require.Error(t, err)
	assert.True(t, domain.IsDispatchFailed(err))

	var de *domain.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 0, de.StatusCode)
}

func TestDispatchMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.retry.MaxAttempts = 1

	_, err := c.Dispatch(context.Background(), testRequest())

	require.Error(t, err)
	assert.True(t, domain.IsDispatchFailed(err))
}
