// Package flightapi is the adapter to the external flight-search API.
// It turns a finalized search configuration's flat request into an HTTP
// call and normalizes failures into dispatch errors the UI can banner.
package flightapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/retry"
)

const searchPath = "/api/flights/search"

// Config contains configuration options for the client.
type Config struct {
	// BaseURL is the root of the external flight-search API.
	BaseURL string

	// Timeout bounds a single dispatch call.
	Timeout time.Duration

	// RatePerSecond and RateBurst cap outbound calls.
	RatePerSecond float64
	RateBurst     int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:       10 * time.Second,
		RatePerSecond: 5,
		RateBurst:     10,
	}
}

// Client implements domain.SearchDispatcher over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	retry   retry.Config
	log     zerolog.Logger
}

// NewClient creates a dispatch client for the given API.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = DefaultConfig().RatePerSecond
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = DefaultConfig().RateBurst
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		retry:   retry.DispatchConfig,
		log:     log,
	}
}

// errorBody is the failure shape the external API answers with.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Dispatch implements domain.SearchDispatcher.
// Transport errors are retried with backoff; API rejections are not, since
// the request will not get better on its own.
func (c *Client) Dispatch(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	cfg := c.retry
	cfg.RetryIf = func(err error) bool {
		// Only transport-level failures are worth another attempt.
		var de *domain.DispatchError
		if errors.As(err, &de) {
			return de.StatusCode == 0 || de.StatusCode >= http.StatusInternalServerError
		}
		return true
	}

	start := time.Now()
	result, err := retry.DoWithResult(ctx, func() (*domain.SearchResult, error) {
		return c.post(ctx, body)
	}, cfg)

	evt := c.log.Info()
	if err != nil {
		evt = c.log.Warn().Err(err)
	}
	evt.Str("from", req.From).
		Str("to", req.To).
		Str("departure", req.DepartureDate).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("flight search dispatched")

	return result, err
}

func (c *Client) post(ctx context.Context, body []byte) (*domain.SearchResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewDispatchError(0, "", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, domain.NewDispatchError(0, "", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewDispatchError(resp.StatusCode, "", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the server-provided message for the error banner.
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		return nil, domain.NewDispatchError(resp.StatusCode, msg,
			fmt.Errorf("flight API returned status %d", resp.StatusCode))
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domain.NewDispatchError(resp.StatusCode, "", fmt.Errorf("decode search response: %w", err))
	}
	if result.Flights == nil {
		result.Flights = []domain.FlightOffer{}
	}
	if result.ReturnFlights == nil {
		result.ReturnFlights = []domain.FlightOffer{}
	}
	return &result, nil
}

// Ensure Client implements the port at compile time.
var _ domain.SearchDispatcher = (*Client)(nil)
