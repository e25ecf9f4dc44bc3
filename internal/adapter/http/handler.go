// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripdesk/tripsearch/internal/adapter/http/middleware"
	"github.com/tripdesk/tripsearch/internal/adapter/http/response"
	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
	"github.com/tripdesk/tripsearch/internal/usecase"
)

// TripHandler handles HTTP requests for trip search endpoints.
type TripHandler struct {
	submitter *usecase.SearchSubmitter
	resolver  *usecase.LocationResolver
	clock     timeutil.Clock
}

// NewTripHandler creates a new TripHandler over the submission pipeline and
// the location resolver.
func NewTripHandler(submitter *usecase.SearchSubmitter, resolver *usecase.LocationResolver, clock timeutil.Clock) *TripHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TripHandler{
		submitter: submitter,
		resolver:  resolver,
		clock:     clock,
	}
}

// SearchTrips handles POST /api/v1/trips/search
//
// @Summary Submit a trip search
// @Description Validates a finalized trip configuration and dispatches it to the flight search API
// @Tags trips
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session identifier for recent searches"
// @Param request body SearchTripsRequest true "Trip configuration"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Flight search API failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/search [post]
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req SearchTripsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	cfg := ToDomainConfiguration(&req)
	sessionID := middleware.GetSessionID(c)

	result, err := h.submitter.Submit(c.Request().Context(), sessionID, cfg)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// LocationSearchResponse is the payload for location lookups.
type LocationSearchResponse struct {
	// Locations are the matches for the keyword, ranked by the directory
	Locations []domain.Location `json:"locations"`

	// Degraded reports that the remote directory failed and the results
	// come from the static fallback list
	Degraded bool `json:"degraded"`
}

// Locations handles GET /api/v1/locations
//
// @Summary Resolve a location keyword
// @Description Resolves a partial keyword against the location directory, falling back to a static list on failure
// @Tags locations
// @Produce json
// @Param keyword query string true "Partial city, code, or airport name"
// @Param category query string false "Lookup category: flights-airport (default) or hotels-city"
// @Success 200 {object} LocationSearchResponse
// @Router /api/v1/locations [get]
func (h *TripHandler) Locations(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	category := domain.ParseLookupCategory(c.QueryParam("category"))

	locations := h.resolver.Lookup(c.Request().Context(), keyword, category)

	return response.OK(c, &LocationSearchResponse{
		Locations: locations,
		Degraded:  h.resolver.Degraded(),
	})
}

// RecentSearchesResponse is the payload for the recent-searches shortcut list.
type RecentSearchesResponse struct {
	// Searches are the remembered routes, newest first, at most three
	Searches []domain.RecentSearchEntry `json:"searches"`
}

// RecentSearches handles GET /api/v1/searches/recent
//
// @Summary List recent searches
// @Description Returns the session's remembered routes, newest first
// @Tags trips
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} RecentSearchesResponse
// @Router /api/v1/searches/recent [get]
func (h *TripHandler) RecentSearches(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		return response.BadRequest(c, "X-Session-ID header is required")
	}

	entries, err := h.submitter.Recent(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err)
	}
	if entries == nil {
		entries = []domain.RecentSearchEntry{}
	}

	return response.OK(c, &RecentSearchesResponse{Searches: entries})
}

// CalendarMonthResponse is the payload for calendar month rendering.
type CalendarMonthResponse struct {
	// Month is the canonical first day of the rendered month
	Month string `json:"month"`

	// Days are the render-ready cells for every day of the month
	Days []usecase.DayCell `json:"days"`
}

// CalendarMonth handles GET /api/v1/calendar/:month
//
// @Summary Render a calendar month
// @Description Returns per-day cells with past, selection, range, and fare hint flags for one month
// @Tags calendar
// @Produce json
// @Param month path string true "Month in YYYY-MM-DD format (any day within the month)"
// @Param departure query string false "Selected departure date in YYYY-MM-DD format"
// @Param return query string false "Selected return date in YYYY-MM-DD format"
// @Success 200 {object} CalendarMonthResponse
// @Failure 400 {object} response.ErrorDetail "Malformed month or date"
// @Router /api/v1/calendar/{month} [get]
func (h *TripHandler) CalendarMonth(c echo.Context) error {
	month, err := domain.ParseDateKey(c.Param("month"))
	if err != nil {
		return response.BadRequest(c, "month must be a valid date in YYYY-MM-DD format")
	}

	var sel domain.DateSelection
	if key := c.QueryParam("departure"); key != "" {
		if sel.Departure, err = domain.ParseDateKey(key); err != nil {
			return response.BadRequest(c, "departure must be a valid date in YYYY-MM-DD format")
		}
	}
	if key := c.QueryParam("return"); key != "" {
		if sel.Return, err = domain.ParseDateKey(key); err != nil {
			return response.BadRequest(c, "return must be a valid date in YYYY-MM-DD format")
		}
	}

	engine := usecase.NewCalendarEngine(h.clock, month)
	cells := engine.MonthCells(month, sel)

	return c.JSON(http.StatusOK, &CalendarMonthResponse{
		Month: domain.DateKey(month),
		Days:  cells,
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles wire-level validation errors and returns a
// 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	// Domain validation failed on the configuration
	var fieldErrs *domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		return response.ValidationError(c, fieldErrs.ToMap())
	}

	// The flight search API rejected or failed the dispatch; surface the
	// server-provided banner message when one exists
	var dispatchErr *domain.DispatchError
	if errors.As(err, &dispatchErr) {
		return response.DispatchFailed(c, dispatchErr.Message)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}
