package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tripdesk/tripsearch/internal/adapter/http/middleware"
	"github.com/tripdesk/tripsearch/internal/adapter/http/response"
	"github.com/tripdesk/tripsearch/internal/adapter/locdir"
	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/logger"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
	"github.com/tripdesk/tripsearch/internal/usecase"
)

type handlerDeps struct {
	handler    *TripHandler
	dispatcher *domain.MockSearchDispatcher
	directory  *domain.MockLocationDirectory
	store      *domain.MockRecentStore
}

func newHandler(t *testing.T) handlerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	dispatcher := domain.NewMockSearchDispatcher(ctrl)
	directory := domain.NewMockLocationDirectory(ctrl)
	store := domain.NewMockRecentStore(ctrl)

	clock := timeutil.NewMockClockFromKey("2026-03-15")
	submitter := usecase.NewSearchSubmitter(dispatcher, store, clock, logger.Nop())
	resolver := usecase.NewLocationResolver(directory, locdir.StaticLocations(),
		usecase.DefaultResolverConfig(), logger.Nop())

	return handlerDeps{
		handler:    NewTripHandler(submitter, resolver, clock),
		dispatcher: dispatcher,
		directory:  directory,
		store:      store,
	}
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func validBody() string {
	return `{
		"tripType": "oneway",
		"origin": {"code": "BOM", "cityName": "Mumbai"},
		"destination": {"code": "DEL", "cityName": "New Delhi"},
		"departureDate": "2026-04-10",
		"adults": 1
	}`
}

func TestSearchTripsSuccess(t *testing.T) {
	deps := newHandler(t)

	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(&domain.SearchResult{
			Flights:       []domain.FlightOffer{{ID: "f1", From: "BOM", To: "DEL"}},
			ReturnFlights: []domain.FlightOffer{},
		}, nil)
	deps.store.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, nil)
	deps.store.EXPECT().Set(gomock.Any(), "sess-1", gomock.Any()).Return(nil)

	rec := doJSON(t, deps.handler.SearchTrips, http.MethodPost, "/api/v1/trips/search", validBody(),
		map[string]string{middleware.SessionIDHeader: "sess-1"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "f1", result.Flights[0].ID)
}

func TestSearchTripsMalformedBody(t *testing.T) {
	deps := newHandler(t)

	rec := doJSON(t, deps.handler.SearchTrips, http.MethodPost, "/api/v1/trips/search", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestSearchTripsValidationFailure(t *testing.T) {
	deps := newHandler(t)
	// No dispatcher expectations: validation blocks before dispatch.

	body := `{"tripType": "roundtrip", "adults": 1}`
	rec := doJSON(t, deps.handler.SearchTrips, http.MethodPost, "/api/v1/trips/search", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "origin")
	assert.Contains(t, detail.Details, "destination")
	assert.Contains(t, detail.Details, "departureDate")
	assert.Contains(t, detail.Details, "returnDate")
}

func TestSearchTripsDispatchFailure(t *testing.T) {
	deps := newHandler(t)

	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewDispatchError(502, "upstream capacity exceeded", nil))

	rec := doJSON(t, deps.handler.SearchTrips, http.MethodPost, "/api/v1/trips/search", validBody(), nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeDispatchFailed, detail.Code)
	// The server-provided banner message is surfaced verbatim.
	assert.Equal(t, "upstream capacity exceeded", detail.Message)
}

func TestSearchTripsTimeout(t *testing.T) {
	deps := newHandler(t)

	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	rec := doJSON(t, deps.handler.SearchTrips, http.MethodPost, "/api/v1/trips/search", validBody(), nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestSearchTripsUnknownErrorIs500(t *testing.T) {
	deps := newHandler(t)

	deps.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	rec := doJSON(t, deps.handler.SearchTrips, http.MethodPost, "/api/v1/trips/search", validBody(), nil)

	// DispatchError wraps most failures; a bare error is a bug and maps
	// to an internal error. The mock bypasses the client wrapper here.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLocationsEndpoint(t *testing.T) {
	t.Run("remote results", func(t *testing.T) {
		deps := newHandler(t)
		deps.directory.EXPECT().
			Search(gomock.Any(), "mum", domain.CategoryFlights).
			Return([]domain.Location{{CityName: "Mumbai", Code: "BOM"}}, nil)

		rec := doJSON(t, deps.handler.Locations, http.MethodGet, "/api/v1/locations?keyword=mum", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got LocationSearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Locations, 1)
		assert.Equal(t, "BOM", got.Locations[0].Code)
		assert.False(t, got.Degraded)
	})

	t.Run("short keyword answered statically", func(t *testing.T) {
		deps := newHandler(t)
		// No directory expectations: a one-letter keyword never leaves
		// the process.

		rec := doJSON(t, deps.handler.Locations, http.MethodGet, "/api/v1/locations?keyword=m", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got LocationSearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Locations)
	})

	t.Run("remote failure degrades to the static list", func(t *testing.T) {
		deps := newHandler(t)
		deps.directory.EXPECT().
			Search(gomock.Any(), "mum", domain.CategoryFlights).
			Return(nil, errors.New("connection refused"))

		rec := doJSON(t, deps.handler.Locations, http.MethodGet, "/api/v1/locations?keyword=mum", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got LocationSearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.NotEmpty(t, got.Locations)
		assert.True(t, got.Degraded)
	})
}

func TestRecentSearchesEndpoint(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		deps := newHandler(t)

		rec := doJSON(t, deps.handler.RecentSearches, http.MethodGet, "/api/v1/searches/recent", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns the stored list", func(t *testing.T) {
		deps := newHandler(t)
		deps.store.EXPECT().Get(gomock.Any(), "sess-1").Return([]domain.RecentSearchEntry{
			{OriginCode: "BOM", DestinationCode: "DEL", Date: "2026-04-10"},
		}, nil)

		rec := doJSON(t, deps.handler.RecentSearches, http.MethodGet, "/api/v1/searches/recent", "",
			map[string]string{middleware.SessionIDHeader: "sess-1"})

		assert.Equal(t, http.StatusOK, rec.Code)

		var got RecentSearchesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Searches, 1)
		assert.Equal(t, "BOM", got.Searches[0].OriginCode)
	})

	t.Run("empty list is an empty array, not null", func(t *testing.T) {
		deps := newHandler(t)
		deps.store.EXPECT().Get(gomock.Any(), "sess-1").Return(nil, nil)

		rec := doJSON(t, deps.handler.RecentSearches, http.MethodGet, "/api/v1/searches/recent", "",
			map[string]string{middleware.SessionIDHeader: "sess-1"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"searches":[]`)
	})
}

func TestCalendarMonthEndpoint(t *testing.T) {
	newCtx := func(t *testing.T, deps handlerDeps, month, query string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/"+month+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/calendar/:month")
		c.SetParamNames("month")
		c.SetParamValues(month)
		require.NoError(t, deps.handler.CalendarMonth(c))
		return rec
	}

	t.Run("renders the month with selection flags", func(t *testing.T) {
		deps := newHandler(t)

		rec := newCtx(t, deps, "2026-04-01", "?departure=2026-04-10&return=2026-04-15")

		assert.Equal(t, http.StatusOK, rec.Code)

		var got CalendarMonthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "2026-04-01", got.Month)
		require.Len(t, got.Days, 30)

		byKey := map[string]usecase.DayCell{}
		for _, d := range got.Days {
			byKey[d.Key] = d
		}
		assert.True(t, byKey["2026-04-10"].Selected)
		assert.True(t, byKey["2026-04-15"].Selected)
		assert.True(t, byKey["2026-04-12"].InRange)
		assert.False(t, byKey["2026-04-20"].InRange)
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		deps := newHandler(t)

		rec := newCtx(t, deps, "april", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	deps := newHandler(t)

	rec := doJSON(t, deps.handler.Health, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
