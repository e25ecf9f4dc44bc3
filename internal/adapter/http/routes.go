// Package http provides the HTTP handler layer for the trip search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Trips group
	trips := api.Group("/trips")
	trips.POST("/search", h.SearchTrips)

	// Location directory lookups
	api.GET("/locations", h.Locations)

	// Recent searches shortcut list
	api.GET("/searches/recent", h.RecentSearches)

	// Calendar rendering
	api.GET("/calendar/:month", h.CalendarMonth)
}
