// Package testutil provides shared helpers for tests across the module.
package testutil

import (
	"testing"
	"time"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// MustParseDate parses a YYYY-MM-DD calendar key into the canonical
// domain time value, failing the test on malformed input.
func MustParseDate(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := domain.ParseDateKey(key)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", key, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for optional fields in request structs.
func Ptr[T any](v T) *T {
	return &v
}

// Airport builds a minimal airport location for tests.
func Airport(code, city string) domain.Location {
	return domain.Location{
		CityName:    city,
		Code:        code,
		DisplayName: city + " (" + code + ")",
		CountryCode: "IN",
		Subtype:     domain.SubtypeAirport,
	}
}

// AirportIn builds an airport location with an explicit country.
func AirportIn(code, city, country string) domain.Location {
	loc := Airport(code, city)
	loc.CountryCode = country
	loc.FlagGlyph = domain.FlagGlyph(country)
	return loc
}
