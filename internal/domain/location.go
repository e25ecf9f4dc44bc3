package domain

import (
	"context"
	"strings"
)

// LocationSubtype distinguishes result kinds for icon selection.
type LocationSubtype string

// Available location subtypes.
const (
	SubtypeAirport LocationSubtype = "AIRPORT"
	SubtypeCity    LocationSubtype = "CITY"
	SubtypeHotel   LocationSubtype = "HOTEL"
)

// LookupCategory selects which directory a keyword is resolved against.
type LookupCategory string

// Available lookup categories.
const (
	CategoryFlights LookupCategory = "flights-airport"
	CategoryHotels  LookupCategory = "hotels-city"
)

// IsValid checks if the lookup category is a valid value.
func (c LookupCategory) IsValid() bool {
	switch c {
	case CategoryFlights, CategoryHotels:
		return true
	default:
		return false
	}
}

// ParseLookupCategory converts a string to a LookupCategory.
// Returns CategoryFlights if the string is empty or invalid.
func ParseLookupCategory(s string) LookupCategory {
	c := LookupCategory(s)
	if c.IsValid() {
		return c
	}
	return CategoryFlights
}

// Location is the normalized shape every directory result is reduced to
// before it reaches the search form.
type Location struct {
	// CityName is the city the location belongs to (e.g., "Mumbai")
	CityName string `json:"cityName"`

	// Code is the IATA or directory code (e.g., "BOM")
	Code string `json:"code"`

	// DisplayName is the full human-readable name
	DisplayName string `json:"displayName"`

	// CountryCode is the ISO 3166-1 alpha-2 country code
	CountryCode string `json:"countryCode"`

	// Subtype distinguishes AIRPORT/CITY/HOTEL for icon selection
	Subtype LocationSubtype `json:"subtype"`

	// FlagGlyph is the country flag emoji derived from CountryCode
	FlagGlyph string `json:"flagGlyph,omitempty"`
}

// HasName reports whether the location carries a usable display name.
// Nameless entries are filtered out before display.
func (l Location) HasName() bool {
	return l.CityName != "" || l.DisplayName != ""
}

// Matches reports whether the location matches a keyword by
// case-insensitive substring on city, code, or display name.
func (l Location) Matches(keyword string) bool {
	if keyword == "" {
		return true
	}
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(l.CityName), k) ||
		strings.Contains(strings.ToLower(l.Code), k) ||
		strings.Contains(strings.ToLower(l.DisplayName), k)
}

// FilterLocations returns the entries matching keyword, dropping any entry
// without a usable name. Order is preserved.
func FilterLocations(list []Location, keyword string) []Location {
	result := make([]Location, 0, len(list))
	for _, l := range list {
		if !l.HasName() {
			continue
		}
		if l.Matches(keyword) {
			result = append(result, l)
		}
	}
	return result
}

// FlagGlyph derives the regional-indicator flag emoji for an ISO country
// code. Returns an empty string for malformed codes.
func FlagGlyph(countryCode string) string {
	if len(countryCode) != 2 {
		return ""
	}
	cc := strings.ToUpper(countryCode)
	var b strings.Builder
	for _, r := range cc {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// LocationDirectory is the port to the remote keyword-to-location lookup.
// A failed lookup yields an error, never a partial list; callers fall back
// to the static directory.
type LocationDirectory interface {
	// Search resolves a partial keyword against the directory and returns a
	// ranked list of normalized locations.
	Search(ctx context.Context, keyword string, category LookupCategory) ([]Location, error)
}
