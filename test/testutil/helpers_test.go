package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-04-10")

	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, "2026-04-10", parsed.Format("2006-01-02"))
}

func TestPtr(t *testing.T) {
	v := Ptr("hello")
	assert.Equal(t, "hello", *v)

	n := Ptr(42)
	assert.Equal(t, 42, *n)
}

func TestAirport(t *testing.T) {
	loc := Airport("BOM", "Mumbai")

	assert.Equal(t, "BOM", loc.Code)
	assert.Equal(t, "Mumbai", loc.CityName)
	assert.Equal(t, "Mumbai (BOM)", loc.DisplayName)
	assert.True(t, loc.HasName())
}

func TestAirportIn(t *testing.T) {
	loc := AirportIn("DXB", "Dubai", "AE")

	assert.Equal(t, "AE", loc.CountryCode)
	assert.NotEmpty(t, loc.FlagGlyph)
}
