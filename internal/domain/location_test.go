package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationMatches(t *testing.T) {
	loc := Location{
		CityName:    "Mumbai",
		Code:        "BOM",
		DisplayName: "Chhatrapati Shivaji Maharaj International Airport",
	}

	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{name: "empty keyword matches everything", keyword: "", want: true},
		{name: "city prefix", keyword: "mum", want: true},
		{name: "city case insensitive", keyword: "MUMBAI", want: true},
		{name: "code lowercase", keyword: "bom", want: true},
		{name: "display name substring", keyword: "shivaji", want: true},
		{name: "no match", keyword: "delhi", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, loc.Matches(tt.keyword))
		})
	}
}

func TestFilterLocations(t *testing.T) {
	list := []Location{
		{CityName: "Mumbai", Code: "BOM"},
		{Code: "XXX"}, // nameless, must be dropped
		{CityName: "New Delhi", Code: "DEL"},
		{CityName: "Dubai", Code: "DXB"},
	}

	t.Run("drops nameless entries", func(t *testing.T) {
		got := FilterLocations(list, "")
		require.Len(t, got, 3)
		for _, l := range got {
			assert.True(t, l.HasName())
		}
	})

	t.Run("filters by keyword preserving order", func(t *testing.T) {
		got := FilterLocations(list, "de")
		require.Len(t, got, 1)
		assert.Equal(t, "DEL", got[0].Code)
	})

	t.Run("empty result is non-nil", func(t *testing.T) {
		got := FilterLocations(list, "zzz")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFlagGlyph(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "india", code: "IN", want: "\U0001F1EE\U0001F1F3"},
		{name: "lowercase accepted", code: "in", want: "\U0001F1EE\U0001F1F3"},
		{name: "united arab emirates", code: "AE", want: "\U0001F1E6\U0001F1EA"},
		{name: "empty", code: "", want: ""},
		{name: "too long", code: "IND", want: ""},
		{name: "digits rejected", code: "1N", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlagGlyph(tt.code))
		})
	}
}

func TestParseLookupCategory(t *testing.T) {
	assert.Equal(t, CategoryFlights, ParseLookupCategory("flights-airport"))
	assert.Equal(t, CategoryHotels, ParseLookupCategory("hotels-city"))
	assert.Equal(t, CategoryFlights, ParseLookupCategory(""))
	assert.Equal(t, CategoryFlights, ParseLookupCategory("trains"))
}
