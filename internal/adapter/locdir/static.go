package locdir

import "github.com/tripdesk/tripsearch/internal/domain"

// StaticLocations is the built-in directory used when the keyword is too
// short for a remote lookup or the remote directory is unreachable.
// Ordering mirrors popularity on the storefront.
func StaticLocations() []domain.Location {
	return []domain.Location{
		{CityName: "Mumbai", Code: "BOM", DisplayName: "Chhatrapati Shivaji Maharaj International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "New Delhi", Code: "DEL", DisplayName: "Indira Gandhi International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Bengaluru", Code: "BLR", DisplayName: "Kempegowda International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Hyderabad", Code: "HYD", DisplayName: "Rajiv Gandhi International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Chennai", Code: "MAA", DisplayName: "Chennai International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Kolkata", Code: "CCU", DisplayName: "Netaji Subhas Chandra Bose International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Goa", Code: "GOI", DisplayName: "Goa International Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Pune", Code: "PNQ", DisplayName: "Pune Airport", CountryCode: "IN", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Dubai", Code: "DXB", DisplayName: "Dubai International Airport", CountryCode: "AE", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("AE")},
		{CityName: "Singapore", Code: "SIN", DisplayName: "Singapore Changi Airport", CountryCode: "SG", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("SG")},
		{CityName: "London", Code: "LHR", DisplayName: "Heathrow Airport", CountryCode: "GB", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("GB")},
		{CityName: "New York", Code: "JFK", DisplayName: "John F. Kennedy International Airport", CountryCode: "US", Subtype: domain.SubtypeAirport, FlagGlyph: domain.FlagGlyph("US")},
	}
}

// StaticCities is the hotels-city fallback list.
func StaticCities() []domain.Location {
	return []domain.Location{
		{CityName: "Mumbai", Code: "BOM", DisplayName: "Mumbai, Maharashtra", CountryCode: "IN", Subtype: domain.SubtypeCity, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "New Delhi", Code: "DEL", DisplayName: "New Delhi, Delhi", CountryCode: "IN", Subtype: domain.SubtypeCity, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Jaipur", Code: "JAI", DisplayName: "Jaipur, Rajasthan", CountryCode: "IN", Subtype: domain.SubtypeCity, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Udaipur", Code: "UDR", DisplayName: "Udaipur, Rajasthan", CountryCode: "IN", Subtype: domain.SubtypeCity, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Goa", Code: "GOI", DisplayName: "Goa", CountryCode: "IN", Subtype: domain.SubtypeCity, FlagGlyph: domain.FlagGlyph("IN")},
		{CityName: "Dubai", Code: "DXB", DisplayName: "Dubai", CountryCode: "AE", Subtype: domain.SubtypeCity, FlagGlyph: domain.FlagGlyph("AE")},
	}
}

// FallbackFor picks the static list matching a lookup category.
func FallbackFor(category domain.LookupCategory) []domain.Location {
	if category == domain.CategoryHotels {
		return StaticCities()
	}
	return StaticLocations()
}
