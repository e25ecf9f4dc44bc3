// Package http provides the HTTP handler layer for the trip search API.
package http

import (
	"strings"
	"time"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// ToDomainConfiguration converts a validated request into the immutable
// search configuration the submission pipeline expects. Dates arrive as
// canonical keys and are parsed pinned to noon UTC, so the configured day
// survives any later timezone conversion.
func ToDomainConfiguration(r *SearchTripsRequest) domain.SearchConfiguration {
	tripType := domain.ParseTripType(r.TripType)

	var origin, destination domain.Location
	if r.Origin != nil {
		origin = toDomainLocation(*r.Origin)
	}
	if r.Destination != nil {
		destination = toDomainLocation(*r.Destination)
	}

	dates := domain.DateSelection{
		Departure: parseDateOrZero(r.DepartureDate),
	}
	if tripType == domain.TripRoundTrip {
		dates.Return = parseDateOrZero(r.ReturnDate)
	}

	var legs []domain.Leg
	if tripType == domain.TripMultiCity {
		legs = make([]domain.Leg, 0, len(r.Legs))
		for _, l := range r.Legs {
			legs = append(legs, domain.Leg{
				OriginCode:      l.Origin.Code,
				OriginCity:      l.Origin.CityName,
				DestinationCode: l.Destination.Code,
				DestinationCity: l.Destination.CityName,
				Date:            parseDateOrZero(l.Date),
			})
		}
	}

	travellers := domain.DefaultTravellers().
		WithAdults(r.Adults).
		WithChildren(r.Children).
		WithInfants(r.Infants)

	return domain.NewConfiguration(
		tripType,
		origin,
		destination,
		dates,
		legs,
		travellers,
		// Validation accepts any casing; normalize before parsing so a
		// validated class is never silently downgraded to economy.
		domain.ParseCabinClass(strings.ToLower(r.CabinClass)),
		r.DirectOnly,
		r.SpecialFare,
	)
}

func toDomainLocation(l LocationDTO) domain.Location {
	return domain.Location{
		Code:     l.Code,
		CityName: l.CityName,
		Subtype:  domain.SubtypeAirport,
	}
}

// parseDateOrZero parses a canonical date key, returning the zero time for
// empty or malformed input. Format errors are already rejected by request
// validation before conversion runs.
func parseDateOrZero(key string) time.Time {
	if key == "" {
		return time.Time{}
	}
	t, err := domain.ParseDateKey(key)
	if err != nil {
		return time.Time{}
	}
	return t
}
