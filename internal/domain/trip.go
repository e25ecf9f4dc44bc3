package domain

import "time"

// TripType determines which fields are required and how many legs exist.
type TripType string

// Available trip types.
const (
	// TripOneWay is a single leg with a departure date only.
	TripOneWay TripType = "oneway"

	// TripRoundTrip is a single leg plus a return date.
	TripRoundTrip TripType = "roundtrip"

	// TripMultiCity holds an ordered sequence of 2-5 legs.
	TripMultiCity TripType = "multicity"
)

// IsValid checks if the trip type is a valid value.
func (t TripType) IsValid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripMultiCity:
		return true
	default:
		return false
	}
}

// ParseTripType converts a string to a TripType.
// Returns TripOneWay if the string is empty or invalid.
func ParseTripType(s string) TripType {
	t := TripType(s)
	if t.IsValid() {
		return t
	}
	return TripOneWay
}

// CabinClass is the travel class requested for all passengers.
type CabinClass string

// Available cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid checks if the cabin class is a valid value.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// ParseCabinClass converts a string to a CabinClass.
// Returns CabinEconomy if the string is empty or invalid.
func ParseCabinClass(s string) CabinClass {
	c := CabinClass(s)
	if c.IsValid() {
		return c
	}
	return CabinEconomy
}

// Multi-city leg bounds.
const (
	MinLegs = 2
	MaxLegs = 5
)

// Leg is one origin-destination pair with a date, used for multi-city
// itineraries.
type Leg struct {
	// OriginCode is the IATA code of the departure airport (e.g., "BOM")
	OriginCode string `json:"originCode"`

	// OriginCity is the display name of the departure city
	OriginCity string `json:"originCity"`

	// DestinationCode is the IATA code of the arrival airport
	DestinationCode string `json:"destinationCode"`

	// DestinationCity is the display name of the arrival city
	DestinationCity string `json:"destinationCity"`

	// Date is the travel date for this leg (zero when not yet chosen)
	Date time.Time `json:"date"`
}

// IsComplete reports whether every field required for dispatch is populated.
func (l Leg) IsComplete() bool {
	return l.OriginCode != "" && l.DestinationCode != "" && !l.Date.IsZero()
}

// NextLeg creates a new leg chained from this one: its origin defaults to
// this leg's destination.
func (l Leg) NextLeg() Leg {
	return Leg{
		OriginCode: l.DestinationCode,
		OriginCity: l.DestinationCity,
	}
}

// DateSelection holds the departure and optional return date of a single-leg
// trip. A zero time means unset.
//
// Invariants: Return is always zero unless the trip type is round-trip, and
// Return is never strictly before Departure.
type DateSelection struct {
	Departure time.Time `json:"departure"`
	Return    time.Time `json:"return"`
}

// HasDeparture reports whether a departure date has been chosen.
func (d DateSelection) HasDeparture() bool { return !d.Departure.IsZero() }

// HasReturn reports whether a return date has been chosen.
func (d DateSelection) HasReturn() bool { return !d.Return.IsZero() }

// Traveller count bounds.
const (
	MinAdults     = 1
	MaxSeated     = 9 // adults + children share the seated cap
	MinTravellers = 1
)

// TravellerComposition is the passenger make-up of a search.
//
// Invariants: adults+children <= 9 and infants <= adults. The With* methods
// are pure transitions that clamp rather than reject, so the invariants hold
// after any edit sequence.
type TravellerComposition struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// DefaultTravellers returns the initial composition: one adult.
func DefaultTravellers() TravellerComposition {
	return TravellerComposition{Adults: 1}
}

// WithAdults returns the composition with adults set to n, clamped to
// [1, 9-children]. If infants exceed the new adult count they are clamped
// down to match.
func (t TravellerComposition) WithAdults(n int) TravellerComposition {
	if n < MinAdults {
		n = MinAdults
	}
	if max := MaxSeated - t.Children; n > max {
		n = max
	}
	next := t
	next.Adults = n
	if next.Infants > n {
		next.Infants = n
	}
	return next
}

// WithChildren returns the composition with children set to n, clamped to
// [0, 9-adults].
func (t TravellerComposition) WithChildren(n int) TravellerComposition {
	if n < 0 {
		n = 0
	}
	if max := MaxSeated - t.Adults; n > max {
		n = max
	}
	next := t
	next.Children = n
	return next
}

// WithInfants returns the composition with infants set to n, clamped to
// [0, adults].
func (t TravellerComposition) WithInfants(n int) TravellerComposition {
	if n < 0 {
		n = 0
	}
	if n > t.Adults {
		n = t.Adults
	}
	next := t
	next.Infants = n
	return next
}

// Total returns the total passenger count, floored to 1 for dispatch.
func (t TravellerComposition) Total() int {
	total := t.Adults + t.Children + t.Infants
	if total < MinTravellers {
		return MinTravellers
	}
	return total
}
