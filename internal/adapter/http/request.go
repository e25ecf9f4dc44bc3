// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tripdesk/tripsearch/internal/domain"
)

// SearchTripsRequest represents the request body for trip search submission.
type SearchTripsRequest struct {
	// TripType is one of: oneway, roundtrip, multicity
	TripType string `json:"tripType"`

	// Origin is the departure location (single-leg trips)
	Origin *LocationDTO `json:"origin,omitempty"`

	// Destination is the arrival location (single-leg trips)
	Destination *LocationDTO `json:"destination,omitempty"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate,omitempty"`

	// ReturnDate is the return date in YYYY-MM-DD format (round trips only)
	ReturnDate string `json:"returnDate,omitempty"`

	// Legs are the ordered segments of a multi-city trip (2-5)
	Legs []LegDTO `json:"legs,omitempty"`

	// Adults is the number of adult passengers (1-9)
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children,omitempty"`

	// Infants is the number of lap infants (at most one per adult)
	Infants int `json:"infants,omitempty"`

	// CabinClass is one of: economy, premium_economy, business, first
	CabinClass string `json:"cabinClass,omitempty"`

	// DirectOnly restricts results to non-stop flights
	DirectOnly bool `json:"directOnly,omitempty"`

	// SpecialFare is an optional fare category (e.g., "student")
	SpecialFare string `json:"specialFare,omitempty"`
}

// LocationDTO identifies one endpoint of a trip.
type LocationDTO struct {
	// Code is the 3-letter IATA code (e.g., "BOM")
	Code string `json:"code"`

	// CityName is the display name of the city
	CityName string `json:"cityName,omitempty"`
}

// LegDTO represents one multi-city segment.
type LegDTO struct {
	// Origin is the departure location of this leg
	Origin LocationDTO `json:"origin"`

	// Destination is the arrival location of this leg
	Destination LocationDTO `json:"destination"`

	// Date is the travel date in YYYY-MM-DD format
	Date string `json:"date"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid cabin classes. Empty is valid and defaults to economy.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
	"":                true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the wire-level shape of the request: codes, date formats,
// passenger counts. Trip-level rules (required fields per trip type, date
// ordering) are enforced again by the domain configuration, so nothing
// invalid can slip through a missed edge here.
func (r *SearchTripsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateTripType(errs)

	if domain.ParseTripType(r.TripType) == domain.TripMultiCity {
		r.validateLegs(errs)
	} else {
		r.validateEndpoints(errs)
		r.validateDates(errs)
	}

	r.validatePassengers(errs)
	r.validateCabinClass(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchTripsRequest) validateTripType(errs *ValidationErrors) {
	if r.TripType == "" {
		errs.Add("tripType", "tripType is required")
		return
	}
	if !domain.TripType(r.TripType).IsValid() {
		errs.Add("tripType", "tripType must be one of: oneway, roundtrip, multicity")
	}
}

func (r *SearchTripsRequest) validateEndpoints(errs *ValidationErrors) {
	if r.Origin == nil || r.Origin.Code == "" {
		errs.Add("origin", "origin is required")
	} else {
		code := strings.ToUpper(r.Origin.Code)
		if !airportCodePattern.MatchString(code) {
			errs.Add("origin", "origin code must be a valid 3-letter IATA airport code")
		}
		r.Origin.Code = code
	}

	if r.Destination == nil || r.Destination.Code == "" {
		errs.Add("destination", "destination is required")
	} else {
		code := strings.ToUpper(r.Destination.Code)
		if !airportCodePattern.MatchString(code) {
			errs.Add("destination", "destination code must be a valid 3-letter IATA airport code")
		}
		r.Destination.Code = code
	}

	if r.Origin != nil && r.Destination != nil &&
		r.Origin.Code != "" && r.Origin.Code == r.Destination.Code {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchTripsRequest) validateDates(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
	} else if !validDateKey(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be a valid date in YYYY-MM-DD format")
	}

	if domain.ParseTripType(r.TripType) == domain.TripRoundTrip {
		if r.ReturnDate == "" {
			errs.Add("returnDate", "returnDate is required for a round trip")
		} else if !validDateKey(r.ReturnDate) {
			errs.Add("returnDate", "returnDate must be a valid date in YYYY-MM-DD format")
		} else if validDateKey(r.DepartureDate) && r.ReturnDate < r.DepartureDate {
			errs.Add("returnDate", "returnDate cannot be before departureDate")
		}
	}
}

func (r *SearchTripsRequest) validateLegs(errs *ValidationErrors) {
	if len(r.Legs) < domain.MinLegs {
		errs.Add("legs", "multi-city trips need at least 2 legs")
		return
	}
	if len(r.Legs) > domain.MaxLegs {
		errs.Add("legs", "multi-city trips allow at most 5 legs")
		return
	}
	for i := range r.Legs {
		leg := &r.Legs[i]
		field := legField(i)

		if leg.Origin.Code == "" {
			errs.Add(field+".origin", "origin is required")
		} else {
			leg.Origin.Code = strings.ToUpper(leg.Origin.Code)
			if !airportCodePattern.MatchString(leg.Origin.Code) {
				errs.Add(field+".origin", "origin code must be a valid 3-letter IATA airport code")
			}
		}

		if leg.Destination.Code == "" {
			errs.Add(field+".destination", "destination is required")
		} else {
			leg.Destination.Code = strings.ToUpper(leg.Destination.Code)
			if !airportCodePattern.MatchString(leg.Destination.Code) {
				errs.Add(field+".destination", "destination code must be a valid 3-letter IATA airport code")
			}
		}

		if leg.Date == "" {
			errs.Add(field+".date", "date is required")
		} else if !validDateKey(leg.Date) {
			errs.Add(field+".date", "date must be a valid date in YYYY-MM-DD format")
		}
	}
}

func (r *SearchTripsRequest) validatePassengers(errs *ValidationErrors) {
	if r.Adults < 1 {
		errs.Add("adults", "at least one adult is required")
	}
	if r.Children < 0 {
		errs.Add("children", "children cannot be negative")
	}
	if r.Infants < 0 {
		errs.Add("infants", "infants cannot be negative")
	}
	if r.Adults+r.Children > domain.MaxSeated {
		errs.Add("adults", "adults and children combined cannot exceed 9")
	}
	if r.Infants > r.Adults {
		errs.Add("infants", "each infant must be accompanied by an adult")
	}
}

func (r *SearchTripsRequest) validateCabinClass(errs *ValidationErrors) {
	if !validCabinClasses[strings.ToLower(r.CabinClass)] {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}
}

func validDateKey(key string) bool {
	if !datePattern.MatchString(key) {
		return false
	}
	_, err := time.Parse(domain.DateKeyLayout, key)
	return err == nil
}

func legField(i int) string {
	return fmt.Sprintf("legs[%d]", i)
}
