package domain

import (
	"context"
	"fmt"
	"time"
)

// Result paging defaults for the external flight-search API.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// SortOrder is the requested ordering direction for dispatched results.
type SortOrder string

// Available sort orders.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SearchConfiguration is the materialized, validated snapshot handed to the
// dispatcher. It is immutable once built; a new configuration is created for
// every submission.
type SearchConfiguration struct {
	TripType    TripType             `json:"tripType"`
	Origin      Location             `json:"origin"`
	Destination Location             `json:"destination"`
	Dates       DateSelection        `json:"dates"`
	Legs        []Leg                `json:"legs,omitempty"`
	Travellers  TravellerComposition `json:"travellers"`
	CabinClass  CabinClass           `json:"cabinClass"`
	DirectOnly  bool                 `json:"directOnly"`
	SpecialFare string               `json:"specialFare,omitempty"`
}

// Validate checks the configuration before dispatch. It fails closed:
// every violated rule is reported as a field-level message and submission is
// blocked, never silently corrected.
func (c *SearchConfiguration) Validate() error {
	errs := &FieldErrors{}

	switch c.TripType {
	case TripMultiCity:
		c.validateLegs(errs)
	default:
		c.validateSingleLeg(errs)
	}

	if !c.CabinClass.IsValid() {
		errs.Add("cabinClass", "cabin class must be one of: economy, premium_economy, business, first")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (c *SearchConfiguration) validateSingleLeg(errs *FieldErrors) {
	if c.Origin.Code == "" {
		errs.Add("origin", "origin is required")
	}
	if c.Destination.Code == "" {
		errs.Add("destination", "destination is required")
	}
	if c.Origin.Code != "" && c.Origin.Code == c.Destination.Code {
		errs.Add("destination", "origin and destination must be different")
	}
	if !c.Dates.HasDeparture() {
		errs.Add("departureDate", "departure date is required")
	}
	if c.TripType == TripRoundTrip && !c.Dates.HasReturn() {
		errs.Add("returnDate", "return date is required for a round trip")
	}
}

func (c *SearchConfiguration) validateLegs(errs *FieldErrors) {
	if len(c.Legs) < MinLegs {
		errs.Add("legs", fmt.Sprintf("multi-city trips need at least %d legs", MinLegs))
		return
	}
	for i, leg := range c.Legs {
		field := fmt.Sprintf("legs[%d]", i)
		if leg.OriginCode == "" {
			errs.Add(field+".origin", "origin is required")
		}
		if leg.DestinationCode == "" {
			errs.Add(field+".destination", "destination is required")
		}
		if leg.Date.IsZero() {
			errs.Add(field+".date", "date is required")
		}
	}
}

// SearchRequest is the flat wire shape the external flight-search API
// accepts. Its internal fields are opaque to the state machine; the
// configuration only needs to map onto it.
type SearchRequest struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	DepartureDate string         `json:"departureDate"`
	ReturnDate    string         `json:"returnDate,omitempty"`
	Segments      []SegmentParam `json:"segments,omitempty"`
	Passengers    int            `json:"passengers"`
	Class         CabinClass     `json:"class"`
	Sort          string         `json:"sort,omitempty"`
	Order         SortOrder      `json:"order,omitempty"`
	DirectOnly    bool           `json:"directOnly,omitempty"`
	SpecialFare   string         `json:"specialFare,omitempty"`
	Page          int            `json:"page"`
	Limit         int            `json:"limit"`
}

// SegmentParam is one multi-city segment on the wire.
type SegmentParam struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// DispatchRequest maps the configuration onto the flat request shape.
// Dates are rendered through the canonical key so the wire never sees a
// timezone-shifted day.
func (c *SearchConfiguration) DispatchRequest() SearchRequest {
	req := SearchRequest{
		Passengers:  c.Travellers.Total(),
		Class:       c.CabinClass,
		Order:       OrderAsc,
		DirectOnly:  c.DirectOnly,
		SpecialFare: c.SpecialFare,
		Page:        DefaultPage,
		Limit:       DefaultLimit,
	}

	if c.TripType == TripMultiCity {
		req.Segments = make([]SegmentParam, 0, len(c.Legs))
		for _, leg := range c.Legs {
			req.Segments = append(req.Segments, SegmentParam{
				From: leg.OriginCode,
				To:   leg.DestinationCode,
				Date: DateKey(leg.Date),
			})
		}
		if len(c.Legs) > 0 {
			req.From = c.Legs[0].OriginCode
			req.To = c.Legs[len(c.Legs)-1].DestinationCode
			req.DepartureDate = DateKey(c.Legs[0].Date)
		}
		return req
	}

	req.From = c.Origin.Code
	req.To = c.Destination.Code
	req.DepartureDate = DateKey(c.Dates.Departure)
	if c.TripType == TripRoundTrip && c.Dates.HasReturn() {
		req.ReturnDate = DateKey(c.Dates.Return)
	}
	return req
}

// FlightOffer is one result row from the external API. The core treats it
// as opaque display data.
type FlightOffer struct {
	ID            string  `json:"id"`
	FlightNumber  string  `json:"flightNumber"`
	AirlineCode   string  `json:"airlineCode"`
	AirlineName   string  `json:"airlineName"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
}

// SearchResult is the external API response: outbound flights plus return
// flights when a round trip was requested.
type SearchResult struct {
	Flights       []FlightOffer `json:"flights"`
	ReturnFlights []FlightOffer `json:"returnFlights"`
}

// SearchDispatcher is the port to the external flight-search API.
type SearchDispatcher interface {
	// Dispatch sends a finalized request and returns the result lists.
	Dispatch(ctx context.Context, req SearchRequest) (*SearchResult, error)
}

// NewConfiguration builds an immutable snapshot from controller state.
// Legs are copied so later edits to the controller cannot mutate a
// submitted configuration.
func NewConfiguration(tripType TripType, origin, destination Location, dates DateSelection,
	legs []Leg, travellers TravellerComposition, cabin CabinClass, directOnly bool, specialFare string) SearchConfiguration {
	cfg := SearchConfiguration{
		TripType:    tripType,
		Origin:      origin,
		Destination: destination,
		Dates:       dates,
		Travellers:  travellers,
		CabinClass:  cabin,
		DirectOnly:  directOnly,
		SpecialFare: specialFare,
	}
	if tripType == TripMultiCity {
		cfg.Legs = make([]Leg, len(legs))
		copy(cfg.Legs, legs)
	}
	return cfg
}

// RecentFrom derives the recent-search entry recorded after a successful
// submission.
func (c *SearchConfiguration) RecentFrom(now time.Time) RecentSearchEntry {
	entry := RecentSearchEntry{
		OriginCode:      c.Origin.Code,
		DestinationCode: c.Destination.Code,
		OriginCity:      c.Origin.CityName,
		DestinationCity: c.Destination.CityName,
		Timestamp:       now,
	}
	if c.Dates.HasDeparture() {
		entry.Date = DateKey(c.Dates.Departure)
	}
	if c.TripType == TripMultiCity && len(c.Legs) > 0 {
		first, last := c.Legs[0], c.Legs[len(c.Legs)-1]
		entry.OriginCode, entry.OriginCity = first.OriginCode, first.OriginCity
		entry.DestinationCode, entry.DestinationCity = last.DestinationCode, last.DestinationCity
		entry.Date = DateKey(first.Date)
	}
	return entry
}
