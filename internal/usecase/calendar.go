// Package usecase contains the business logic for the trip search flow:
// the calendar engine, the traveller edit session, the debounced location
// resolver, and the top-level search controller that orchestrates them.
package usecase

import (
	"time"

	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
)

// ClickOutcome tells the caller what a calendar click did.
type ClickOutcome string

// Possible click outcomes.
const (
	// ClickIgnored means the click changed nothing (past-dated cell).
	ClickIgnored ClickOutcome = "ignored"

	// ClickUpdated means the selection changed but more input is expected;
	// the calendar stays open.
	ClickUpdated ClickOutcome = "updated"

	// ClickComplete means the selection is final; the caller should close
	// the calendar and advance focus.
	ClickComplete ClickOutcome = "complete"
)

// ClickContext carries the state the click protocol depends on.
type ClickContext struct {
	// Field is the date field the calendar is editing
	Field domain.DateField

	// TripType is the current trip type of the search form
	TripType domain.TripType
}

// CalendarEngine drives the dual-month calendar. Its only stored state is
// the leftmost visible month; the right month is always the next one.
// Selection lives with the caller and flows through Click.
type CalendarEngine struct {
	visibleMonth time.Time
	clock        timeutil.Clock
}

// NewCalendarEngine creates an engine showing the month of start on the
// left. A zero start positions the calendar at the current month.
func NewCalendarEngine(clock timeutil.Clock, start time.Time) *CalendarEngine {
	if start.IsZero() {
		start = clock.Now()
	}
	return &CalendarEngine{
		visibleMonth: firstOfMonth(start),
		clock:        clock,
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// VisibleMonths returns the two consecutively displayed months.
func (e *CalendarEngine) VisibleMonths() (left, right time.Time) {
	return e.visibleMonth, e.visibleMonth.AddDate(0, 1, 0)
}

// Navigate shifts the visible month pair by delta months. It never touches
// the selection.
func (e *CalendarEngine) Navigate(delta int) {
	e.visibleMonth = e.visibleMonth.AddDate(0, delta, 0)
}

// ShowMonth repositions the calendar so that t's month is on the left.
func (e *CalendarEngine) ShowMonth(t time.Time) {
	if !t.IsZero() {
		e.visibleMonth = firstOfMonth(t)
	}
}

// Click applies the cell-click protocol to the current selection and
// returns the next selection plus an outcome.
//
// For a leg field the caller passes the leg's date as sel.Departure; the
// click is a single-date assignment and always completes.
func (e *CalendarEngine) Click(sel domain.DateSelection, date time.Time, ctx ClickContext) (domain.DateSelection, ClickOutcome) {
	if domain.IsPast(date, e.clock.Now()) {
		return sel, ClickIgnored
	}

	roundTrip := ctx.TripType == domain.TripRoundTrip

	switch {
	case ctx.Field == domain.FieldLeg:
		sel.Departure = date
		return sel, ClickComplete

	case ctx.Field == domain.FieldDeparture:
		sel.Departure = date
		if roundTrip {
			// A new departure invalidates a previously chosen return.
			sel.Return = time.Time{}
			return sel, ClickUpdated
		}
		return sel, ClickComplete

	case ctx.Field == domain.FieldReturn && !roundTrip:
		// Single-date field outside round-trip mode.
		sel.Departure = date
		return sel, ClickComplete

	default: // return field, round trip
		if !sel.HasDeparture() {
			// Recover from an inconsistent state: anchor the range first.
			sel.Departure = date
			return sel, ClickUpdated
		}
		if domain.IsBefore(date, sel.Departure) {
			// The user is redefining the range's start.
			sel.Departure = date
			sel.Return = time.Time{}
			return sel, ClickUpdated
		}
		sel.Return = date
		return sel, ClickComplete
	}
}

// DayCell is the render-ready derivation for one calendar day. It is
// recomputed per render and never stored.
type DayCell struct {
	Date     time.Time `json:"date"`
	Key      string    `json:"key"`
	Past     bool      `json:"past"`
	Selected bool      `json:"selected"`
	InRange  bool      `json:"inRange"`
	Weekend  bool      `json:"weekend"`
	FareHint int       `json:"fareHint"`
}

// MonthCells derives the day cells for every day of the given month against
// the current selection. InRange marks days strictly between departure and
// return, for round-trip highlighting.
func (e *CalendarEngine) MonthCells(month time.Time, sel domain.DateSelection) []DayCell {
	today := e.clock.Now()
	first := firstOfMonth(month)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		key := domain.DateKey(date)

		selected := (sel.HasDeparture() && domain.IsSameDay(date, sel.Departure)) ||
			(sel.HasReturn() && domain.IsSameDay(date, sel.Return))

		inRange := false
		if sel.HasDeparture() && sel.HasReturn() && !selected {
			inRange = domain.IsInRange(date, sel.Departure, sel.Return)
		}

		wd := date.Weekday()
		cells = append(cells, DayCell{
			Date:     date,
			Key:      key,
			Past:     domain.IsPast(date, today),
			Selected: selected,
			InRange:  inRange,
			Weekend:  wd == time.Saturday || wd == time.Sunday,
			FareHint: domain.FareHint(key),
		})
	}
	return cells
}
