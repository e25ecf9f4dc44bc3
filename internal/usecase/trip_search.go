package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripdesk/tripsearch/internal/domain"
	"github.com/tripdesk/tripsearch/internal/infrastructure/timeutil"
)

// TripSearchController is the top-level state machine of the search form.
// It owns the trip type, endpoints, dates, legs, traveller composition, and
// the single ActivePanel value, and orchestrates auto-advance between
// panels.
//
// State transitions run inside serialized events: every public method takes
// the controller lock, so opening one panel closes every other panel in the
// same update and two overlays can never be visibly open at once.
type TripSearchController struct {
	mu sync.Mutex

	tripType    domain.TripType
	origin      domain.Location
	destination domain.Location
	dates       domain.DateSelection
	legs        []domain.Leg
	travellers  domain.TravellerComposition
	cabin       domain.CabinClass
	directOnly  bool
	specialFare string

	panel    domain.ActivePanel
	calendar *CalendarEngine
	editor   *TravellerEditor

	submit *SearchSubmitter
	clock  timeutil.Clock
	log    zerolog.Logger

	results *domain.SearchResult
}

// ControllerConfig contains the collaborators of a controller.
type ControllerConfig struct {
	Dispatcher domain.SearchDispatcher
	Recent     domain.RecentStore
	Clock      timeutil.Clock
	Logger     zerolog.Logger
}

// NewTripSearchController creates a controller in its initial state:
// one-way trip, one adult in economy, no panel open.
func NewTripSearchController(cfg ControllerConfig) *TripSearchController {
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TripSearchController{
		tripType:   domain.TripOneWay,
		travellers: domain.DefaultTravellers(),
		cabin:      domain.CabinEconomy,
		panel:      domain.NoPanel,
		calendar:   NewCalendarEngine(clock, time.Time{}),
		submit:     NewSearchSubmitter(cfg.Dispatcher, cfg.Recent, clock, cfg.Logger),
		clock:      clock,
		log:        cfg.Logger,
	}
}

// setPanel replaces the active panel. Assignment of the single discriminated
// value is what closes every other panel.
func (c *TripSearchController) setPanel(p domain.ActivePanel) {
	if c.panel.Kind == domain.PanelTravellers && p.Kind != domain.PanelTravellers {
		// Leaving the traveller panel without Apply discards the edits.
		c.editor = nil
	}
	c.panel = p
	if p.Kind == domain.PanelTravellers && c.editor == nil {
		c.editor = OpenTravellerEditor(c.travellers, c.cabin)
	}
	if p.Kind == domain.PanelCalendar {
		c.calendar.ShowMonth(c.calendarAnchor(p))
	}
}

// calendarAnchor picks the month the calendar should open on.
func (c *TripSearchController) calendarAnchor(p domain.ActivePanel) time.Time {
	if p.Field == domain.FieldLeg && p.LegIndex < len(c.legs) && !c.legs[p.LegIndex].Date.IsZero() {
		return c.legs[p.LegIndex].Date
	}
	if p.Field == domain.FieldReturn && c.dates.HasReturn() {
		return c.dates.Return
	}
	if c.dates.HasDeparture() {
		return c.dates.Departure
	}
	return c.clock.Now()
}

// OpenPanel opens the given panel, closing all others synchronously.
func (c *TripSearchController) OpenPanel(p domain.ActivePanel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPanel(p)
}

// OutsideClick closes whatever panel is open. An open traveller edit
// session is discarded without applying.
func (c *TripSearchController) OutsideClick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPanel(domain.NoPanel)
}

// CommitOrigin stores the chosen origin. When its code differs from the
// current destination, focus auto-advances to the destination picker;
// otherwise the panel just closes.
func (c *TripSearchController) CommitOrigin(loc domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.origin = loc
	if loc.Code != c.destination.Code {
		c.setPanel(domain.ActivePanel{Kind: domain.PanelDestination})
		return
	}
	c.setPanel(domain.NoPanel)
}

// CommitDestination stores the chosen destination. When its code differs
// from the origin, focus auto-advances to the departure calendar; otherwise
// the panel just closes.
func (c *TripSearchController) CommitDestination(loc domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.destination = loc
	if loc.Code != c.origin.Code {
		c.setPanel(domain.CalendarPanel(domain.FieldDeparture))
		return
	}
	c.setPanel(domain.NoPanel)
}

// CommitLegOrigin stores the origin of a multi-city leg and advances to
// that leg's destination picker.
func (c *TripSearchController) CommitLegOrigin(legIndex int, loc domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if legIndex < 0 || legIndex >= len(c.legs) {
		return
	}
	c.legs[legIndex].OriginCode = loc.Code
	c.legs[legIndex].OriginCity = loc.CityName
	if loc.Code != c.legs[legIndex].DestinationCode {
		c.setPanel(domain.ActivePanel{Kind: domain.PanelDestination, LegIndex: legIndex})
		return
	}
	c.setPanel(domain.NoPanel)
}

// CommitLegDestination stores the destination of a multi-city leg and
// advances to that leg's calendar.
func (c *TripSearchController) CommitLegDestination(legIndex int, loc domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if legIndex < 0 || legIndex >= len(c.legs) {
		return
	}
	c.legs[legIndex].DestinationCode = loc.Code
	c.legs[legIndex].DestinationCity = loc.CityName
	if loc.Code != c.legs[legIndex].OriginCode {
		c.setPanel(domain.LegCalendarPanel(legIndex))
		return
	}
	c.setPanel(domain.NoPanel)
}

// ClickCalendar applies a day-cell click against the active calendar field
// and performs the resulting auto-advance. Clicks are ignored when no
// calendar panel is open.
func (c *TripSearchController) ClickCalendar(date time.Time) ClickOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.panel.Kind != domain.PanelCalendar {
		return ClickIgnored
	}

	if c.panel.Field == domain.FieldLeg {
		return c.clickLegCalendar(date)
	}

	ctx := ClickContext{Field: c.panel.Field, TripType: c.tripType}
	sel, outcome := c.calendar.Click(c.dates, date, ctx)
	c.dates = sel

	switch outcome {
	case ClickComplete:
		// Date entry finished; streamline into the traveller panel.
		c.setPanel(domain.ActivePanel{Kind: domain.PanelTravellers})
	case ClickUpdated:
		if c.tripType == domain.TripRoundTrip {
			// Departure anchored; the open calendar now awaits the return.
			c.panel.Field = domain.FieldReturn
		}
	}
	return outcome
}

func (c *TripSearchController) clickLegCalendar(date time.Time) ClickOutcome {
	idx := c.panel.LegIndex
	if idx < 0 || idx >= len(c.legs) {
		return ClickIgnored
	}
	legSel := domain.DateSelection{Departure: c.legs[idx].Date}
	ctx := ClickContext{Field: domain.FieldLeg, TripType: c.tripType}
	sel, outcome := c.calendar.Click(legSel, date, ctx)
	if outcome == ClickComplete {
		c.legs[idx].Date = sel.Departure
		c.setPanel(domain.NoPanel)
	}
	return outcome
}

// NavigateCalendar shifts the visible month pair without touching the
// selection.
func (c *TripSearchController) NavigateCalendar(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calendar.Navigate(delta)
}

// Editor returns the open traveller edit session, or nil when the panel is
// closed.
func (c *TripSearchController) Editor() *TravellerEditor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor
}

// ApplyTravellers commits the open edit session into the controller state
// and closes the panel. Submission stays an explicit user action, so there
// is no further auto-advance.
func (c *TripSearchController) ApplyTravellers() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editor == nil {
		return
	}
	c.travellers, c.cabin = c.editor.Apply()
	c.editor = nil
	c.panel = domain.NoPanel
}

// Swap exchanges origin and destination atomically, including cached
// descriptive labels. No panel opens or closes.
func (c *TripSearchController) Swap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.origin, c.destination = c.destination, c.origin
}

// SetTripType switches the trip type. Leaving round-trip clears the return
// date immediately. Entering multi-city seeds the leg sequence from the
// single-leg fields; leaving it keeps them untouched.
func (c *TripSearchController) SetTripType(t domain.TripType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !t.IsValid() || t == c.tripType {
		return
	}
	c.tripType = t

	if t != domain.TripRoundTrip {
		c.dates.Return = time.Time{}
	}
	if t == domain.TripMultiCity && len(c.legs) == 0 {
		first := domain.Leg{
			OriginCode:      c.origin.Code,
			OriginCity:      c.origin.CityName,
			DestinationCode: c.destination.Code,
			DestinationCity: c.destination.CityName,
			Date:            c.dates.Departure,
		}
		c.legs = []domain.Leg{first, first.NextLeg()}
	}
}

// OpenReturnCalendar is the return-field shortcut: it switches into
// round-trip mode and opens the return calendar in one transition.
func (c *TripSearchController) OpenReturnCalendar() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tripType = domain.TripRoundTrip
	c.setPanel(domain.CalendarPanel(domain.FieldReturn))
}

// AddLeg appends a leg chained from the previous one. Growing past the
// ceiling fails closed with ErrLegBounds.
func (c *TripSearchController) AddLeg() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// No legs to chain from outside multi-city mode.
	if len(c.legs) == 0 || len(c.legs) >= domain.MaxLegs {
		return domain.ErrLegBounds
	}
	last := c.legs[len(c.legs)-1]
	c.legs = append(c.legs, last.NextLeg())
	return nil
}

// RemoveLeg deletes the leg at index. Shrinking below the floor of two legs
// fails closed with ErrLegBounds.
func (c *TripSearchController) RemoveLeg(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.legs) <= domain.MinLegs {
		return domain.ErrLegBounds
	}
	if index < 0 || index >= len(c.legs) {
		return domain.WrapInvalidRequest("leg index %d out of range", index)
	}
	c.legs = append(c.legs[:index], c.legs[index+1:]...)
	return nil
}

// SetDirectOnly toggles the direct-flights-only filter flag.
func (c *TripSearchController) SetDirectOnly(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.directOnly = v
}

// SetSpecialFare sets the special fare code (student, senior, armed forces).
func (c *TripSearchController) SetSpecialFare(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specialFare = code
}

// Snapshot builds the immutable search configuration from the current
// state.
func (c *TripSearchController) Snapshot() domain.SearchConfiguration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *TripSearchController) snapshotLocked() domain.SearchConfiguration {
	return domain.NewConfiguration(c.tripType, c.origin, c.destination, c.dates,
		c.legs, c.travellers, c.cabin, c.directOnly, c.specialFare)
}

// Validate checks the current state against the submission rules without
// dispatching. It returns nil when a search may be submitted.
func (c *TripSearchController) Validate() error {
	cfg := c.Snapshot()
	return cfg.Validate()
}

// Submit validates the configuration, dispatches it to the flight-search
// API, and records the route in the recent-searches store.
//
// Validation failures block submission and are returned as FieldErrors; no
// dispatch call occurs. Dispatch failures reset the result lists to empty
// and surface the server-provided message; the controller stays usable and
// the user may resubmit.
func (c *TripSearchController) Submit(ctx context.Context, sessionID string) (*domain.SearchResult, error) {
	c.mu.Lock()
	cfg := c.snapshotLocked()
	c.mu.Unlock()

	result, err := c.submit.Submit(ctx, sessionID, cfg)
	if err != nil {
		if domain.IsValidationFailed(err) {
			// Blocked before dispatch; the previous results stay visible.
			return nil, err
		}
		c.mu.Lock()
		c.results = &domain.SearchResult{Flights: []domain.FlightOffer{}, ReturnFlights: []domain.FlightOffer{}}
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.results = result
	c.mu.Unlock()
	return result, nil
}

// RecentSearches reads the session's remembered routes, newest first.
func (c *TripSearchController) RecentSearches(ctx context.Context, sessionID string) ([]domain.RecentSearchEntry, error) {
	return c.submit.Recent(ctx, sessionID)
}

// Accessors for rendering and tests.

// TripType returns the current trip type.
func (c *TripSearchController) TripType() domain.TripType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tripType
}

// Origin returns the committed origin.
func (c *TripSearchController) Origin() domain.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.origin
}

// Destination returns the committed destination.
func (c *TripSearchController) Destination() domain.Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destination
}

// Dates returns the committed date selection.
func (c *TripSearchController) Dates() domain.DateSelection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dates
}

// Legs returns a copy of the multi-city leg sequence.
func (c *TripSearchController) Legs() []domain.Leg {
	c.mu.Lock()
	defer c.mu.Unlock()
	legs := make([]domain.Leg, len(c.legs))
	copy(legs, c.legs)
	return legs
}

// Travellers returns the committed traveller composition.
func (c *TripSearchController) Travellers() domain.TravellerComposition {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.travellers
}

// CabinClass returns the committed cabin class.
func (c *TripSearchController) CabinClass() domain.CabinClass {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cabin
}

// Panel returns the single active-panel value.
func (c *TripSearchController) Panel() domain.ActivePanel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panel
}

// Calendar exposes the calendar engine for render derivation.
func (c *TripSearchController) Calendar() *CalendarEngine {
	return c.calendar
}

// Results returns the last dispatch result, nil before the first search.
func (c *TripSearchController) Results() *domain.SearchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}
