package domain

// PanelKind identifies which exclusive overlay is open.
type PanelKind string

// Available panel kinds.
const (
	PanelNone        PanelKind = "none"
	PanelOrigin      PanelKind = "origin"
	PanelDestination PanelKind = "destination"
	PanelCalendar    PanelKind = "calendar"
	PanelTravellers  PanelKind = "travellers"
)

// DateField identifies which date a calendar panel is editing.
type DateField string

// Available date fields.
const (
	FieldDeparture DateField = "departure"
	FieldReturn    DateField = "return"
	FieldLeg       DateField = "leg"
)

// ActivePanel is the single discriminated value describing the open overlay.
// At most one panel is open at any time; replacing the value closes every
// other panel, so mutual exclusion is structural rather than convention.
type ActivePanel struct {
	// Kind is the open panel, PanelNone when everything is closed
	Kind PanelKind `json:"kind"`

	// Field is the date field being edited when Kind is PanelCalendar
	Field DateField `json:"field,omitempty"`

	// LegIndex scopes a calendar or picker to a multi-city leg.
	// It is ignored for single-leg trip types.
	LegIndex int `json:"legIndex,omitempty"`
}

// NoPanel is the closed state.
var NoPanel = ActivePanel{Kind: PanelNone}

// CalendarPanel returns an ActivePanel for the given date field.
func CalendarPanel(field DateField) ActivePanel {
	return ActivePanel{Kind: PanelCalendar, Field: field}
}

// LegCalendarPanel returns an ActivePanel for the date of a multi-city leg.
func LegCalendarPanel(legIndex int) ActivePanel {
	return ActivePanel{Kind: PanelCalendar, Field: FieldLeg, LegIndex: legIndex}
}

// IsOpen reports whether any panel is open.
func (p ActivePanel) IsOpen() bool {
	return p.Kind != PanelNone && p.Kind != ""
}
