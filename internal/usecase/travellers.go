package usecase

import "github.com/tripdesk/tripsearch/internal/domain"

// TravellerEditor is a scoped edit session over the traveller panel.
// Opening the panel copies the committed state into a working copy; edits
// mutate only the copy, and the parent state changes on Apply alone.
// Dropping the editor without Apply discards every edit.
type TravellerEditor struct {
	working domain.TravellerComposition
	cabin   domain.CabinClass
}

// OpenTravellerEditor starts an edit session seeded with the committed
// composition and cabin class.
func OpenTravellerEditor(current domain.TravellerComposition, cabin domain.CabinClass) *TravellerEditor {
	return &TravellerEditor{working: current, cabin: cabin}
}

// SetAdults clamps n to [1, 9-children] and clamps infants down if they now
// exceed the adult count.
func (e *TravellerEditor) SetAdults(n int) {
	e.working = e.working.WithAdults(n)
}

// SetChildren clamps n to [0, 9-adults].
func (e *TravellerEditor) SetChildren(n int) {
	e.working = e.working.WithChildren(n)
}

// SetInfants clamps n to [0, adults].
func (e *TravellerEditor) SetInfants(n int) {
	e.working = e.working.WithInfants(n)
}

// SetCabinClass assigns the cabin class. Invalid values fall back to
// economy.
func (e *TravellerEditor) SetCabinClass(c domain.CabinClass) {
	if !c.IsValid() {
		c = domain.CabinEconomy
	}
	e.cabin = c
}

// Composition returns the working copy, for rendering the open panel.
func (e *TravellerEditor) Composition() domain.TravellerComposition {
	return e.working
}

// CabinClass returns the working cabin class.
func (e *TravellerEditor) CabinClass() domain.CabinClass {
	return e.cabin
}

// Apply commits the working copy. The caller merges the returned values
// into the parent state and closes the panel.
func (e *TravellerEditor) Apply() (domain.TravellerComposition, domain.CabinClass) {
	return e.working, e.cabin
}
