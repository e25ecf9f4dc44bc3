package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripdesk/tripsearch/internal/domain"
)

func TestTravellerEditorAppliesOnlyOnApply(t *testing.T) {
	committed := domain.TravellerComposition{Adults: 2, Children: 1}
	e := OpenTravellerEditor(committed, domain.CabinEconomy)

	e.SetAdults(4)
	e.SetInfants(2)
	e.SetCabinClass(domain.CabinBusiness)

	// The working copy moved, the seed value did not.
	assert.Equal(t, domain.TravellerComposition{Adults: 4, Children: 1, Infants: 2}, e.Composition())
	assert.Equal(t, domain.CabinBusiness, e.CabinClass())
	assert.Equal(t, domain.TravellerComposition{Adults: 2, Children: 1}, committed)

	travellers, cabin := e.Apply()
	assert.Equal(t, domain.TravellerComposition{Adults: 4, Children: 1, Infants: 2}, travellers)
	assert.Equal(t, domain.CabinBusiness, cabin)
}

func TestTravellerEditorClampsThroughDomainRules(t *testing.T) {
	e := OpenTravellerEditor(domain.DefaultTravellers(), domain.CabinEconomy)

	e.SetAdults(3)
	e.SetInfants(3)
	e.SetAdults(1)

	got := e.Composition()
	assert.Equal(t, 1, got.Adults)
	assert.Equal(t, 1, got.Infants)

	e.SetChildren(20)
	assert.Equal(t, 8, e.Composition().Children)
}

func TestTravellerEditorInvalidCabinFallsBackToEconomy(t *testing.T) {
	e := OpenTravellerEditor(domain.DefaultTravellers(), domain.CabinFirst)

	e.SetCabinClass(domain.CabinClass("cargo"))

	assert.Equal(t, domain.CabinEconomy, e.CabinClass())
}
