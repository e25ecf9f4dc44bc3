package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivePanelIsOpen(t *testing.T) {
	assert.False(t, NoPanel.IsOpen())
	assert.False(t, ActivePanel{}.IsOpen())
	assert.True(t, ActivePanel{Kind: PanelOrigin}.IsOpen())
	assert.True(t, CalendarPanel(FieldDeparture).IsOpen())
}

func TestCalendarPanelConstructors(t *testing.T) {
	p := CalendarPanel(FieldReturn)
	assert.Equal(t, PanelCalendar, p.Kind)
	assert.Equal(t, FieldReturn, p.Field)

	lp := LegCalendarPanel(2)
	assert.Equal(t, PanelCalendar, lp.Kind)
	assert.Equal(t, FieldLeg, lp.Field)
	assert.Equal(t, 2, lp.LegIndex)
}
