package availability

import (
	"testing"

	"meliyah/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee() models.Employee {
	return models.Employee{
		ID:   "1",
		Name: "Sarah Weber",
		Availability: models.Availability{
			"Montag": {
				{Time: "09:00", Available: true},
				{Time: "10:00", Available: true},
				{Time: "11:00", Available: false},
				{Time: "14:00", Available: true},
				{Time: "15:00", Available: true},
			},
			"Dienstag": {
				{Time: "09:00", Available: true},
			},
		},
	}
}

func TestResolveSlotsKnownWeekday(t *testing.T) {
	slots := ResolveSlots(testEmployee(), "Montag")
	require.Len(t, slots, 5)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[2].Available)
}

func TestResolveSlotsUnknownWeekdayIsEmpty(t *testing.T) {
	slots := ResolveSlots(testEmployee(), "Sonntag")
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestResolveSlotsReturnsCopy(t *testing.T) {
	emp := testEmployee()
	slots := ResolveSlots(emp, "Montag")
	slots[0].Available = false
	assert.True(t, emp.Availability["Montag"][0].Available)
}

func TestResolveSlotsIsDeterministic(t *testing.T) {
	emp := testEmployee()
	first := ResolveSlots(emp, "Montag")
	second := ResolveSlots(emp, "Montag")
	assert.Equal(t, first, second)
}

func TestResolveSlotsForDate(t *testing.T) {
	// 2026-09-07 is a Monday.
	slots, err := ResolveSlotsForDate(testEmployee(), "2026-09-07")
	require.NoError(t, err)
	assert.Len(t, slots, 5)

	_, err = ResolveSlotsForDate(testEmployee(), "07.09.2026")
	assert.Error(t, err)
}

func TestSlotAvailable(t *testing.T) {
	emp := testEmployee()
	assert.True(t, SlotAvailable(emp, "Montag", "09:00"))
	assert.False(t, SlotAvailable(emp, "Montag", "11:00"), "blocked slot")
	assert.False(t, SlotAvailable(emp, "Montag", "12:00"), "unknown time label")
	assert.False(t, SlotAvailable(emp, "Sonntag", "09:00"), "day off")
}

func TestWeekdayLabel(t *testing.T) {
	cases := map[string]string{
		"2026-09-07": "Montag",
		"2026-09-08": "Dienstag",
		"2026-09-09": "Mittwoch",
		"2026-09-10": "Donnerstag",
		"2026-09-11": "Freitag",
		"2026-09-12": "Samstag",
		"2026-09-13": "Sonntag",
	}
	for date, want := range cases {
		got, err := WeekdayLabel(date)
		require.NoError(t, err)
		assert.Equal(t, want, got, date)
	}

	_, err := WeekdayLabel("not-a-date")
	assert.Error(t, err)
}
