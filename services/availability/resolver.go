// Package availability resolves an employee's bookable time slots from the
// weekly availability template carried on the employee record. The template
// is static: the same employee and weekday always resolve to the same slots.
package availability

import (
	"fmt"
	"time"

	"meliyah/models"
)

// weekdayLabels maps Go weekdays to the German labels used as calendar keys.
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// ResolveSlots returns the ordered slot sequence for the given weekday. A
// weekday missing from the calendar yields an empty sequence, meaning the
// employee is fully unavailable that day. The returned slice is a copy, so
// callers can never mutate the calendar through it.
func ResolveSlots(employee models.Employee, weekday string) []models.TimeSlot {
	template, ok := employee.Availability[weekday]
	if !ok {
		return []models.TimeSlot{}
	}
	slots := make([]models.TimeSlot, len(template))
	copy(slots, template)
	return slots
}

// ResolveSlotsForDate resolves slots for a concrete calendar date.
func ResolveSlotsForDate(employee models.Employee, date string) ([]models.TimeSlot, error) {
	weekday, err := WeekdayLabel(date)
	if err != nil {
		return nil, err
	}
	return ResolveSlots(employee, weekday), nil
}

// SlotAvailable reports whether the employee has a free slot at the given
// weekday and time label. Unknown weekdays and unknown time labels count as
// unavailable.
func SlotAvailable(employee models.Employee, weekday, timeLabel string) bool {
	for _, slot := range ResolveSlots(employee, weekday) {
		if slot.Time == timeLabel {
			return slot.Available
		}
	}
	return false
}

// WeekdayLabel maps an ISO date ("2006-01-02") to the calendar's weekday
// label.
func WeekdayLabel(date string) (string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return weekdayLabels[day.Weekday()], nil
}
