package schedule

import (
	"time"

	"timecal/internal/model"
)

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last representable instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// InMonth reports whether the instant falls within the closed interval
// [StartOfMonth(ref), EndOfMonth(ref)]. Grid cells and event badges must use
// this same test so the two never disagree about outside days.
func InMonth(t, ref time.Time) bool {
	return !t.Before(StartOfMonth(ref)) && !t.After(EndOfMonth(ref))
}

// VisibleEvents restricts events to the displayed month unless outside days
// are shown. Events without a start never survive the filter.
func VisibleEvents(events []model.CalendarEvent, ref time.Time, showOutsideDays bool) []model.CalendarEvent {
	if showOutsideDays {
		return events
	}
	visible := make([]model.CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.Start != nil && InMonth(*e.Start, ref) {
			visible = append(visible, e)
		}
	}
	return visible
}
