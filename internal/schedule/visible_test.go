package schedule

import (
	"testing"
	"time"

	"timecal/internal/model"
)

func eventAt(start time.Time, title string) model.CalendarEvent {
	return model.CalendarEvent{Title: title, Start: &start}
}

func TestVisibleEventsFiltersOutsideMonth(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	events := []model.CalendarEvent{
		eventAt(time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC), "before"),
		eventAt(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "first instant"),
		eventAt(time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC), "mid"),
		eventAt(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC), "last day"),
		eventAt(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "after"),
		{Title: "no start"},
	}

	got := VisibleEvents(events, ref, false)
	want := []string{"first instant", "mid", "last day"}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("event %d = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestVisibleEventsShowOutsideDaysReturnsAll(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	events := []model.CalendarEvent{
		eventAt(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), "far away"),
		{Title: "no start"},
	}
	got := VisibleEvents(events, ref, true)
	if len(got) != len(events) {
		t.Errorf("got %d events, want all %d", len(got), len(events))
	}
}

func TestInMonthMatchesFilterBoundaries(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, time.March, 31, 23, 59, 59, 999999999, time.UTC), true},
		{time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC), false},
		{time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range tests {
		if got := InMonth(tc.at, ref); got != tc.want {
			t.Errorf("InMonth(%v) = %v, want %v", tc.at, got, tc.want)
		}
	}
}
