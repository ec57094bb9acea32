package schedule

import (
	"time"

	"timecal/internal/model"
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func withClockTime(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// DeriveDefaults recomputes an event's start/end after its request type
// changed. Stale past-dated requests are first shifted onto today keeping
// their clock times; otherwise the policy window active at now (or the
// policy's first window) is projected onto the event's start date. With no
// applicable policy the event is returned unchanged.
func DeriveDefaults(event model.CalendarEvent, requestType model.RequestType, settings model.TimeManagementSettings, now time.Time) model.CalendarEvent {
	today := startOfDay(now)

	if requestType != model.RequestTypeEditTimeSheet && event.Start != nil && event.End != nil {
		if event.Start.Before(today) || event.End.Before(today) {
			start := withClockTime(today, event.Start.Hour(), event.Start.Minute())
			end := withClockTime(today, event.End.Hour(), event.End.Minute())
			out := event
			out.Start = &start
			out.End = &end
			return out
		}
	}

	policy, ok := settings.PolicyFor(requestType)
	if ok && event.Start != nil && event.End != nil {
		window := policy.Ranges[0]
		if active, found := rangeContaining(policy.Ranges, now); found {
			window = active
		}
		start := window.From.On(*event.Start)
		end := window.To.On(*event.Start)
		out := event
		out.Start = &start
		out.End = &end
		return out
	}

	return event
}
