package schedule

import (
	"time"

	"timecal/internal/model"
)

// Range is a start/end pair under edit. Either endpoint may be unset.
type Range struct {
	From *time.Time
	To   *time.Time
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// onHour returns src's calendar date at hour:00.
func onHour(src time.Time, hour int) time.Time {
	return time.Date(src.Year(), src.Month(), src.Day(), hour, 0, 0, 0, src.Location())
}

func rangeContaining(ranges []model.TimeRange, t time.Time) (model.TimeRange, bool) {
	for _, r := range ranges {
		if r.Contains(t) {
			return r, true
		}
	}
	return model.TimeRange{}, false
}

// Clamp repairs the (from, to) pair after one edge was edited to selectedDay
// so it satisfies the allowed windows for the request type. With incomplete
// input or no applicable policy the pair passes through unchanged.
//
// Overtime windows are enforced strictly: the pair is kept inside the single
// window containing from, the interval stays non-empty, and both endpoints
// stay on the same calendar day. Other request types only resolve from == to
// collisions and restore ordering.
func Clamp(selectedDay time.Time, current Range, edge Edge, settings model.TimeManagementSettings, requestType model.RequestType, step int) Range {
	if current.From == nil || current.To == nil || requestType == "" {
		return current
	}
	policy, ok := settings.PolicyFor(requestType)
	if !ok {
		return current
	}
	if step <= 0 {
		step = DefaultMinuteStep
	}
	stepSize := time.Duration(step) * time.Minute

	from := *current.From
	to := *current.To
	if edge == EdgeFrom {
		from = selectedDay
	} else {
		to = selectedDay
	}

	if policy.Covers(model.RequestTypeOvertime) {
		window, ok := rangeContaining(policy.Ranges, from)
		if !ok {
			// No enforceable window for the chosen start.
			return Range{From: &from, To: &to}
		}

		windowFrom := window.From.On(to)
		windowTo := window.To.On(to)
		if to.After(windowTo) || to.Before(windowFrom) {
			to = windowTo
		}

		if from.Equal(to) {
			if to.Equal(windowTo) {
				from = from.Add(-stepSize)
			} else {
				to = to.Add(stepSize)
			}
		}

		// Overtime spans may not cross midnight: force both endpoints onto
		// the edited edge's day, snapping the other edge on the hour.
		if !sameDate(from, to) {
			if edge == EdgeFrom {
				to = onHour(from, from.Hour())
			} else {
				from = onHour(to, to.Hour())
			}
		}

		if from.After(to) {
			from, to = to, from
		}
		return Range{From: &from, To: &to}
	}

	if from.Equal(to) {
		// A click on the exact close of a window means "end here"; back the
		// start off one step instead of spilling past the window.
		if _, atClose := windowClosingAt(policy.Ranges, to); atClose {
			from = to.Add(-stepSize)
		} else {
			to = to.Add(stepSize)
		}
	}
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: &from, To: &to}
}

// windowClosingAt finds a range whose close, projected onto t's day, equals t.
func windowClosingAt(ranges []model.TimeRange, t time.Time) (model.TimeRange, bool) {
	for _, r := range ranges {
		if r.To.On(t).Equal(t) {
			return r, true
		}
	}
	return model.TimeRange{}, false
}
