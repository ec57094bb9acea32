// Package schedule implements the time-window constraint engine: selectable
// time-option generation, start/end clamping against per-request-type windows,
// request-type default derivation, and month visibility filtering.
package schedule

import (
	"fmt"
	"time"

	"timecal/internal/model"
)

// Edge identifies which endpoint of a range is being edited.
type Edge string

const (
	EdgeFrom Edge = "from"
	EdgeTo   Edge = "to"
)

// DefaultMinuteStep is the option-list granularity when none is configured.
const DefaultMinuteStep = 30

func timeLabel(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// labelsForRange enumerates minute-stepped labels from range start to range
// end, hour by hour. When the closing minute is off the step grid the exact
// boundary label is appended once, so the window close is always selectable.
//
// Overtime requests must span a non-zero interval strictly inside the window:
// the from list may not offer the window close (last label and any off-grid
// boundary are dropped) and the to list may not offer the window open (first
// label dropped).
func labelsForRange(r model.TimeRange, step int, edge Edge, requestType model.RequestType) []string {
	var labels []string
	boundaryAppended := false
	for hour := r.From.Hour; hour <= r.To.Hour; hour++ {
		startMinute := 0
		if hour == r.From.Hour {
			startMinute = r.From.Minute
		}
		endMinute := 59
		lastHour := hour == r.To.Hour
		if lastHour {
			endMinute = r.To.Minute
		}
		for minute := startMinute; minute <= endMinute; minute += step {
			labels = append(labels, timeLabel(hour, minute))
		}
		if lastHour && endMinute%step != 0 {
			labels = append(labels, timeLabel(hour, endMinute))
			boundaryAppended = true
		}
	}

	if requestType == model.RequestTypeOvertime && len(labels) > 0 {
		if edge == EdgeFrom {
			if boundaryAppended {
				labels = labels[:len(labels)-1]
			}
			if len(labels) > 0 {
				labels = labels[:len(labels)-1]
			}
		} else {
			labels = labels[1:]
		}
	}

	return labels
}

// fullDayLabels is the unconstrained default: every step-aligned label of the day.
func fullDayLabels(step int) []string {
	labels := make([]string, 0, 24*(60/step))
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += step {
			labels = append(labels, timeLabel(hour, minute))
		}
	}
	return labels
}

// rangeAdmitsFrom reports whether the chosen from time (taken from day's
// clock time) falls inside the window, making the range an eligible producer
// of to options.
func rangeAdmitsFrom(r model.TimeRange, day time.Time) bool {
	hour, minute := day.Hour(), day.Minute()
	if hour < r.From.Hour {
		return false
	}
	return hour < r.To.Hour || (hour == r.To.Hour && minute <= r.To.Minute)
}

// Options generates the ordered list of selectable "HH:mm" labels for the
// given request type, day and edge. With no settings or no request type the
// full unconstrained day is offered; with settings but no matching policy the
// list is empty (request type misconfigured).
func Options(day *time.Time, step int, requestType model.RequestType, settings model.TimeManagementSettings, edge Edge) []string {
	if step <= 0 {
		step = DefaultMinuteStep
	}
	if settings == nil || requestType == "" {
		return fullDayLabels(step)
	}

	policy, ok := settings.PolicyFor(requestType)
	if !ok {
		return nil
	}

	var labels []string
	for _, r := range policy.Ranges {
		if edge == EdgeTo && day != nil {
			if !rangeAdmitsFrom(r, *day) {
				continue
			}
		}
		labels = append(labels, labelsForRange(r, step, edge, requestType)...)
	}
	return labels
}
