package model

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock-time point within a day.
type TimeOfDay struct {
	Hour   int `bson:"hour" json:"hour"`
	Minute int `bson:"minute" json:"minute"`
}

// On projects the time-of-day onto the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Hour < other.Hour || (t.Hour == other.Hour && t.Minute < other.Minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TimeRange is an allowed clock-time window within a single day.
// From precedes To; ranges never wrap midnight.
type TimeRange struct {
	From TimeOfDay `bson:"from" json:"from"`
	To   TimeOfDay `bson:"to" json:"to"`
}

// Contains reports whether the instant lies within the window projected onto
// the instant's own calendar day, boundaries included.
func (r TimeRange) Contains(t time.Time) bool {
	from := r.From.On(t)
	to := r.To.On(t)
	return !t.Before(from) && !t.After(to)
}

// RequestTypePolicy binds one or more request types to a shared sequence of
// allowed time windows.
type RequestTypePolicy struct {
	Types  []RequestType `bson:"types" json:"types"`
	Ranges []TimeRange   `bson:"ranges" json:"ranges"`
}

// Covers reports whether the policy applies to the given request type.
func (p RequestTypePolicy) Covers(t RequestType) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// TimeManagementSettings maps request types to allowed daily time windows.
// Lookup is first-match over the ordered policies.
type TimeManagementSettings []RequestTypePolicy

// PolicyFor returns the first policy covering the request type.
func (s TimeManagementSettings) PolicyFor(t RequestType) (RequestTypePolicy, bool) {
	for _, p := range s {
		if p.Covers(t) {
			return p, true
		}
	}
	return RequestTypePolicy{}, false
}

// Validate rejects malformed settings: unknown request types, out-of-range
// clock values, and inverted or zero-width windows.
func (s TimeManagementSettings) Validate() error {
	for i, p := range s {
		if len(p.Types) == 0 {
			return fmt.Errorf("policy %d: no request types", i)
		}
		for _, t := range p.Types {
			if !t.Valid() {
				return fmt.Errorf("policy %d: unknown request type %q", i, t)
			}
		}
		if len(p.Ranges) == 0 {
			return fmt.Errorf("policy %d: no time ranges", i)
		}
		for j, r := range p.Ranges {
			for _, tod := range []TimeOfDay{r.From, r.To} {
				if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 {
					return fmt.Errorf("policy %d range %d: invalid time %s", i, j, tod)
				}
			}
			if !r.From.Before(r.To) {
				return fmt.Errorf("policy %d range %d: window %s-%s is empty or inverted", i, j, r.From, r.To)
			}
		}
	}
	return nil
}

// DateMatcher reports whether a date should be disabled in the date picker.
type DateMatcher func(time.Time) bool

// DisabledDatePickerSettings holds per-request-type disabled-date predicates.
// They are consumed by the picker, never computed by the engine.
type DisabledDatePickerSettings map[RequestType][]DateMatcher

// BeforeDay returns a matcher disabling every date strictly before day.
func BeforeDay(day time.Time) DateMatcher {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return func(t time.Time) bool { return t.Before(start) }
}
