// Package timefield implements the keyboard state machine behind discrete
// time fields: two-key buffered digit entry with a 2-second window, arrow-key
// stepping with wraparound, and 12/24-hour value handling.
package timefield

import (
	"fmt"
	"time"

	"timecal/internal/clock"
)

// Kind selects the legal range and semantics of a field.
type Kind int

const (
	Hours24 Kind = iota
	Hours12
	Minutes
	Seconds
)

// Period is the 12-hour clock half-day marker.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// BufferWindow is how long a first digit stays armed waiting for a second.
const BufferWindow = 2 * time.Second

func (k Kind) bounds() (min, max int) {
	switch k {
	case Hours24:
		return 0, 23
	case Hours12:
		return 1, 12
	default:
		return 0, 59
	}
}

// Field is one numeric time segment. The zero value is unusable; use New.
type Field struct {
	kind  Kind
	step  int
	clock clock.Clock

	value     int
	buffered  bool
	lastDigit rune
	deadline  time.Time
}

// New returns a field of the given kind stepping by step on arrow keys.
func New(kind Kind, step int, clk clock.Clock) *Field {
	if step <= 0 {
		step = 1
	}
	if clk == nil {
		clk = clock.System{}
	}
	f := &Field{kind: kind, step: step, clock: clk}
	min, _ := f.kind.bounds()
	f.value = min
	return f
}

// Value returns the committed value as a zero-padded display string.
func (f *Field) Value() string {
	return fmt.Sprintf("%02d", f.value)
}

// Set commits a raw value, clamped into the field's legal range, and resets
// the entry buffer.
func (f *Field) Set(value int) {
	min, max := f.kind.bounds()
	f.value = clampValue(value, min, max)
	f.buffered = false
}

func clampValue(v, min, max int) int {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

// wrapValue brings an overflowed value back into [min, max] the way repeated
// stepping would: 23 + step lands on min plus the overflow remainder.
func wrapValue(v, min, max, step int) int {
	if v > max {
		return min + (v-max-1)%step
	}
	if v < min {
		return max - (max-v)%step
	}
	return v
}

// PressDigit feeds one typed digit into the field. The first digit commits a
// leading-zero value and arms the buffer; a second digit inside the window
// combines with it. The returned advance flag tells the host to move focus to
// the next field after a completed two-digit entry.
func (f *Field) PressDigit(d rune) (advance bool) {
	if d < '0' || d > '9' {
		return false
	}
	now := f.clock.Now()
	if f.buffered && now.After(f.deadline) {
		f.buffered = false
	}

	if !f.buffered {
		f.Set(int(d - '0'))
		f.buffered = true
		f.lastDigit = d
		f.deadline = now.Add(BufferWindow)
		return false
	}

	combined := (f.value%10)*10 + int(d-'0')
	// On a 12-hour clock a buffered "1" followed by a digit that would form
	// an invalid hour restarts entry with the new digit instead.
	if f.kind == Hours12 && (combined > 12 || f.lastDigit == '0') {
		combined = int(d - '0')
	}
	f.Set(combined)
	f.lastDigit = d
	return true
}

// StepUp advances the value by the configured step, wrapping at the bounds.
// Arrow stepping always clears the entry buffer.
func (f *Field) StepUp() { f.stepBy(f.step) }

// StepDown decreases the value by the configured step, wrapping at the bounds.
func (f *Field) StepDown() { f.stepBy(-f.step) }

func (f *Field) stepBy(delta int) {
	min, max := f.kind.bounds()
	f.value = wrapValue(f.value+delta, min, max, f.step)
	f.buffered = false
}

// Expire clears the entry buffer once the window has elapsed. The committed
// single-digit value stays as is.
func (f *Field) Expire(now time.Time) {
	if f.buffered && !now.Before(f.deadline) {
		f.buffered = false
	}
}

// Deadline reports when the current buffer expires; the zero time and false
// mean no buffer is armed.
func (f *Field) Deadline() (time.Time, bool) {
	return f.deadline, f.buffered
}

// SetFromTime loads the field's segment from an instant.
func (f *Field) SetFromTime(t time.Time) {
	switch f.kind {
	case Hours24:
		f.Set(t.Hour())
	case Hours12:
		f.Set(displayHour12(t.Hour()))
	case Minutes:
		f.Set(t.Minute())
	default:
		f.Set(t.Second())
	}
}

// Apply writes the field's committed value onto the instant. The period is
// only consulted for 12-hour fields.
func (f *Field) Apply(t time.Time, period Period) time.Time {
	switch f.kind {
	case Hours24:
		return withHour(t, f.value)
	case Hours12:
		return withHour(t, Hour12To24(f.value, period))
	case Minutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), f.value, t.Second(), 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), f.value, 0, t.Location())
	}
}

func withHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, t.Minute(), t.Second(), 0, t.Location())
}

// Hour12To24 converts a 12-hour clock hour and period to a 24-hour hour.
// 12 AM is 00 and 12 PM is 12.
func Hour12To24(hour int, period Period) int {
	if period == PM {
		if hour == 12 {
			return 12
		}
		return hour + 12
	}
	if hour == 12 {
		return 0
	}
	return hour
}

// PeriodOf returns the half-day marker for a 24-hour clock hour.
func PeriodOf(hour int) Period {
	if hour >= 12 {
		return PM
	}
	return AM
}

// displayHour12 maps a 24-hour hour to its 12-hour display value.
func displayHour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}
