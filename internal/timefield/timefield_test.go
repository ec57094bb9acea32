package timefield

import (
	"testing"
	"time"

	"timecal/internal/clock"
)

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time { return c.now }

func (c *steppingClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestField(kind Kind, step int) (*Field, *steppingClock) {
	clk := &steppingClock{now: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)}
	return New(kind, step, clk), clk
}

func TestFirstDigitCommitsLeadingZero(t *testing.T) {
	f, _ := newTestField(Minutes, 1)
	if advance := f.PressDigit('7'); advance {
		t.Error("first digit must not advance focus")
	}
	if f.Value() != "07" {
		t.Errorf("value = %q, want 07", f.Value())
	}
}

func TestSecondDigitCombinesWithinWindow(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		digits string
		want   string
	}{
		{"minutes 4 then 5", Minutes, "45", "45"},
		{"hours 2 then 3", Hours24, "23", "23"},
		{"hours 2 then 9 clamps", Hours24, "29", "23"},
		{"minutes 7 then 5 clamps", Minutes, "75", "59"},
		{"12h 1 then 2", Hours12, "12", "12"},
		{"12h 1 then 0", Hours12, "10", "10"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, clk := newTestField(tc.kind, 1)
			f.PressDigit(rune(tc.digits[0]))
			clk.advance(500 * time.Millisecond)
			advance := f.PressDigit(rune(tc.digits[1]))
			if !advance {
				t.Error("completed entry should advance focus")
			}
			if f.Value() != tc.want {
				t.Errorf("value = %q, want %q", f.Value(), tc.want)
			}
		})
	}
}

func TestInvalid12HourCombinationRestartsEntry(t *testing.T) {
	f, clk := newTestField(Hours12, 1)
	f.PressDigit('1')
	clk.advance(time.Second)
	f.PressDigit('9') // "19" is not a 12-hour value; reinterpret as "09"
	if f.Value() != "09" {
		t.Errorf("value = %q, want 09", f.Value())
	}
}

func TestZeroThenDigitOn12HourClock(t *testing.T) {
	f, clk := newTestField(Hours12, 1)
	f.PressDigit('0') // clamps to the 12-hour minimum, shows 01
	if f.Value() != "01" {
		t.Fatalf("value after 0 = %q, want 01", f.Value())
	}
	clk.advance(time.Second)
	f.PressDigit('9')
	if f.Value() != "09" {
		t.Errorf("value = %q, want 09", f.Value())
	}
}

func TestBufferExpiresAfterTwoSeconds(t *testing.T) {
	f, clk := newTestField(Minutes, 1)
	f.PressDigit('4')
	clk.advance(BufferWindow + time.Millisecond)
	f.PressDigit('5') // window elapsed: starts a fresh entry
	if f.Value() != "05" {
		t.Errorf("value = %q, want 05", f.Value())
	}
}

func TestExpireKeepsCommittedValue(t *testing.T) {
	f, clk := newTestField(Minutes, 1)
	f.PressDigit('4')
	clk.advance(BufferWindow)
	f.Expire(clk.Now())
	if f.Value() != "04" {
		t.Errorf("value = %q, want 04 kept after expiry", f.Value())
	}
	if _, armed := f.Deadline(); armed {
		t.Error("buffer should be cleared after expiry")
	}
}

func TestArrowStepWrapsAtBounds(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		step  int
		start int
		up    bool
		want  string
	}{
		{"hours wrap forward", Hours24, 1, 23, true, "00"},
		{"hours wrap backward", Hours24, 1, 0, false, "23"},
		{"minutes step 30 wrap", Minutes, 30, 30, true, "00"},
		{"minutes wrap with overflow", Minutes, 15, 55, true, "10"},
		{"12h wrap forward", Hours12, 1, 12, true, "01"},
		{"12h wrap backward", Hours12, 1, 1, false, "12"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newTestField(tc.kind, tc.step)
			f.Set(tc.start)
			if tc.up {
				f.StepUp()
			} else {
				f.StepDown()
			}
			if f.Value() != tc.want {
				t.Errorf("value = %q, want %q", f.Value(), tc.want)
			}
		})
	}
}

func TestArrowStepResetsBuffer(t *testing.T) {
	f, clk := newTestField(Minutes, 5)
	f.PressDigit('1')
	f.StepUp()
	clk.advance(time.Millisecond)
	f.PressDigit('2') // buffer was reset, so this is a fresh first digit
	if f.Value() != "02" {
		t.Errorf("value = %q, want 02", f.Value())
	}
}

func TestApplyAndSetFromTime(t *testing.T) {
	base := time.Date(2026, time.March, 10, 8, 15, 0, 0, time.UTC)

	f := New(Hours24, 1, clock.Fixed(base))
	f.Set(19)
	if got := f.Apply(base, AM); got.Hour() != 19 {
		t.Errorf("hour = %d, want 19", got.Hour())
	}

	h12 := New(Hours12, 1, clock.Fixed(base))
	h12.SetFromTime(time.Date(2026, time.March, 10, 19, 0, 0, 0, time.UTC))
	if h12.Value() != "07" {
		t.Errorf("12-hour display = %q, want 07", h12.Value())
	}
	if got := h12.Apply(base, PM); got.Hour() != 19 {
		t.Errorf("PM apply hour = %d, want 19", got.Hour())
	}
}

func TestHour12To24(t *testing.T) {
	tests := []struct {
		hour   int
		period Period
		want   int
	}{
		{12, AM, 0},
		{12, PM, 12},
		{1, AM, 1},
		{1, PM, 13},
		{11, PM, 23},
	}
	for _, tc := range tests {
		if got := Hour12To24(tc.hour, tc.period); got != tc.want {
			t.Errorf("Hour12To24(%d, %s) = %d, want %d", tc.hour, tc.period, got, tc.want)
		}
	}
}
