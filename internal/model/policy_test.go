package model

import (
	"strings"
	"testing"
	"time"
)

func TestPolicyFor(t *testing.T) {
	settings := TimeManagementSettings{
		{
			Types:  []RequestType{RequestTypePaidLeave, RequestTypeRemoteWork},
			Ranges: []TimeRange{{From: TimeOfDay{Hour: 8}, To: TimeOfDay{Hour: 12}}},
		},
		{
			Types:  []RequestType{RequestTypeOvertime, RequestTypePaidLeave},
			Ranges: []TimeRange{{From: TimeOfDay{Hour: 19}, To: TimeOfDay{Hour: 23}}},
		},
	}

	p, ok := settings.PolicyFor(RequestTypeOvertime)
	if !ok {
		t.Fatal("expected a policy for overtime")
	}
	if p.Ranges[0].From.Hour != 19 {
		t.Errorf("got window starting at %d, want 19", p.Ranges[0].From.Hour)
	}

	// First match wins when two policies cover the same type.
	p, ok = settings.PolicyFor(RequestTypePaidLeave)
	if !ok || p.Ranges[0].From.Hour != 8 {
		t.Errorf("paid leave should resolve to the first policy, got %+v", p)
	}

	if _, ok := settings.PolicyFor(RequestTypeEditTimeSheet); ok {
		t.Error("expected no policy for an uncovered type")
	}
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{From: TimeOfDay{Hour: 9}, To: TimeOfDay{Hour: 17, Minute: 30}}
	day := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		hour, minute int
		want         bool
	}{
		{8, 59, false},
		{9, 0, true},
		{12, 15, true},
		{17, 30, true},
		{17, 31, false},
	}
	for _, tc := range cases {
		at := time.Date(day.Year(), day.Month(), day.Day(), tc.hour, tc.minute, 0, 0, time.UTC)
		if got := r.Contains(at); got != tc.want {
			t.Errorf("Contains(%02d:%02d) = %v, want %v", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	valid := TimeManagementSettings{{
		Types:  []RequestType{RequestTypeOvertime},
		Ranges: []TimeRange{{From: TimeOfDay{Hour: 19}, To: TimeOfDay{Hour: 23, Minute: 59}}},
	}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid settings rejected: %v", err)
	}

	cases := []struct {
		name     string
		settings TimeManagementSettings
		wantErr  string
	}{
		{
			name:     "no types",
			settings: TimeManagementSettings{{Ranges: []TimeRange{{To: TimeOfDay{Hour: 1}}}}},
			wantErr:  "no request types",
		},
		{
			name: "unknown type",
			settings: TimeManagementSettings{{
				Types:  []RequestType{"vacation"},
				Ranges: []TimeRange{{To: TimeOfDay{Hour: 1}}},
			}},
			wantErr: "unknown request type",
		},
		{
			name:     "no ranges",
			settings: TimeManagementSettings{{Types: []RequestType{RequestTypeOvertime}}},
			wantErr:  "no time ranges",
		},
		{
			name: "hour out of range",
			settings: TimeManagementSettings{{
				Types:  []RequestType{RequestTypeOvertime},
				Ranges: []TimeRange{{From: TimeOfDay{Hour: 24}, To: TimeOfDay{Hour: 25}}},
			}},
			wantErr: "invalid time",
		},
		{
			name: "inverted window",
			settings: TimeManagementSettings{{
				Types:  []RequestType{RequestTypeOvertime},
				Ranges: []TimeRange{{From: TimeOfDay{Hour: 17}, To: TimeOfDay{Hour: 9}}},
			}},
			wantErr: "inverted",
		},
		{
			name: "zero width window",
			settings: TimeManagementSettings{{
				Types:  []RequestType{RequestTypeOvertime},
				Ranges: []TimeRange{{From: TimeOfDay{Hour: 9}, To: TimeOfDay{Hour: 9}}},
			}},
			wantErr: "empty or inverted",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("got %q, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestBeforeDay(t *testing.T) {
	day := time.Date(2026, time.April, 2, 15, 30, 0, 0, time.UTC)
	disabled := BeforeDay(day)

	if !disabled(day.AddDate(0, 0, -1)) {
		t.Error("yesterday should be disabled")
	}
	// Midnight of the reference day itself stays enabled.
	if disabled(time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)) {
		t.Error("the reference day should stay enabled")
	}
	if disabled(day.AddDate(0, 0, 1)) {
		t.Error("tomorrow should stay enabled")
	}
}
