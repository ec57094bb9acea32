// Package calendar coordinates the calendar widget state: the event
// collection, the selected-event working copy, dialog mode, view month,
// language preference, and resolved configuration.
package calendar

import (
	"fmt"
	"time"

	"timecal/internal/i18n"
	"timecal/internal/model"
)

// DatePickerShape is a presentation hint consumed by rendering collaborators.
type DatePickerShape string

const (
	ShapeSquare DatePickerShape = "square"
	ShapeRound  DatePickerShape = "round"
)

// Options is the calendar configuration. Zero fields resolve to defaults via
// WithDefaults; call sites override only what they need.
type Options struct {
	TimeManagementSettings     model.TimeManagementSettings
	DisabledDatePickerSettings model.DisabledDatePickerSettings

	WeekStartsOn time.Weekday

	MinuteStep int
	HourStep   int
	SecondStep int

	ShowMinutes     bool
	ShowSeconds     bool
	TwelveHourClock bool
	ShowOutsideDays bool

	DatePickerShape DatePickerShape

	// Locales the widget may switch between; the first unset entry falls
	// back to DefaultLocale.
	Locales       []string
	DefaultLocale string
}

// WithDefaults returns a copy with every unset field resolved.
func (o Options) WithDefaults() Options {
	if o.MinuteStep <= 0 {
		o.MinuteStep = 30
	}
	if o.HourStep <= 0 {
		o.HourStep = 1
	}
	if o.SecondStep <= 0 {
		o.SecondStep = 60
	}
	if o.DatePickerShape == "" {
		o.DatePickerShape = ShapeSquare
	}
	if o.DefaultLocale == "" {
		o.DefaultLocale = i18n.DefaultLocale
	}
	if len(o.Locales) == 0 {
		o.Locales = []string{o.DefaultLocale}
	}
	return o
}

// Validate rejects malformed time-window settings up front rather than
// letting the engine meet inverted windows later.
func (o Options) Validate() error {
	if err := o.TimeManagementSettings.Validate(); err != nil {
		return fmt.Errorf("time management settings: %w", err)
	}
	return nil
}
