package calendar

import (
	"context"
	"fmt"
	"time"

	"timecal/internal/clock"
	"timecal/internal/model"
	"timecal/internal/schedule"
)

// Controller owns the widget state and runs the selected-event / dialog state
// machine. It is driven from a single UI loop and is not goroutine safe.
type Controller struct {
	opts  Options
	svc   EventService
	prefs LanguageStore
	clock clock.Clock

	events   []model.CalendarEvent
	selected *model.CalendarEvent
	dialog   model.DialogState
	view     time.Time
	language string
}

// NewController resolves the options and builds a controller viewing the
// current month. prefs may be nil; an in-memory store is used then.
func NewController(svc EventService, prefs LanguageStore, clk clock.Clock, opts Options) (*Controller, error) {
	resolved := opts.WithDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.System{}
	}
	if prefs == nil {
		prefs = &MemoryLanguageStore{}
	}
	c := &Controller{
		opts:  resolved,
		svc:   svc,
		prefs: prefs,
		clock: clk,
		view:  clk.Now(),
	}
	c.language = c.loadLanguage()
	return c, nil
}

// Options returns the resolved configuration.
func (c *Controller) Options() Options { return c.opts }

// Load fetches the event collection from the persistence collaborator.
func (c *Controller) Load(ctx context.Context) error {
	events, err := c.svc.GetEvents(ctx)
	if err != nil {
		return fmt.Errorf("get events: %w", err)
	}
	c.events = events
	return nil
}

// Events returns the full event collection.
func (c *Controller) Events() []model.CalendarEvent { return c.events }

// VisibleEvents returns the collection restricted to the viewed month unless
// outside days are shown.
func (c *Controller) VisibleEvents() []model.CalendarEvent {
	return schedule.VisibleEvents(c.events, c.view, c.opts.ShowOutsideDays)
}

// View returns the reference date of the displayed month.
func (c *Controller) View() time.Time { return c.view }

// SetView moves the displayed month.
func (c *Controller) SetView(t time.Time) { c.view = t }

// DialogState returns the current dialog mode and type.
func (c *Controller) DialogState() model.DialogState { return c.dialog }

// Selected returns the working copy under edit, or nil.
func (c *Controller) Selected() *model.CalendarEvent { return c.selected }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SelectSlot opens the create dialog with a fresh event spanning the slot's
// day bounds.
func (c *Controller) SelectSlot(slotStart, slotEnd time.Time) {
	start := dayStart(slotStart)
	end := dayEnd(slotEnd)
	c.selected = &model.CalendarEvent{Start: &start, End: &end}
	c.dialog = model.DialogState{Mode: model.DialogOpen, Type: model.DialogCreateEvent}
}

// SelectEvent opens the show dialog on a working copy of an existing event.
func (c *Controller) SelectEvent(event model.CalendarEvent) {
	working := event.Clone()
	c.selected = &working
	c.dialog = model.DialogState{Mode: model.DialogOpen, Type: model.DialogShowEvent}
}

// ToggleEdit flips between show and edit without touching the working copy.
func (c *Controller) ToggleEdit() {
	switch c.dialog.Type {
	case model.DialogShowEvent:
		c.dialog.Type = model.DialogEditEvent
	case model.DialogEditEvent:
		c.dialog.Type = model.DialogShowEvent
	}
}

// UpdateSelected applies an edit to the working copy while the dialog is open.
func (c *Controller) UpdateSelected(edit func(*model.CalendarEvent)) {
	if c.selected == nil || c.dialog.Mode != model.DialogOpen {
		return
	}
	edit(c.selected)
}

// SetRequestType changes the working copy's request type and re-derives its
// default start/end for the new type.
func (c *Controller) SetRequestType(t model.RequestType) {
	if c.selected == nil {
		return
	}
	c.selected.RequestType = t
	updated := schedule.DeriveDefaults(*c.selected, t, c.opts.TimeManagementSettings, c.clock.Now())
	c.selected = &updated
}

// PickTime applies a time edit to one edge of the working copy and clamps the
// pair against the active request type's windows.
func (c *Controller) PickTime(selectedDay time.Time, edge schedule.Edge) {
	if c.selected == nil {
		return
	}
	clamped := schedule.Clamp(
		selectedDay,
		schedule.Range{From: c.selected.Start, To: c.selected.End},
		edge,
		c.opts.TimeManagementSettings,
		c.selected.RequestType,
		c.opts.MinuteStep,
	)
	c.selected.Start = clamped.From
	c.selected.End = clamped.To
}

// DateDisabled reports whether the day is blocked for the request type by the
// configured date-picker predicates.
func (c *Controller) DateDisabled(t model.RequestType, day time.Time) bool {
	for _, match := range c.opts.DisabledDatePickerSettings[t] {
		if match(day) {
			return true
		}
	}
	return false
}

// TimeOptions lists the selectable time labels for one edge of the working copy.
func (c *Controller) TimeOptions(edge schedule.Edge) []string {
	var day *time.Time
	var requestType model.RequestType
	if c.selected != nil {
		day = c.selected.Start
		requestType = c.selected.RequestType
	}
	return schedule.Options(day, c.opts.MinuteStep, requestType, c.opts.TimeManagementSettings, edge)
}

// Save commits the working copy through the persistence collaborator and
// reconciles the collection: create appends, edit replaces by ID. On failure
// the dialog stays open with the working copy intact for retry.
func (c *Controller) Save(ctx context.Context) error {
	if c.selected == nil {
		return nil
	}
	switch c.dialog.Type {
	case model.DialogCreateEvent:
		created, err := c.svc.CreateEvent(ctx, *c.selected)
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		c.events = append(c.events, created)
	case model.DialogEditEvent:
		updated, err := c.svc.EditEvent(ctx, *c.selected)
		if err != nil {
			return fmt.Errorf("edit event: %w", err)
		}
		for i, e := range c.events {
			if e.ID == updated.ID {
				c.events[i] = updated
				break
			}
		}
	default:
		return nil
	}
	c.Close()
	return nil
}

// Delete removes the selected event. Without an identity this is a no-op:
// the state should be unreachable through the UI but must not crash.
func (c *Controller) Delete(ctx context.Context) error {
	if c.selected == nil || c.selected.ID == "" {
		return nil
	}
	if err := c.svc.DeleteEvent(ctx, c.selected.ID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	kept := c.events[:0]
	for _, e := range c.events {
		if e.ID != c.selected.ID {
			kept = append(kept, e)
		}
	}
	c.events = kept
	c.Close()
	return nil
}

// Close discards the working copy, saved or not.
func (c *Controller) Close() {
	c.selected = nil
	c.dialog = model.DialogState{Mode: model.DialogClosed, Type: model.DialogNone}
}

func (c *Controller) loadLanguage() string {
	if code, ok := c.prefs.Language(); ok && c.localeSupported(code) {
		return code
	}
	c.prefs.SetLanguage(c.opts.DefaultLocale)
	return c.opts.DefaultLocale
}

func (c *Controller) localeSupported(code string) bool {
	for _, l := range c.opts.Locales {
		if l == code {
			return true
		}
	}
	return false
}

// Language returns the active locale code.
func (c *Controller) Language() string { return c.language }

// SetLanguage switches the active locale and persists it. Unknown codes are
// ignored.
func (c *Controller) SetLanguage(code string) {
	if !c.localeSupported(code) {
		return
	}
	c.language = code
	c.prefs.SetLanguage(code)
}
