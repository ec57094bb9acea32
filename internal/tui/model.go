package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timecal/internal/calendar"
	"timecal/internal/clock"
	"timecal/internal/i18n"
	"timecal/internal/model"
	"timecal/internal/schedule"
	"timecal/internal/timefield"
)

type formFocus int

const (
	focusGrid formFocus = iota
	focusTitle
	focusType
	focusFromHour
	focusFromMinute
	focusToHour
	focusToMinute
	focusDesc
)

// Model is the bubbletea application state. All calendar semantics live in
// the controller; the model only translates key events.
type Model struct {
	ctrl   *calendar.Controller
	bundle *i18n.Bundle
	clk    clock.Clock

	cursor time.Time

	focus      formFocus
	typeIndex  int
	fromHour   *timefield.Field
	fromMinute *timefield.Field
	toHour     *timefield.Field
	toMinute   *timefield.Field
	fromPeriod timefield.Period
	toPeriod   timefield.Period

	message      string
	messageError bool

	width  int
	height int
}

// NewModel builds a model around an already-loaded controller.
func NewModel(ctrl *calendar.Controller, bundle *i18n.Bundle, clk clock.Clock) *Model {
	if clk == nil {
		clk = clock.System{}
	}
	opts := ctrl.Options()
	hourKind := timefield.Hours24
	if opts.TwelveHourClock {
		hourKind = timefield.Hours12
	}
	return &Model{
		ctrl:       ctrl,
		bundle:     bundle,
		clk:        clk,
		cursor:     ctrl.View(),
		fromHour:   timefield.New(hourKind, opts.HourStep, clk),
		fromMinute: timefield.New(timefield.Minutes, opts.MinuteStep, clk),
		toHour:     timefield.New(hourKind, opts.HourStep, clk),
		toMinute:   timefield.New(timefield.Minutes, opts.MinuteStep, clk),
		width:      100,
		height:     30,
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ctrl.DialogState().Mode == model.DialogOpen {
			return m.updateDialog(msg)
		}
		return m.updateGrid(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := m.clk.Now()
		m.fromHour.Expire(now)
		m.fromMinute.Expire(now)
		m.toHour.Expire(now)
		m.toMinute.Expire(now)
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "up", "k":
		m.moveCursor(0, -7)
	case "down", "j":
		m.moveCursor(0, 7)
	case "[":
		m.moveCursor(-1, 0)
	case "]":
		m.moveCursor(1, 0)
	case "t":
		m.cursor = m.clk.Now()
		m.ctrl.SetView(m.cursor)
	case "g":
		m.cycleLanguage()
	case "n":
		m.openCreate()
	case "enter":
		if event, ok := m.firstEventOn(m.cursor); ok {
			m.ctrl.SelectEvent(event)
			m.syncForm()
		} else {
			m.openCreate()
		}
	case "r":
		if err := m.ctrl.Load(context.Background()); err != nil {
			m.notify(err.Error(), true)
		} else {
			m.notify(m.label("toolbar.reloaded"), false)
		}
	}
	return m, nil
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dialogType := m.ctrl.DialogState().Type

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ctrl.Close()
		m.focus = focusGrid
		return m, nil
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	}

	if dialogType == model.DialogShowEvent {
		switch msg.String() {
		case "e":
			m.ctrl.ToggleEdit()
			m.focus = focusTitle
		case "d":
			if err := m.ctrl.Delete(context.Background()); err != nil {
				m.notify(err.Error(), true)
			} else {
				m.notify(m.label("dialog.deleted"), false)
				m.focus = focusGrid
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if err := m.ctrl.Save(context.Background()); err != nil {
			m.notify(err.Error(), true)
		} else {
			m.notify(m.label("dialog.saved"), false)
			m.focus = focusGrid
		}
		return m, nil
	}

	switch m.focus {
	case focusTitle:
		m.editText(msg, func(e *model.CalendarEvent) *string { return &e.Title })
	case focusDesc:
		m.editText(msg, func(e *model.CalendarEvent) *string { return &e.Desc })
	case focusType:
		switch msg.String() {
		case "up", "left":
			m.cycleType(-1)
		case "down", "right", " ":
			m.cycleType(1)
		}
	case focusFromHour:
		m.editTimeField(msg, m.fromHour, schedule.EdgeFrom, &m.fromPeriod, focusFromMinute)
	case focusFromMinute:
		m.editTimeField(msg, m.fromMinute, schedule.EdgeFrom, &m.fromPeriod, focusToHour)
	case focusToHour:
		m.editTimeField(msg, m.toHour, schedule.EdgeTo, &m.toPeriod, focusToMinute)
	case focusToMinute:
		m.editTimeField(msg, m.toMinute, schedule.EdgeTo, &m.toPeriod, focusDesc)
	}
	return m, nil
}

func (m *Model) editText(msg tea.KeyMsg, field func(*model.CalendarEvent) *string) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		m.ctrl.UpdateSelected(func(e *model.CalendarEvent) { *field(e) += text })
	case tea.KeyBackspace:
		m.ctrl.UpdateSelected(func(e *model.CalendarEvent) {
			s := field(e)
			if len(*s) > 0 {
				*s = (*s)[:len(*s)-1]
			}
		})
	}
}

func (m *Model) editTimeField(msg tea.KeyMsg, field *timefield.Field, edge schedule.Edge, period *timefield.Period, next formFocus) {
	switch msg.String() {
	case "up":
		field.StepUp()
		m.commitTime(edge)
		return
	case "down":
		field.StepDown()
		m.commitTime(edge)
		return
	case "a":
		*period = timefield.AM
		m.commitTime(edge)
		return
	case "p":
		*period = timefield.PM
		m.commitTime(edge)
		return
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
		if field.PressDigit(msg.Runes[0]) {
			m.focus = next
		}
		m.commitTime(edge)
	}
}

// commitTime builds the newly picked instant from the segment fields and lets
// the controller clamp the pair, then reloads both edges so a moved
// counterpart shows up immediately.
func (m *Model) commitTime(edge schedule.Edge) {
	selected := m.ctrl.Selected()
	if selected == nil {
		return
	}
	var picked time.Time
	switch edge {
	case schedule.EdgeFrom:
		if selected.Start == nil {
			return
		}
		picked = m.fromHour.Apply(*selected.Start, m.fromPeriod)
		picked = m.fromMinute.Apply(picked, m.fromPeriod)
	case schedule.EdgeTo:
		if selected.End == nil {
			return
		}
		picked = m.toHour.Apply(*selected.End, m.toPeriod)
		picked = m.toMinute.Apply(picked, m.toPeriod)
	}
	m.ctrl.PickTime(picked, edge)
	m.syncTimeFields()
}

func (m *Model) openCreate() {
	m.ctrl.SelectSlot(m.cursor, m.cursor)
	m.syncForm()
	m.focus = focusTitle
}

func (m *Model) syncForm() {
	selected := m.ctrl.Selected()
	if selected == nil {
		return
	}
	m.typeIndex = 0
	for i, t := range model.RequestTypes() {
		if t == selected.RequestType {
			m.typeIndex = i
			break
		}
	}
	m.syncTimeFields()
	m.focus = focusTitle
}

func (m *Model) syncTimeFields() {
	selected := m.ctrl.Selected()
	if selected == nil {
		return
	}
	if selected.Start != nil {
		m.fromHour.SetFromTime(*selected.Start)
		m.fromMinute.SetFromTime(*selected.Start)
		m.fromPeriod = timefield.PeriodOf(selected.Start.Hour())
	}
	if selected.End != nil {
		m.toHour.SetFromTime(*selected.End)
		m.toMinute.SetFromTime(*selected.End)
		m.toPeriod = timefield.PeriodOf(selected.End.Hour())
	}
}

func (m *Model) cycleType(delta int) {
	types := model.RequestTypes()
	m.typeIndex = (m.typeIndex + delta + len(types)) % len(types)
	next := types[m.typeIndex]
	if selected := m.ctrl.Selected(); selected != nil && selected.Start != nil &&
		m.ctrl.DateDisabled(next, *selected.Start) {
		m.notify(m.label("form.dateDisabled"), true)
	} else {
		m.message = ""
	}
	m.ctrl.SetRequestType(next)
	m.syncTimeFields()
}

func (m *Model) cycleFocus(delta int) {
	order := []formFocus{focusTitle, focusType, focusFromHour, focusFromMinute, focusToHour, focusToMinute, focusDesc}
	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
			break
		}
	}
	m.focus = order[(current+delta+len(order))%len(order)]
}

func (m *Model) cycleLanguage() {
	locales := m.ctrl.Options().Locales
	if len(locales) == 0 {
		return
	}
	current := 0
	for i, l := range locales {
		if l == m.ctrl.Language() {
			current = i
			break
		}
	}
	m.ctrl.SetLanguage(locales[(current+1)%len(locales)])
}

func (m *Model) moveCursor(months, days int) {
	m.cursor = m.cursor.AddDate(0, months, days)
	if m.cursor.Month() != m.ctrl.View().Month() || m.cursor.Year() != m.ctrl.View().Year() {
		m.ctrl.SetView(m.cursor)
	}
}

func (m *Model) firstEventOn(day time.Time) (model.CalendarEvent, bool) {
	for _, event := range m.ctrl.VisibleEvents() {
		if event.Start != nil && sameDate(*event.Start, day) {
			return event, true
		}
	}
	return model.CalendarEvent{}, false
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (m *Model) notify(text string, isError bool) {
	m.message = text
	m.messageError = isError
}

func (m *Model) label(id string) string {
	return m.bundle.T(m.ctrl.Language(), id)
}

func (m Model) View() string {
	if m.ctrl.DialogState().Mode == model.DialogOpen {
		return renderDialogView(m)
	}
	return renderMainView(m)
}

// Run loads the controller and drives the widget until the user quits.
func Run(ctx context.Context, ctrl *calendar.Controller, bundle *i18n.Bundle) error {
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	program := tea.NewProgram(*NewModel(ctrl, bundle, nil), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
