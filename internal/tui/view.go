package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"timecal/internal/calendar"
	"timecal/internal/i18n"
	"timecal/internal/model"
)

// renderMainView renders the month grid, the agenda for the viewed month, and
// the footer.
func renderMainView(m Model) string {
	header := TitleStyle.Render(m.ctrl.View().Format("January 2006")) +
		FieldLabelStyle.Render("  ["+m.ctrl.Language()+"]")

	grid := renderMonthGrid(m)
	agenda := renderAgenda(m)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		BoxStyle.Render(grid),
		BoxStyle.Width(max(m.width-lipgloss.Width(grid)-10, 30)).Render(agenda),
	)

	footer := FooterStyle.Render("[arrows] move  [ ] month  [n] new  [enter] open  [t] today  [g] language  [r] reload  [q] quit")

	var message string
	if m.message != "" {
		style := SuccessStyle
		if m.messageError {
			style = ErrorStyle
		}
		message = style.Render(m.message)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, message, footer)
}

func renderMonthGrid(m Model) string {
	opts := m.ctrl.Options()
	view := m.ctrl.View()
	now := m.clk.Now()

	monthStart := time.Date(view.Year(), view.Month(), 1, 0, 0, 0, 0, view.Location())
	lead := (int(monthStart.Weekday()) - int(opts.WeekStartsOn) + 7) % 7
	gridStart := monthStart.AddDate(0, 0, -lead)

	eventDays := make(map[string]bool)
	for _, event := range m.ctrl.VisibleEvents() {
		if event.Start != nil {
			eventDays[event.Start.Format("2006-01-02")] = true
		}
	}
	mark := "▪"
	if opts.DatePickerShape == calendar.ShapeRound {
		mark = "•"
	}

	var b strings.Builder
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(opts.WeekStartsOn) + i) % 7)
		b.WriteString(DayHeaderStyle.Render(fmt.Sprintf("%4s", day.String()[:2])))
	}
	b.WriteString("\n")

	day := gridStart
	for week := 0; week < 6; week++ {
		for i := 0; i < 7; i++ {
			cell := fmt.Sprintf("%2d", day.Day())
			if eventDays[day.Format("2006-01-02")] {
				cell += EventMarkStyle.Render(mark)
			} else {
				cell += " "
			}
			switch {
			case sameDate(day, m.cursor):
				b.WriteString(DayCursorStyle.Render(cell))
			case sameDate(day, now):
				b.WriteString(DayTodayStyle.Render(cell))
			case day.Month() != view.Month():
				if opts.ShowOutsideDays {
					b.WriteString(DayOutsideStyle.Render(cell))
				} else {
					b.WriteString(DayStyle.Render("   "))
				}
			default:
				b.WriteString(DayStyle.Render(cell))
			}
			day = day.AddDate(0, 0, 1)
		}
		b.WriteString("\n")
		if day.Month() != view.Month() && day.After(monthStart) {
			break
		}
	}
	return b.String()
}

func renderAgenda(m Model) string {
	locale := m.ctrl.Language()
	events := m.ctrl.VisibleEvents()

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.label("toolbar.agenda")) + "\n\n")
	if len(events) == 0 {
		b.WriteString(FieldLabelStyle.Render("-"))
		return b.String()
	}
	use12 := m.ctrl.Options().TwelveHourClock
	for _, event := range events {
		title := event.Title
		if title == "" {
			title = m.label("event.untitled")
		}
		if event.Start != nil {
			b.WriteString(AgendaTimeStyle.Render(i18n.FormatDateTime(*event.Start, locale, use12)))
			if event.End != nil {
				b.WriteString(AgendaTimeStyle.Render(" - " + event.End.Format("15:04")))
			}
			b.WriteString("  ")
		}
		b.WriteString(title)
		if event.RequestType != "" {
			b.WriteString(FieldLabelStyle.Render("  " + m.bundle.RequestTypeLabel(locale, event.RequestType)))
		}
		if event.RequestStatus != "" {
			b.WriteString("  " + statusStyle(event.RequestStatus).Render(m.bundle.RequestStatusLabel(locale, event.RequestStatus)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func statusStyle(s model.RequestStatus) lipgloss.Style {
	switch s {
	case model.RequestStatusApproved:
		return StatusApprovedStyle
	case model.RequestStatusRejected:
		return StatusRejectedStyle
	default:
		return StatusPendingStyle
	}
}

// renderDialogView renders the event dialog over a blank screen.
func renderDialogView(m Model) string {
	selected := m.ctrl.Selected()
	if selected == nil {
		return renderMainView(m)
	}
	dialogType := m.ctrl.DialogState().Type
	locale := m.ctrl.Language()

	var title string
	switch dialogType {
	case model.DialogCreateEvent:
		title = m.label("dialog.createTitle")
	case model.DialogEditEvent:
		title = m.label("dialog.editTitle")
	default:
		title = m.label("dialog.showTitle")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	if dialogType == model.DialogShowEvent {
		b.WriteString(renderShowBody(m, selected, locale))
		b.WriteString("\n" + FooterStyle.Render("[e] edit  [d] delete  [esc] close"))
	} else {
		b.WriteString(renderFormBody(m, selected, locale))
		b.WriteString("\n" + FooterStyle.Render("[tab] next field  [digits/arrows] set time  [enter] save  [esc] cancel"))
	}

	if m.message != "" {
		style := SuccessStyle
		if m.messageError {
			style = ErrorStyle
		}
		b.WriteString("\n" + style.Render(m.message))
	}

	dialog := DialogStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func renderShowBody(m Model, event *model.CalendarEvent, locale string) string {
	use12 := m.ctrl.Options().TwelveHourClock
	title := event.Title
	if title == "" {
		title = m.label("event.untitled")
	}
	var b strings.Builder
	b.WriteString(formLine(m.label("form.title"), title, false))
	if event.RequestType != "" {
		b.WriteString(formLine(m.label("form.requestType"), m.bundle.RequestTypeLabel(locale, event.RequestType), false))
	}
	if event.RequestStatus != "" {
		b.WriteString(formLine(m.label("form.requestStatus"), m.bundle.RequestStatusLabel(locale, event.RequestStatus), false))
	}
	if event.Start != nil {
		b.WriteString(formLine(m.label("form.start"), i18n.FormatDateTime(*event.Start, locale, use12), false))
	}
	if event.End != nil {
		b.WriteString(formLine(m.label("form.end"), i18n.FormatDateTime(*event.End, locale, use12), false))
	}
	if event.Desc != "" {
		b.WriteString(formLine(m.label("form.description"), event.Desc, false))
	}
	return b.String()
}

func renderFormBody(m Model, event *model.CalendarEvent, locale string) string {
	typeLabel := m.label("form.requestType.placeholder")
	if event.RequestType != "" {
		typeLabel = m.bundle.RequestTypeLabel(locale, event.RequestType)
	}

	var b strings.Builder
	b.WriteString(formLine(m.label("form.title"), event.Title, m.focus == focusTitle))
	b.WriteString(formLine(m.label("form.requestType"), typeLabel, m.focus == focusType))
	b.WriteString(formLine(m.label("form.start"), renderTimePair(m, true), false))
	b.WriteString(formLine(m.label("form.end"), renderTimePair(m, false), false))
	b.WriteString(formLine(m.label("form.description"), event.Desc, m.focus == focusDesc))
	return b.String()
}

func renderTimePair(m Model, from bool) string {
	hour, minute := m.toHour, m.toMinute
	period := m.toPeriod
	hourFocus, minuteFocus := m.focus == focusToHour, m.focus == focusToMinute
	if from {
		hour, minute = m.fromHour, m.fromMinute
		period = m.fromPeriod
		hourFocus, minuteFocus = m.focus == focusFromHour, m.focus == focusFromMinute
	}

	segment := func(value string, active bool) string {
		if active {
			return FieldActiveStyle.Render(value)
		}
		return FieldStyle.Render(value)
	}
	out := segment(hour.Value(), hourFocus)
	if m.ctrl.Options().ShowMinutes {
		out += ":" + segment(minute.Value(), minuteFocus)
	}
	if m.ctrl.Options().TwelveHourClock {
		out += " " + FieldStyle.Render(string(period))
	}
	return out
}

func formLine(label, value string, active bool) string {
	rendered := FieldStyle.Render(value)
	if active {
		rendered = FieldActiveStyle.Render(value + "_")
	}
	return FieldLabelStyle.Render(fmt.Sprintf("%-14s", label)) + rendered + "\n"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
