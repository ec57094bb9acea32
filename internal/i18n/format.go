package i18n

import (
	"strings"
	"time"
)

// dateTimeFormat carries per-locale layout and half-day tokens. Times are
// stored on a 24-hour clock; the 12-hour layouts only change presentation.
type dateTimeFormat struct {
	layout24 string
	layout12 string
	am, pm   string
}

var dateTimeFormats = map[string]dateTimeFormat{
	"en": {layout24: "Jan 2, 2006 15:04", layout12: "Jan 2, 2006 03:04 PM", am: "AM", pm: "PM"},
	"vi": {layout24: "02/01/2006 15:04", layout12: "02/01/2006 03:04 PM", am: "SA", pm: "CH"},
	"ja": {layout24: "2006年1月2日 15:04", layout12: "2006年1月2日 PM03:04", am: "午前", pm: "午後"},
}

// FormatDateTime renders an instant with locale-specific field ordering and
// half-day tokens. Unknown locales use the default locale's format.
func FormatDateTime(t time.Time, locale string, use12Hour bool) string {
	f, ok := dateTimeFormats[locale]
	if !ok {
		f = dateTimeFormats[DefaultLocale]
	}
	if !use12Hour {
		return t.Format(f.layout24)
	}
	s := t.Format(f.layout12)
	s = strings.ReplaceAll(s, "AM", f.am)
	s = strings.ReplaceAll(s, "PM", f.pm)
	return s
}
