package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used across the catalog views.
const (
	InputLayout  = "2006-01-02"  // <input type="date"> value
	MediumLayout = "Jan 2, 2006" // human readable, medium length
)

// Medium renders a stored calendar date for display.
// An absent date renders as the empty string.
func Medium(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(MediumLayout)
}

// Input renders a stored calendar date as yyyy-mm-dd for form inputs.
// An absent date renders as the empty string, same as Medium.
func Input(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(InputLayout)
}

// calendarLayouts are the ISO 8601 date forms accepted from forms: extended
// and basic complete dates, reduced precision, ordinal dates and local or
// zoned timestamps.
var calendarLayouts = []string{
	InputLayout,
	"20060102",
	"2006-01",
	"2006",
	"2006-002",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseCalendarDate accepts an ISO 8601 date or timestamp and returns the
// calendar day it names at UTC midnight. Reduced forms resolve to their first
// day, so "2024-05" is May 1, 2024. Days that do not exist are rejected.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid calendar date %q", s)
}

// DateOnly drops the clock component, keeping the calendar day the value
// carries in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ptr is a small helper for optional dates.
func Ptr(t time.Time) *time.Time {
	return &t
}
