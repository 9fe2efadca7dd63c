package timeutil

import (
	"strings"
	"time"
)

// DateLayout is the canonical date form used across the service.
const DateLayout = "2006-01-02"

// dateParseLayouts are tried in order when normalizing a free-form
// date string.
var dateParseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// DateInput is a closed set of date representations accepted by
// FormatDate: a structured time value or a raw string.
type DateInput struct {
	t *time.Time
	s string
}

// DateOf builds a DateInput from a structured time value.
func DateOf(t time.Time) DateInput {
	return DateInput{t: &t}
}

// DateString builds a DateInput from a raw string.
func DateString(s string) DateInput {
	return DateInput{s: s}
}

// FormatDate normalizes any date input to the canonical YYYY-MM-DD
// form. It never fails: a canonical string passes through unchanged, a
// parsable string is reformatted, and anything else falls back to the
// current date.
func FormatDate(in DateInput) string {
	if in.t != nil {
		return in.t.Format(DateLayout)
	}

	s := strings.TrimSpace(in.s)
	if s == "" {
		return CurrentDate()
	}

	// Already canonical: return as is.
	if _, err := time.Parse(DateLayout, s); err == nil {
		return s
	}

	for _, layout := range dateParseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}

	// Fallback to current date
	return CurrentDate()
}

// CurrentDate returns today's date in canonical form.
func CurrentDate() string {
	return time.Now().Format(DateLayout)
}

// IsToday reports whether a canonical date string is today.
func IsToday(date string) bool {
	return date == CurrentDate()
}

// IsPastDate reports whether a canonical date string is before today.
// Canonical strings compare correctly as plain strings.
func IsPastDate(date string) bool {
	return date < CurrentDate()
}

// AddDays shifts a canonical date string by the given number of days.
// A non-canonical input is returned unchanged.
func AddDays(date string, days int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// DayOfWeek returns the weekday name for a canonical date string, or
// an empty string if the input is not canonical.
func DayOfWeek(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
