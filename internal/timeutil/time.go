package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimeLayout is the canonical 24-hour time form used across the service.
const TimeLayout = "15:04"

var (
	hhmmPattern   = regexp.MustCompile(`^\d{2}:\d{2}$`)
	hhmmssPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// timeParseLayouts are tried in order when normalizing a free-form
// time string.
var timeParseLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"03:04 PM",
}

// TimeInput is a closed set of time representations accepted by
// FormatTime: a structured time value or a raw string.
type TimeInput struct {
	t *time.Time
	s string
}

// TimeOf builds a TimeInput from a structured time value.
func TimeOf(t time.Time) TimeInput {
	return TimeInput{t: &t}
}

// TimeString builds a TimeInput from a raw string.
func TimeString(s string) TimeInput {
	return TimeInput{s: s}
}

// FormatTime normalizes any time input to the canonical 24-hour HH:mm
// form. It never fails: a canonical string passes through unchanged,
// HH:mm:ss is truncated, a parsable string is reformatted, and
// anything else falls back to the current time.
func FormatTime(in TimeInput) string {
	if in.t != nil {
		return in.t.Format(TimeLayout)
	}

	s := strings.TrimSpace(in.s)
	if s == "" {
		return CurrentTime()
	}

	// Already canonical: return as is.
	if hhmmPattern.MatchString(s) {
		return s
	}

	// HH:mm:ss form: drop the seconds.
	if hhmmssPattern.MatchString(s) {
		return s[:5]
	}

	// 12-hour inputs like "8:30 pm" parse against uppercase layouts.
	upper := strings.ToUpper(s)
	for _, layout := range timeParseLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format(TimeLayout)
		}
	}

	// Fallback to current time
	return CurrentTime()
}

// CurrentTime returns the current time in canonical form.
func CurrentTime() string {
	return time.Now().Format(TimeLayout)
}

// To12Hour converts a canonical HH:mm string to a 12-hour display form
// such as "8:30 PM". Non-canonical input is returned unchanged.
func To12Hour(s string) string {
	mins, ok := clockMinutes(s)
	if !ok {
		return s
	}

	hours, minutes := mins/60, mins%60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, period)
}

// To24Hour converts a 12-hour time string such as "8:30 PM" to the
// canonical HH:mm form. Input in any other shape is returned unchanged.
func To24Hour(s string) string {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return s
	}
	return t.Format(TimeLayout)
}

// AddMinutes shifts a canonical HH:mm string by the given number of
// minutes, wrapping around midnight. Non-canonical input is returned
// unchanged.
func AddMinutes(s string, minutes int) string {
	mins, ok := clockMinutes(s)
	if !ok {
		return s
	}

	const dayMinutes = 24 * 60
	total := ((mins+minutes)%dayMinutes + dayMinutes) % dayMinutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// MinutesBetween returns the signed difference end - start in minutes.
// Either input being non-canonical yields zero.
func MinutesBetween(start, end string) int {
	s, okS := clockMinutes(start)
	e, okE := clockMinutes(end)
	if !okS || !okE {
		return 0
	}
	return e - s
}

// IsTimeBefore reports whether a is strictly earlier than b.
func IsTimeBefore(a, b string) bool {
	return MinutesBetween(b, a) < 0
}

// IsTimeAfter reports whether a is strictly later than b.
func IsTimeAfter(a, b string) bool {
	return MinutesBetween(b, a) > 0
}

// GenerateTimeSlots lists canonical HH:mm values from start to end
// inclusive, stepping by intervalMinutes. Invalid bounds or a
// non-positive interval yield nil.
func GenerateTimeSlots(start, end string, intervalMinutes int) []string {
	s, okS := clockMinutes(start)
	e, okE := clockMinutes(end)
	if !okS || !okE || intervalMinutes <= 0 {
		return nil
	}

	var slots []string
	for m := s; m <= e; m += intervalMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// clockMinutes parses a canonical HH:mm string into minutes since
// midnight.
func clockMinutes(s string) (int, bool) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
