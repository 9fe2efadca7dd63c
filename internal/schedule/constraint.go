// Package schedule decides which time slots are off limits for a
// selected booking date, relative to a supplied "now". It only guards
// against picking a slot earlier than the current moment on the
// current day; past dates are rejected upstream by the booking
// service.
package schedule

import (
	"time"

	"github.com/studiobook/studio-booking-backend/internal/timeutil"
)

// DisabledHours returns the hour values (0-23) that may not be
// selected on the given date. The set is empty unless selectedDate and
// now fall on the same calendar day; in that case every hour strictly
// before the current hour is disabled. The current hour itself stays
// selectable.
func DisabledHours(selectedDate, now time.Time) []int {
	if !sameDay(selectedDate, now) {
		return nil
	}
	return rangeBelow(now.Hour())
}

// DisabledMinutes returns the minute values (0-59) that may not be
// selected within selectedHour on the given date. The set is empty
// unless the date is today and selectedHour is the current hour; in
// that case every minute strictly before the current minute is
// disabled. The current minute itself stays selectable, so a user can
// still book within the minute they are acting in.
func DisabledMinutes(selectedDate time.Time, selectedHour int, now time.Time) []int {
	if !sameDay(selectedDate, now) {
		return nil
	}
	if selectedHour != now.Hour() {
		return nil
	}
	return rangeBelow(now.Minute())
}

// SelectableSlots lists the HH:mm slots between open and close
// (inclusive, stepped by intervalMinutes) that are still selectable on
// the given canonical date. For today, slots earlier than the current
// time are dropped; the slot matching the current minute is kept.
// Future dates keep the full range.
func SelectableSlots(date, opensAt, closesAt string, intervalMinutes int, now time.Time) []string {
	slots := timeutil.GenerateTimeSlots(opensAt, closesAt, intervalMinutes)
	if date != now.Format(timeutil.DateLayout) {
		return slots
	}

	cutoff := now.Format(timeutil.TimeLayout)
	var selectable []string
	for _, slot := range slots {
		if timeutil.IsTimeBefore(slot, cutoff) {
			continue
		}
		selectable = append(selectable, slot)
	}
	return selectable
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// rangeBelow returns {0, 1, ..., n-1}.
func rangeBelow(n int) []int {
	if n <= 0 {
		return nil
	}
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	return vals
}
