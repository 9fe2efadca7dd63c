package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	t.Run("structured time value", func(t *testing.T) {
		d := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
		assert.Equal(t, "2025-06-01", FormatDate(DateOf(d)))
	})

	t.Run("canonical string passes through", func(t *testing.T) {
		assert.Equal(t, "2025-06-01", FormatDate(DateString("2025-06-01")))
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"RFC3339", "2025-06-01T10:30:00Z", "2025-06-01"},
		{"datetime without zone", "2025-06-01T10:30:00", "2025-06-01"},
		{"slash separated", "2025/06/01", "2025-06-01"},
		{"US style", "06/01/2025", "2025-06-01"},
		{"long form", "June 1, 2025", "2025-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(DateString(tt.in)))
		})
	}

	t.Run("unparsable input falls back to current date", func(t *testing.T) {
		assert.Equal(t, CurrentDate(), FormatDate(DateString("not a date")))
	})

	t.Run("empty input falls back to current date", func(t *testing.T) {
		assert.Equal(t, CurrentDate(), FormatDate(DateString("")))
	})
}

func TestDateHelpers(t *testing.T) {
	t.Run("IsToday", func(t *testing.T) {
		assert.True(t, IsToday(CurrentDate()))
		assert.False(t, IsToday("2000-01-01"))
	})

	t.Run("IsPastDate", func(t *testing.T) {
		assert.True(t, IsPastDate("2000-01-01"))
		assert.False(t, IsPastDate(CurrentDate()))
		assert.False(t, IsPastDate("2999-12-31"))
	})

	t.Run("AddDays", func(t *testing.T) {
		assert.Equal(t, "2025-06-03", AddDays("2025-06-01", 2))
		assert.Equal(t, "2025-05-30", AddDays("2025-06-01", -2))
		// Month rollover
		assert.Equal(t, "2025-07-01", AddDays("2025-06-30", 1))
		// Invalid input is returned unchanged
		assert.Equal(t, "garbage", AddDays("garbage", 1))
	})

	t.Run("DayOfWeek", func(t *testing.T) {
		assert.Equal(t, "Sunday", DayOfWeek("2025-06-01"))
		assert.Equal(t, "", DayOfWeek("garbage"))
	})
}
