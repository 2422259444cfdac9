package detector

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
)

// calendarDate drops the clock part so comparisons happen on whole days.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBefore(t time.Time, days int) time.Time {
	return calendarDate(t).AddDate(0, 0, -days)
}

// weekStart returns the Sunday that opens the week containing t.
func weekStart(t time.Time) time.Time {
	day := calendarDate(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
