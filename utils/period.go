package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// MonthRange returns the half-open interval [start, end) of the calendar
// month containing t, in t's location.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := now.With(t).BeginningOfMonth()
	return start, start.AddDate(0, 1, 0)
}

// WeekRange returns the half-open interval [start, end) of the Monday-start
// week containing t, in t's location.
func WeekRange(t time.Time) (time.Time, time.Time) {
	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: t.Location(),
	}
	start := cfg.With(t).BeginningOfWeek()
	return start, start.AddDate(0, 0, 7)
}
