package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(date(2024, time.February, 14, 15))
	assert.Equal(t, date(2024, time.February, 1, 0), start)
	assert.Equal(t, date(2024, time.March, 1, 0), end)

	start, end = MonthRange(date(2024, time.December, 31, 23))
	assert.Equal(t, date(2024, time.December, 1, 0), start)
	assert.Equal(t, date(2025, time.January, 1, 0), end)
}

func TestWeekRangeStartsOnMonday(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
	}{
		{"monday midnight", date(2024, time.May, 13, 0)},
		{"wednesday", date(2024, time.May, 15, 10)},
		{"sunday night", date(2024, time.May, 19, 23)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := WeekRange(tc.at)
			assert.Equal(t, date(2024, time.May, 13, 0), start)
			assert.Equal(t, date(2024, time.May, 20, 0), end)
		})
	}
}

func TestWeekRangeKeepsLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	start, _ := WeekRange(time.Date(2024, time.May, 13, 3, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, time.May, 13, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}
