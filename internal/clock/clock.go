// Package clock supplies calendar dates to the board.
//
// A calendar date is a time.Time at midnight UTC carrying the year, month
// and day of the wall clock in the process's local zone. Keeping dates in
// UTC means adding days never crosses a DST boundary.
package clock

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// DateLayout is the on-disk and on-the-wire form of a calendar date
const DateLayout = "2006-01-02"

// Clock is the time source used by the rollover engine and services
type Clock = clockwork.Clock

// Real returns the wall clock
func Real() Clock {
	return clockwork.NewRealClock()
}

// DateOf truncates t to its calendar date in t's own location
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date of c
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// AddDays moves a calendar date by n days
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// FormatDate renders a calendar date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD into a calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ISOWeekStart returns the Monday that starts ISO week `week` of ISO year `year`.
// Week 1 is the week containing January 4th.
func ISOWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := int(jan4.Weekday()+6) % 7 // days since Monday
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (week-1)*7)
}

// ISOWeeksInYear returns 52 or 53
func ISOWeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}
