// Package calendar provides the date arithmetic behind the datepicker:
// an immutable calendar-date value, month lengths, leap years, weekday
// layout, and range validity at day, month, and year granularity.
//
// Months are 0-based (January = 0) throughout the package; the
// conversion to the stdlib's 1-based time.Month happens only at the
// time.Time boundary.
package calendar

import (
	"fmt"
	"time"
)

// Date is a concrete local calendar day. The zero value is not a
// meaningful date; construct with New, Today, or FromTime.
type Date struct {
	Year  int
	Month int // 0 = January, 11 = December
	Day   int // 1-based
}

// New creates a Date. Inputs are trusted to be well-formed.
func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime converts a time.Time to a Date, dropping the time of day.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// Time converts the date to a time.Time at local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.Local)
}

// Compare returns -1, 0, or 1 ordering d against o chronologically.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Equal reports whether two dates are the same day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Format renders the date using a stdlib time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// String renders the date as ISO 8601 (2006-01-02).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// Parse parses an ISO 8601 date (2006-01-02) into a Date.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
