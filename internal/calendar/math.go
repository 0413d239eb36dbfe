package calendar

import "time"

// Month lengths for non-leap years, indexed by 0-based month.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given 0-based month.
// February accounts for leap years.
func DaysInMonth(month, year int) int {
	if month == 1 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// FirstWeekday returns the weekday (0 = Sunday) of the first day of the
// given 0-based month, on the proleptic Gregorian calendar.
func FirstWeekday(month, year int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthName returns the English name of a 0-based month.
func MonthName(month int) string {
	return time.Month(month + 1).String()
}
