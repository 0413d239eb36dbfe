package calendar

// Range bounds the selectable dates. A nil Min or Max leaves that side
// unbounded. Both bounds are inclusive. A Range is configured once per
// widget and never mutated.
type Range struct {
	Min *Date
	Max *Date
}

// Unbounded reports whether the range constrains nothing.
func (r Range) Unbounded() bool {
	return r.Min == nil && r.Max == nil
}

// ValidYear reports whether any day of the given year falls inside the
// range. Used by the year view, where cells carry year granularity only.
func (r Range) ValidYear(year int) bool {
	if r.Min != nil && r.Min.Year > year {
		return false
	}
	if r.Max != nil && r.Max.Year < year {
		return false
	}
	return true
}

// ValidMonth reports whether any day of the given 0-based month falls
// inside the range. Used by the month view.
func (r Range) ValidMonth(year, month int) bool {
	if r.Min != nil {
		if year < r.Min.Year || (year == r.Min.Year && month < r.Min.Month) {
			return false
		}
	}
	if r.Max != nil {
		if year > r.Max.Year || (year == r.Max.Year && month > r.Max.Month) {
			return false
		}
	}
	return true
}

// ValidDay reports whether the given day is inside the range. A day of
// 0 stands for the last day of the month. Used by the date view.
func (r Range) ValidDay(year, month, day int) bool {
	if day == 0 {
		day = DaysInMonth(month, year)
	}
	d := Date{Year: year, Month: month, Day: day}
	if r.Min != nil && d.Before(*r.Min) {
		return false
	}
	if r.Max != nil && d.After(*r.Max) {
		return false
	}
	return true
}
