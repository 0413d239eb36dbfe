// Package datepicker implements the widget's state machine: popup
// visibility, the day/month/year view drill-down, anchor navigation,
// and resolution of a pick into a committed date.
//
// One State is created per widget instance and handed to whoever
// renders it; there is no package-level state. All transitions are
// synchronous and total - navigation is never blocked by validity, and
// selection preconditions are the renderer's responsibility (invalid
// cells must not dispatch a selection).
package datepicker

import "github.com/javiermolinar/fecha/internal/calendar"

// View identifies the granularity the calendar grid currently shows.
type View int

const (
	ViewDate View = iota
	ViewMonth
	ViewYear
)

// String returns the view name for logs and errors.
func (v View) String() string {
	switch v {
	case ViewDate:
		return "date"
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	default:
		return "unknown"
	}
}

// YearsPerPage is the size of the year-view grid, and therefore the
// stride of decade paging.
const YearsPerPage = 12

// Anchor is the month/year the grid currently displays. It tracks the
// committed date only at the moment the popup opens; navigation moves
// it freely afterwards. Month stays in [0,11], carrying into the year
// on wraparound.
type Anchor struct {
	Month int
	Year  int
}

// Config carries the host-supplied widget configuration.
type Config struct {
	// Date is the initially committed date.
	Date calendar.Date
	// Range optionally bounds selection. Immutable for the widget's
	// lifetime. Min > Max is undefined behavior; the host validates.
	Range calendar.Range
	// OnChange is invoked with the new date when a day is committed.
	// May be nil.
	OnChange func(calendar.Date)
}

// State holds all widget state for one datepicker instance.
type State struct {
	view     View
	anchor   Anchor
	visible  bool
	selected calendar.Date
	rng      calendar.Range
	onChange func(calendar.Date)
}

// NewState creates the state object for one widget instance. The
// anchor starts at the committed date's month and year.
func NewState(cfg Config) *State {
	return &State{
		view:     ViewDate,
		anchor:   Anchor{Month: cfg.Date.Month, Year: cfg.Date.Year},
		selected: cfg.Date,
		rng:      cfg.Range,
		onChange: cfg.OnChange,
	}
}

// View returns the current view mode.
func (s *State) View() View { return s.view }

// Anchor returns the displayed month/year.
func (s *State) Anchor() Anchor { return s.anchor }

// Visible reports whether the popup is open.
func (s *State) Visible() bool { return s.visible }

// Date returns the committed date.
func (s *State) Date() calendar.Date { return s.selected }

// Range returns the configured selection bounds.
func (s *State) Range() calendar.Range { return s.rng }

// SetDate rebinds the committed date, for hosts that change the value
// outside the widget (e.g. typing into the bound input).
func (s *State) SetDate(d calendar.Date) {
	s.selected = d
}

// ViewMonths switches to the month grid. A no-op when already there.
func (s *State) ViewMonths() {
	s.view = ViewMonth
}

// ViewYears switches to the year grid.
func (s *State) ViewYears() {
	s.view = ViewYear
}

// NextMonth advances the anchor one month, carrying into the year.
func (s *State) NextMonth() {
	if s.anchor.Month == 11 {
		s.anchor.Month = 0
		s.anchor.Year++
		return
	}
	s.anchor.Month++
}

// PrevMonth retreats the anchor one month, carrying into the year.
func (s *State) PrevMonth() {
	if s.anchor.Month == 0 {
		s.anchor.Month = 11
		s.anchor.Year--
		return
	}
	s.anchor.Month--
}

// NextYear advances the anchor one year.
func (s *State) NextYear() { s.anchor.Year++ }

// PrevYear retreats the anchor one year.
func (s *State) PrevYear() { s.anchor.Year-- }

// NextDecade advances the anchor one year-grid page.
func (s *State) NextDecade() { s.anchor.Year += YearsPerPage }

// PrevDecade retreats the anchor one year-grid page.
func (s *State) PrevDecade() { s.anchor.Year -= YearsPerPage }

// SelectDate commits the day under the current anchor, notifies the
// host, and closes the popup. The caller must only dispatch days that
// IsValid reported true for; validity is not re-checked here.
// It returns true when the popup transitioned to hidden, so the
// renderer can release its dismissal subscription.
func (s *State) SelectDate(day int) bool {
	d := calendar.New(s.anchor.Year, s.anchor.Month, day)
	s.selected = d
	if s.onChange != nil {
		s.onChange(d)
	}
	return s.Hide()
}

// SelectMonth sets the anchor month and drills down to the date view.
func (s *State) SelectMonth(month int) {
	s.anchor.Month = month
	s.view = ViewDate
}

// SelectYear sets the anchor year and drills down to the month view.
func (s *State) SelectYear(year int) {
	s.anchor.Year = year
	s.view = ViewMonth
}

// IsSelected reports whether a grid value corresponds to the committed
// date, scoped to the current view: the date view also requires the
// anchor to sit on the committed month and year, the month view only
// the year, the year view nothing but the value itself.
func (s *State) IsSelected(value int) bool {
	switch s.view {
	case ViewMonth:
		return value == s.selected.Month && s.anchor.Year == s.selected.Year
	case ViewYear:
		return value == s.selected.Year
	default:
		return value == s.selected.Day &&
			s.anchor.Month == s.selected.Month &&
			s.anchor.Year == s.selected.Year
	}
}

// IsValid reports whether a grid value may be selected under the
// configured range, interpreted per the current view.
func (s *State) IsValid(value int) bool {
	switch s.view {
	case ViewMonth:
		return s.rng.ValidMonth(s.anchor.Year, value)
	case ViewYear:
		return s.rng.ValidYear(value)
	default:
		return s.rng.ValidDay(s.anchor.Year, s.anchor.Month, value)
	}
}

// Show opens the popup. On the closed-to-open edge the anchor snaps
// back to the committed date and the view resets to the date grid,
// regardless of where the user navigated last time. Returns true when
// the edge occurred.
func (s *State) Show() bool {
	if s.visible {
		return false
	}
	s.visible = true
	s.anchor = Anchor{Month: s.selected.Month, Year: s.selected.Year}
	s.view = ViewDate
	return true
}

// Hide closes the popup and resets the view to the date grid. Returns
// true when the open-to-closed edge occurred.
func (s *State) Hide() bool {
	if !s.visible {
		return false
	}
	s.visible = false
	s.view = ViewDate
	return true
}

// Toggle flips visibility, applying the same edge rules as Show and
// Hide. Returns true when an edge occurred (it always does).
func (s *State) Toggle() bool {
	if s.visible {
		return s.Hide()
	}
	return s.Show()
}
