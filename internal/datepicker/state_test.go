package datepicker

import (
	"testing"

	"github.com/javiermolinar/fecha/internal/calendar"
)

func newTestState(d calendar.Date) *State {
	return NewState(Config{Date: d})
}

func TestNewState(t *testing.T) {
	s := newTestState(calendar.New(2023, 5, 15))

	if s.View() != ViewDate {
		t.Errorf("initial view = %v, want date", s.View())
	}
	if s.Visible() {
		t.Error("popup should start hidden")
	}
	if got := s.Anchor(); got.Month != 5 || got.Year != 2023 {
		t.Errorf("anchor = %+v, want month 5 year 2023", got)
	}
}

func TestState_MonthNavigation(t *testing.T) {
	t.Run("wraps forward into next year", func(t *testing.T) {
		s := newTestState(calendar.New(2023, 11, 1))
		s.NextMonth()
		if got := s.Anchor(); got.Month != 0 || got.Year != 2024 {
			t.Errorf("anchor = %+v, want month 0 year 2024", got)
		}
	})

	t.Run("wraps backward into previous year", func(t *testing.T) {
		s := newTestState(calendar.New(2023, 0, 1))
		s.PrevMonth()
		if got := s.Anchor(); got.Month != 11 || got.Year != 2022 {
			t.Errorf("anchor = %+v, want month 11 year 2022", got)
		}
	})

	t.Run("round trips from every month", func(t *testing.T) {
		for month := 0; month < 12; month++ {
			s := newTestState(calendar.New(2023, month, 1))
			start := s.Anchor()

			s.NextMonth()
			s.PrevMonth()
			if s.Anchor() != start {
				t.Errorf("month %d: next+prev moved anchor to %+v", month, s.Anchor())
			}

			s.NextYear()
			s.PrevYear()
			if s.Anchor() != start {
				t.Errorf("month %d: year round trip moved anchor to %+v", month, s.Anchor())
			}

			s.NextDecade()
			s.PrevDecade()
			if s.Anchor() != start {
				t.Errorf("month %d: decade round trip moved anchor to %+v", month, s.Anchor())
			}
		}
	})

	t.Run("decade pages by the year grid size", func(t *testing.T) {
		s := newTestState(calendar.New(2023, 5, 15))
		s.NextDecade()
		if got := s.Anchor().Year; got != 2023+YearsPerPage {
			t.Errorf("year = %d, want %d", got, 2023+YearsPerPage)
		}
	})
}

func TestState_ViewTransitions(t *testing.T) {
	tests := []struct {
		name string
		step func(*State)
		want View
	}{
		{"date to month", func(s *State) { s.ViewMonths() }, ViewMonth},
		{"month to month is a no-op", func(s *State) { s.ViewMonths(); s.ViewMonths() }, ViewMonth},
		{"date to year", func(s *State) { s.ViewYears() }, ViewYear},
		{"year to month", func(s *State) { s.ViewYears(); s.ViewMonths() }, ViewMonth},
		{"month to year", func(s *State) { s.ViewMonths(); s.ViewYears() }, ViewYear},
		{"select year drills to month", func(s *State) { s.ViewYears(); s.SelectYear(2030) }, ViewMonth},
		{"select month drills to date", func(s *State) { s.ViewMonths(); s.SelectMonth(3) }, ViewDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(calendar.New(2023, 5, 15))
			tt.step(s)
			if s.View() != tt.want {
				t.Errorf("view = %v, want %v", s.View(), tt.want)
			}
		})
	}
}

func TestState_SelectionDrillDown(t *testing.T) {
	// End to end: pick a year, then a month, then a day.
	var committed []calendar.Date
	s := NewState(Config{
		Date:     calendar.New(2023, 2, 10),
		OnChange: func(d calendar.Date) { committed = append(committed, d) },
	})
	s.Show()
	s.ViewYears()

	s.SelectYear(2024)
	if s.View() != ViewMonth {
		t.Fatalf("after SelectYear view = %v, want month", s.View())
	}
	if s.Anchor().Year != 2024 {
		t.Fatalf("anchor year = %d, want 2024", s.Anchor().Year)
	}

	s.SelectMonth(0)
	if s.View() != ViewDate {
		t.Fatalf("after SelectMonth view = %v, want date", s.View())
	}
	if got := s.Anchor(); got.Month != 0 || got.Year != 2024 {
		t.Fatalf("anchor = %+v, want month 0 year 2024", got)
	}

	closed := s.SelectDate(5)
	if !closed {
		t.Error("SelectDate should report the popup closing")
	}
	if s.Visible() {
		t.Error("popup should be hidden after committing")
	}
	if s.View() != ViewDate {
		t.Errorf("view = %v, want date after close", s.View())
	}
	if len(committed) != 1 {
		t.Fatalf("OnChange called %d times, want 1", len(committed))
	}
	if want := calendar.New(2024, 0, 5); !committed[0].Equal(want) {
		t.Errorf("committed %v, want %v", committed[0], want)
	}
	if !s.Date().Equal(calendar.New(2024, 0, 5)) {
		t.Errorf("Date() = %v, want committed value", s.Date())
	}
}

func TestState_IsSelected(t *testing.T) {
	s := newTestState(calendar.New(2023, 5, 15))

	t.Run("date view needs matching anchor", func(t *testing.T) {
		if !s.IsSelected(15) {
			t.Error("day 15 should be selected on the committed month")
		}
		if s.IsSelected(14) {
			t.Error("day 14 should not be selected")
		}
		s.NextMonth()
		if s.IsSelected(15) {
			t.Error("day 15 should not be selected once the anchor moved")
		}
		s.PrevMonth()
	})

	t.Run("month view ignores the day", func(t *testing.T) {
		s.ViewMonths()
		if !s.IsSelected(5) {
			t.Error("June should be selected")
		}
		if s.IsSelected(4) {
			t.Error("May should not be selected")
		}
		s.NextYear()
		if s.IsSelected(5) {
			t.Error("June of another year should not be selected")
		}
		s.PrevYear()
	})

	t.Run("year view ignores month and day", func(t *testing.T) {
		s.ViewYears()
		s.NextDecade() // anchor far away; year identity still matches
		if !s.IsSelected(2023) {
			t.Error("2023 should be selected")
		}
		if s.IsSelected(2024) {
			t.Error("2024 should not be selected")
		}
	})
}

func TestState_IsValid(t *testing.T) {
	min := calendar.New(2023, 0, 1)
	max := calendar.New(2023, 11, 31)
	s := NewState(Config{
		Date:  calendar.New(2023, 5, 15),
		Range: calendar.Range{Min: &min, Max: &max},
	})

	t.Run("year view", func(t *testing.T) {
		s.ViewYears()
		if s.IsValid(2022) {
			t.Error("2022 is out of range")
		}
		if !s.IsValid(2023) {
			t.Error("2023 is in range")
		}
	})

	t.Run("month view follows the anchor year", func(t *testing.T) {
		s.ViewMonths()
		if !s.IsValid(0) {
			t.Error("January 2023 is in range")
		}
		s.NextYear()
		if s.IsValid(0) {
			t.Error("January 2024 is out of range")
		}
		s.PrevYear()
	})

	t.Run("date view follows the anchor month", func(t *testing.T) {
		s.SelectMonth(11) // back to date view, December
		if !s.IsValid(31) {
			t.Error("Dec 31 2023 is the inclusive max")
		}
		s.NextMonth() // January 2024
		if s.IsValid(1) {
			t.Error("Jan 1 2024 is out of range")
		}
	})
}

func TestState_Visibility(t *testing.T) {
	t.Run("show resets anchor and view", func(t *testing.T) {
		s := newTestState(calendar.New(2023, 5, 15))
		s.Show()
		s.ViewYears()
		s.NextDecade()
		s.NextMonth()
		if !s.Hide() {
			t.Fatal("Hide should report the edge")
		}
		if s.View() != ViewDate {
			t.Errorf("view after hide = %v, want date", s.View())
		}

		if !s.Show() {
			t.Fatal("Show should report the edge")
		}
		if got := s.Anchor(); got.Month != 5 || got.Year != 2023 {
			t.Errorf("anchor after reopen = %+v, want committed month/year", got)
		}
		if s.View() != ViewDate {
			t.Errorf("view after reopen = %v, want date", s.View())
		}
	})

	t.Run("edges fire exactly once", func(t *testing.T) {
		s := newTestState(calendar.New(2023, 5, 15))
		if !s.Show() {
			t.Error("first Show is an edge")
		}
		if s.Show() {
			t.Error("second Show is not an edge")
		}
		if !s.Hide() {
			t.Error("first Hide is an edge")
		}
		if s.Hide() {
			t.Error("second Hide is not an edge")
		}
	})

	t.Run("toggle", func(t *testing.T) {
		s := newTestState(calendar.New(2023, 5, 15))
		if !s.Toggle() || !s.Visible() {
			t.Error("toggle should open the popup")
		}
		if !s.Toggle() || s.Visible() {
			t.Error("toggle should close the popup")
		}
	})
}

func TestView_String(t *testing.T) {
	if ViewDate.String() != "date" || ViewMonth.String() != "month" || ViewYear.String() != "year" {
		t.Error("unexpected view names")
	}
}
