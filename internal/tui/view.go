package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/datepicker"
)

// View renders the widget and rebuilds the hit map to match the frame.
func (m Model) View() string {
	m.hits.Reset()

	base := m.renderBase()

	// The input is always clickable; while the popup is open a click
	// on it toggles the popup closed.
	m.hits.Add(marginLeft, inputTop, gridWidth+4, inputHeight, gesture{kind: gestureToggle})

	if !m.state.Visible() {
		return base
	}

	popup := m.renderPopup()
	return composite(base, popup, popupTop, marginLeft)
}

// renderBase draws the title, the input box, and the footer. The popup
// is composited over it when open.
func (m Model) renderBase() string {
	var b strings.Builder

	b.WriteString(indent(m.styles.TitleStyle.Render("Pick a date")))
	b.WriteString("\n")

	inputStyle := m.styles.InputBoxStyle
	if m.input.Focused() {
		inputStyle = m.styles.InputBoxFocusedStyle
	}
	content := padTo(m.input.View(), gridWidth-2) + " ▾"
	b.WriteString(indent(inputStyle.Render(content)))
	b.WriteString("\n\n")

	if rng := m.state.Range(); !rng.Unbounded() {
		b.WriteString(indent(m.styles.HelpStyle.Render(rangeHint(rng))))
		b.WriteString("\n")
	}

	help := "enter calendar · ctrl+y copy · esc quit"
	if m.state.Visible() {
		help = "click to pick · click outside to dismiss"
	}
	b.WriteString(indent(m.styles.HelpStyle.Render(help)))

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(indent(m.styles.StatusStyle.Render(m.statusMsg)))
	}

	return b.String()
}

// renderPopup draws the calendar panel for the current view and
// registers its hit regions.
func (m Model) renderPopup() string {
	anchor := m.state.Anchor()

	var rows []string
	switch m.state.View() {
	case datepicker.ViewMonth:
		rows = m.renderMonthGrid(anchor)
	case datepicker.ViewYear:
		rows = m.renderYearGrid(anchor)
	default:
		rows = m.renderDayGrid(anchor)
	}

	lines := append([]string{m.renderGridHeader(anchor)}, rows...)

	// Backdrop region first: clicks on the panel's border and padding
	// are swallowed rather than treated as outside clicks.
	popupHeight := len(lines) + 2
	m.hits.Add(marginLeft, popupTop, gridWidth+4, popupHeight, gesture{kind: gestureNone})
	m.registerHeaderRegions()

	return m.styles.PopupStyle.Render(strings.Join(lines, "\n"))
}

// renderGridHeader draws the prev/title/next row.
func (m Model) renderGridHeader(anchor datepicker.Anchor) string {
	var title string
	switch m.state.View() {
	case datepicker.ViewMonth:
		title = fmt.Sprintf("%d", anchor.Year)
	case datepicker.ViewYear:
		base := yearPageBase(anchor.Year)
		title = fmt.Sprintf("%d – %d", base, base+datepicker.YearsPerPage-1)
	default:
		title = fmt.Sprintf("%s %d", calendar.MonthName(anchor.Month), anchor.Year)
	}

	mid := m.styles.GridTitleStyle.
		Width(gridWidth - 2*navWidth).
		Align(lipgloss.Center).
		Render(title)

	return m.styles.NavStyle.Render(" ‹ ") + mid + m.styles.NavStyle.Render(" › ")
}

// registerHeaderRegions adds hit regions for the header row. The title
// is inert in the year view, where there is nothing coarser to show.
func (m Model) registerHeaderRegions() {
	x0 := marginLeft + 2
	y := popupTop + 1

	m.hits.Add(x0, y, navWidth, 1, gesture{kind: gesturePrev})
	m.hits.Add(x0+gridWidth-navWidth, y, navWidth, 1, gesture{kind: gestureNext})
	if m.state.View() != datepicker.ViewYear {
		m.hits.Add(x0+navWidth, y, gridWidth-2*navWidth, 1, gesture{kind: gestureTitle})
	}
}

// renderDayGrid draws the weekday header plus the day cells, padded to
// the weekday of the 1st.
func (m Model) renderDayGrid(anchor datepicker.Anchor) []string {
	today := calendar.Today()
	first := calendar.FirstWeekday(anchor.Month, anchor.Year)
	days := calendar.DaysInMonth(anchor.Month, anchor.Year)

	lines := []string{
		m.styles.WeekdayRowStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa "),
	}

	x0 := marginLeft + 2
	y0 := popupTop + 3 // border, header, weekday rows

	day := 1
	for row := 0; day <= days; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			if (row == 0 && col < first) || day > days {
				cells = append(cells, m.styles.CellStyle.Render(strings.Repeat(" ", dayCellWidth)))
				continue
			}

			text := fmt.Sprintf("%3d ", day)
			style := m.styles.CellStyle
			switch {
			case !m.state.IsValid(day):
				style = m.styles.CellInvalidStyle
			case m.state.IsSelected(day):
				style = m.styles.CellSelectedStyle
			case anchor.Year == today.Year && anchor.Month == today.Month && day == today.Day:
				style = m.styles.CellTodayStyle
			}

			if m.state.IsValid(day) {
				m.hits.Add(x0+col*dayCellWidth, y0+row, dayCellWidth, 1, gesture{kind: gesturePickDay, value: day})
			}
			cells = append(cells, style.Render(text))
			day++
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	return lines
}

// renderMonthGrid draws the twelve months, three per row.
func (m Model) renderMonthGrid(anchor datepicker.Anchor) []string {
	today := calendar.Today()
	x0 := marginLeft + 2
	y0 := popupTop + 2 // border, header rows

	var lines []string
	for row := 0; row < 4; row++ {
		var cells []string
		for col := 0; col < 3; col++ {
			month := row*3 + col
			text := fmt.Sprintf(" %-7s ", calendar.MonthName(month)[:3])

			style := m.styles.CellStyle
			switch {
			case !m.state.IsValid(month):
				style = m.styles.CellInvalidStyle
			case m.state.IsSelected(month):
				style = m.styles.CellSelectedStyle
			case anchor.Year == today.Year && month == today.Month:
				style = m.styles.CellTodayStyle
			}

			if m.state.IsValid(month) {
				m.hits.Add(x0+col*midCellWidth, y0+row, midCellWidth, 1, gesture{kind: gesturePickMonth, value: month})
			}
			cells = append(cells, style.Render(text))
		}
		lines = append(lines, strings.Join(cells, "")+m.styles.CellStyle.Render(" "))
	}

	return lines
}

// renderYearGrid draws one twelve-year page.
func (m Model) renderYearGrid(anchor datepicker.Anchor) []string {
	today := calendar.Today()
	base := yearPageBase(anchor.Year)
	x0 := marginLeft + 2
	y0 := popupTop + 2

	var lines []string
	for row := 0; row < 4; row++ {
		var cells []string
		for col := 0; col < 3; col++ {
			year := base + row*3 + col
			text := fmt.Sprintf(" %-7d ", year)

			style := m.styles.CellStyle
			switch {
			case !m.state.IsValid(year):
				style = m.styles.CellInvalidStyle
			case m.state.IsSelected(year):
				style = m.styles.CellSelectedStyle
			case year == today.Year:
				style = m.styles.CellTodayStyle
			}

			if m.state.IsValid(year) {
				m.hits.Add(x0+col*midCellWidth, y0+row, midCellWidth, 1, gesture{kind: gesturePickYear, value: year})
			}
			cells = append(cells, style.Render(text))
		}
		lines = append(lines, strings.Join(cells, "")+m.styles.CellStyle.Render(" "))
	}

	return lines
}

// yearPageBase returns the first year of the twelve-year page holding
// the given year, so decade paging lands on stable page boundaries.
func yearPageBase(year int) int {
	return year - mod(year, datepicker.YearsPerPage)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// rangeHint formats the configured bounds for the footer.
func rangeHint(r calendar.Range) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("selectable: %s – %s", r.Min, r.Max)
	case r.Min != nil:
		return fmt.Sprintf("selectable: from %s", r.Min)
	default:
		return fmt.Sprintf("selectable: until %s", r.Max)
	}
}

// indent shifts a possibly multi-line block right by the left margin.
func indent(s string) string {
	pad := strings.Repeat(" ", marginLeft)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
