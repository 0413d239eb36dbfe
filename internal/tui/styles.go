// Package tui provides the terminal datepicker widget for fecha.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fecha/internal/tui/theme"
)

// Styles holds all lipgloss styles for the widget, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color

	// Title above the input
	TitleStyle lipgloss.Style

	// Input box
	InputBoxStyle        lipgloss.Style
	InputBoxFocusedStyle lipgloss.Style

	// Popup panel
	PopupStyle lipgloss.Style

	// Popup header: navigation buttons and the month/year title
	NavStyle        lipgloss.Style
	GridTitleStyle  lipgloss.Style
	WeekdayRowStyle lipgloss.Style

	// Grid cells
	CellStyle         lipgloss.Style
	CellSelectedStyle lipgloss.Style
	CellTodayStyle    lipgloss.Style
	CellInvalidStyle  lipgloss.Style

	// Status message and help footer
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewStyles creates the widget styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorToday:       theme.Color(t.Today),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	inputBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	s.InputBoxStyle = inputBorder.BorderForeground(s.colorFgMuted)
	s.InputBoxFocusedStyle = inputBorder.BorderForeground(s.colorAccent)

	s.PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.NavStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.GridTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	s.WeekdayRowStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.CellSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	s.CellTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Background(s.colorBg).
		Bold(true)

	s.CellInvalidStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorToday)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	return s
}
