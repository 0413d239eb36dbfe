package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/datepicker"
	"github.com/javiermolinar/fecha/internal/tui/theme"
)

// Fixed widget geometry, in terminal cells. The popup is anchored
// right under the input box; all hit regions are derived from these.
const (
	marginLeft   = 2
	titleRow     = 0
	inputTop     = 1  // input box top border row
	inputHeight  = 3  // border + content + border
	popupTop     = 4  // popup box top border row
	gridWidth    = 28 // inner popup width: 7 day cells of 4
	dayCellWidth = 4
	midCellWidth = 9 // month and year cells, 3 per row
	navWidth     = 3 // prev/next button width in the header row
)

// Config carries everything the widget needs from the host.
type Config struct {
	// Date is the initially committed date.
	Date calendar.Date
	// Range optionally bounds selection.
	Range calendar.Range
	// DateFormat is the Go time layout used in the input box.
	DateFormat string
	// Theme is the catppuccin flavor name.
	Theme string
	// OnChange is invoked synchronously when a day is committed.
	OnChange func(calendar.Date)
	// QuitOnPick ends the program after a commit (the CLI flow).
	QuitOnPick bool
}

// Model is the datepicker widget model.
type Model struct {
	state  *datepicker.State
	theme  *theme.Theme
	styles *Styles

	input      textinput.Model
	dateFormat string
	quitOnPick bool

	// Hit regions for the current frame, rebuilt by View.
	hits *HitMap

	width  int
	height int

	picked    *calendar.Date // last date committed through the widget
	statusMsg string
	err       error
}

// New creates the widget model. One Model owns one datepicker.State;
// nothing is shared between instances.
func New(cfg Config) Model {
	t, err := theme.Load(cfg.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	format := cfg.DateFormat
	if format == "" {
		format = "2006-01-02"
	}

	ti := textinput.New()
	ti.Placeholder = format
	ti.CharLimit = 32
	ti.Width = gridWidth - 4
	ti.Prompt = ""
	ti.SetValue(cfg.Date.Format(format))
	ti.Focus()

	st := datepicker.NewState(datepicker.Config{
		Date:     cfg.Date,
		Range:    cfg.Range,
		OnChange: cfg.OnChange,
	})

	return Model{
		state:      st,
		theme:      t,
		styles:     styles,
		input:      ti,
		dateFormat: format,
		quitOnPick: cfg.QuitOnPick,
		hits:       NewHitMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State exposes the widget state, mainly for tests.
func (m Model) State() *datepicker.State {
	return m.state
}

// Picked returns the date committed through the widget, if any.
func (m Model) Picked() *calendar.Date {
	return m.picked
}

// Err returns a fatal error encountered by the widget.
func (m Model) Err() error {
	return m.err
}

// Run starts the widget and blocks until it exits. It returns the
// picked date, or nil when the user quit without committing.
func Run(cfg Config) (*calendar.Date, error) {
	p := tea.NewProgram(New(cfg))
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return nil, nil
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.picked, nil
}
