package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/datepicker"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg handles keyboard input. Grid navigation stays mouse
// driven; keys only open, dismiss, yank, and quit.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "ctrl+c":
		// Teardown path: always release the mouse subscription.
		return m, tea.Sequence(tea.DisableMouse, tea.Quit)

	case "ctrl+y":
		if err := clipboard.WriteAll(m.state.Date().Format(m.dateFormat)); err != nil {
			m.statusMsg = "clipboard unavailable"
		} else {
			m.statusMsg = "copied " + m.state.Date().Format(m.dateFormat)
		}
		return m, nil

	case "esc":
		if m.state.Visible() {
			return m.dismiss()
		}
		return m, tea.Quit

	case "enter":
		if m.state.Visible() {
			return m.dismiss()
		}
		return m.open()
	}

	if !m.state.Visible() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouseMsg dispatches clicks through the hit map.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.state.Visible() {
		// Mouse reporting is scoped to the popup being open; a stray
		// event after the release edge is dropped.
		return m, nil
	}

	g, ok := m.hits.At(msg.X, msg.Y)
	if !ok {
		// Outside the widget: dismissal gesture.
		return m.dismiss()
	}

	switch g.kind {
	case gestureToggle:
		return m.dismiss()

	case gesturePrev:
		switch m.state.View() {
		case datepicker.ViewDate:
			m.state.PrevMonth()
		case datepicker.ViewMonth:
			m.state.PrevYear()
		case datepicker.ViewYear:
			m.state.PrevDecade()
		}

	case gestureNext:
		switch m.state.View() {
		case datepicker.ViewDate:
			m.state.NextMonth()
		case datepicker.ViewMonth:
			m.state.NextYear()
		case datepicker.ViewYear:
			m.state.NextDecade()
		}

	case gestureTitle:
		switch m.state.View() {
		case datepicker.ViewDate:
			m.state.ViewMonths()
		case datepicker.ViewMonth:
			m.state.ViewYears()
		}
		// Inert in the year view; there is nothing coarser.

	case gesturePickDay:
		return m.commit(g.value)

	case gesturePickMonth:
		m.state.SelectMonth(g.value)

	case gesturePickYear:
		m.state.SelectYear(g.value)
	}

	return m, nil
}

// open shows the popup, rebinding the committed date from the input
// text first so the grid opens on what the user typed.
func (m Model) open() (tea.Model, tea.Cmd) {
	if d, err := calendar.Parse(m.input.Value()); err == nil {
		m.state.SetDate(d)
	}
	if m.state.Show() {
		m.input.Blur()
		return m, tea.EnableMouseCellMotion
	}
	return m, nil
}

// dismiss hides the popup without committing and releases the mouse
// subscription on the visibility edge.
func (m Model) dismiss() (tea.Model, tea.Cmd) {
	released := m.state.Hide()
	m.input.Focus()
	if released {
		return m, tea.Batch(tea.DisableMouse, textinput.Blink)
	}
	return m, nil
}

// commit resolves a day pick: the state machine commits and closes,
// the input reflects the new date, and the CLI flow quits.
func (m Model) commit(day int) (tea.Model, tea.Cmd) {
	closed := m.state.SelectDate(day)

	d := m.state.Date()
	m.picked = &d
	m.input.SetValue(d.Format(m.dateFormat))
	m.input.Focus()

	cmds := []tea.Cmd{}
	if closed {
		cmds = append(cmds, tea.DisableMouse)
	}
	if m.quitOnPick {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}
