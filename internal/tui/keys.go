package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dragcal/internal/debuglog"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debuglog.Log("KEY_PRESS", map[string]any{"key": msg.String(), "mode": m.mode.String()})

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitPrompt()
	case "esc":
		return m.closePrompt(), nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.engine.dragging() {
			m.engine.cancel()
			return m.afterGesture()
		}
		m.clearSelection()

	// Week navigation
	case "h", "left", "[":
		m = m.shiftWeek(-1)
	case "l", "right", "]":
		m = m.shiftWeek(1)
	case "t":
		m = m.goToday()

	// Scrolling
	case "k", "up":
		m = m.scrollBy(-1)
	case "j", "down":
		m = m.scrollBy(1)
	case "pgup", "ctrl+u":
		m = m.scrollBy(-m.host.layout.VisibleRows)
	case "pgdown", "ctrl+d":
		m = m.scrollBy(m.host.layout.VisibleRows)

	// Selection
	case "d", "delete", "backspace":
		return m.deleteSelected()
	case "y":
		return m, m.copySelected()
	}

	return m.afterGesture()
}
