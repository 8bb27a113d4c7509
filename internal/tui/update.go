package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/tui/commands"
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
		m.relayout()
		return m, nil

	case commands.FrameMsg:
		m.engine.frames.Flush()
		return m, nil

	case commands.ErrMsg:
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		return m, commands.ClearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, false)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// afterGesture applies queued outcomes and schedules a frame for pending guide
// paints. Several requests before the tick still produce one frame.
func (m Model) afterGesture() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, o := range m.engine.drain() {
		var cmd tea.Cmd
		m, cmd = m.applyOutcome(o)
		cmds = append(cmds, cmd)
	}
	if m.engine.frames.Arm() {
		cmds = append(cmds, commands.Frame(m.config.FrameInterval()))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) applyOutcome(o outcome) (Model, tea.Cmd) {
	debuglog.Log("GESTURE_OUTCOME", map[string]any{
		"kind":    int(o.kind),
		"all_day": o.allDay,
		"target":  o.target,
		"start":   o.start.String(),
		"end":     o.end.String(),
	})

	switch o.kind {
	case outcomeCreate:
		return m.openPrompt(pendingEvent{allDay: o.allDay, start: o.start, end: o.end}), textinput.Blink
	case outcomeMove:
		return m.moveEvent(o)
	case outcomeSelect:
		return m.selectEvent(o.target), nil
	}
	return m, nil
}
