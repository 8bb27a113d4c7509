package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/dragcal/internal/calendar"
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/tui/commands"
)

func (m Model) openPrompt(p pendingEvent) Model {
	m.clearSelection()
	m.pending = &p
	m.setMode(ModePrompt, "create")
	m.prompt.SetValue("")
	m.prompt.Focus()
	m.overlay.Show()
	return m
}

func (m Model) closePrompt() Model {
	m.pending = nil
	m.prompt.Blur()
	m.overlay.Hide()
	m.setMode(ModeNormal, "prompt closed")
	return m
}

// submitPrompt adds the pending event with the typed title.
func (m Model) submitPrompt() (Model, tea.Cmd) {
	p := m.pending
	if p == nil {
		return m.closePrompt(), nil
	}

	var (
		e   *calendar.Event
		err error
	)
	if p.allDay {
		e, err = calendar.NewAllDay(m.prompt.Value(), p.start, p.end)
	} else {
		e, err = calendar.New(m.prompt.Value(), p.start, p.end)
	}
	if err != nil {
		// Keep the prompt open so the user can fix the title.
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.store.Add(e)
	debuglog.Log("EVENT_CREATED", map[string]any{"id": e.ID.String(), "all_day": e.AllDay})
	m = m.closePrompt()
	m.selected = e.ID
	return m, commands.Status("Created " + e.Title)
}

func (m Model) moveEvent(o outcome) (Model, tea.Cmd) {
	id, err := calendar.ParseID(o.target)
	if err != nil {
		return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
	}
	if err := m.store.Move(id, o.start, o.end); err != nil {
		return m, func() tea.Msg { return commands.ErrMsg{Err: fmt.Errorf("moving event: %w", err)} }
	}
	m.selected = id
	e, _ := m.store.Get(id)
	return m, commands.Status(fmt.Sprintf("Moved %s to %s %s", e.Title, e.Start.Format("Mon"), e.Start.Clock()))
}

// selectEvent marks an event and previews its range in the time grid.
func (m Model) selectEvent(target string) Model {
	id, err := calendar.ParseID(target)
	if err != nil {
		return m
	}
	e, err := m.store.Get(id)
	if err != nil {
		return m
	}
	m.clearSelection()
	m.selected = id
	if !e.AllDay {
		day := e.Start.StartOfDay().DaysSince(m.host.weekStart)
		if day >= 0 && day < m.host.layout.Days {
			m.engine.preview(dayColumn{host: m.host, index: day}, e.Start, e.End, e.Title)
		}
	}
	debuglog.Log("EVENT_SELECTED", map[string]any{"id": target})
	return m
}

func (m *Model) clearSelection() {
	m.selected = uuid.Nil
	m.engine.clearPreview()
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	if m.selected == uuid.Nil {
		return m, nil
	}
	e, err := m.store.Get(m.selected)
	if err == nil {
		err = m.store.Delete(m.selected)
	}
	m.clearSelection()
	if err != nil {
		return m, func() tea.Msg { return commands.ErrMsg{Err: fmt.Errorf("deleting event: %w", err)} }
	}
	return m, commands.Status("Deleted " + e.Title)
}

func (m Model) copySelected() tea.Cmd {
	if m.selected == uuid.Nil {
		return nil
	}
	e, err := m.store.Get(m.selected)
	if err != nil {
		return nil
	}
	return commands.CopyToClipboard(e.Summary(), "event")
}

// shiftWeek moves the visible week by n weeks.
func (m Model) shiftWeek(n int) Model {
	if m.engine.dragging() {
		m.engine.cancel()
	}
	m.clearSelection()
	m.host.weekStart = m.host.weekStart.AddDays(7 * n)
	debuglog.Log("WEEK_SHIFT", map[string]any{"week_start": m.host.weekStart.String()})
	return m
}

func (m Model) goToday() Model {
	if m.engine.dragging() {
		m.engine.cancel()
	}
	m.clearSelection()
	m.host.weekStart = m.weekOf(m.now())
	return m
}

// scrollBy scrolls the time grid. Ignored while dragging since controllers keep
// the bounds they saw on pointer-down.
func (m Model) scrollBy(rows int) Model {
	if m.engine.dragging() {
		return m
	}
	m.scroll += rows
	m.relayout()
	return m
}

func (m *Model) setMode(to Mode, reason string) {
	if m.mode == to {
		return
	}
	debuglog.Log("MODE_CHANGE", map[string]any{
		"from":   m.mode.String(),
		"to":     to.String(),
		"reason": reason,
	})
	m.mode = to
}
