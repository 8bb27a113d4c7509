package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dragcal/internal/calendar"
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/drag"
)

// handleMouseMsg turns terminal mouse input into pointer samples.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModePrompt {
		return m, nil
	}
	debuglog.Log("MOUSE", map[string]any{
		"x":      msg.X,
		"y":      msg.Y,
		"action": int(msg.Action),
		"button": int(msg.Button),
	})

	x, y := float64(msg.X), float64(msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scrollBy(-1), nil
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scrollBy(1), nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m = m.routePress(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		m.engine.feed(drag.PointerEvent{Type: drag.PointerMove, X: x, Y: y})
	case msg.Action == tea.MouseActionRelease:
		m.engine.feed(drag.PointerEvent{Type: drag.PointerUp, X: x, Y: y})
	default:
		return m, nil
	}
	return m.afterGesture()
}

// routePress picks the controller for a press: the all-day lane creates all-day
// events, a timed event starts a move, and an empty cell starts a creation.
func (m Model) routePress(cx, cy int) Model {
	l := m.host.layout
	ev := drag.PointerEvent{Type: drag.PointerDown, X: float64(cx), Y: float64(cy)}

	if m.engine.dragging() {
		m.engine.startCreation(ev)
		return m
	}

	day, ok := l.DayAt(cx)
	if !ok {
		m.clearSelection()
		return m
	}
	date := m.host.day(day)

	if laneRow, ok := l.LaneRowAt(cy); ok {
		if e, ok := m.alldayAt(date, laneRow); ok {
			return m.selectEvent(e.ID.String())
		}
		m.clearSelection()
		m.engine.startAllday(ev)
		return m
	}

	row, ok := l.RowAt(cy)
	if !ok {
		return m
	}
	if e, ok := m.eventInRow(date, row); ok {
		ev.Target = e.ID.String()
		m.engine.startMove(ev, e.Title)
		return m
	}
	m.clearSelection()
	m.engine.startCreation(ev)
	return m
}

// eventInRow returns the timed event drawn in row of day, the latest starting
// one when several share the row.
func (m Model) eventInRow(day dateutil.TimePoint, row int) (calendar.Event, bool) {
	l := m.host.layout
	from := l.RowStart(day, row)
	events := m.store.Overlapping(from, from.AddMinutes(l.MinutesPerRow()))
	if len(events) == 0 {
		return calendar.Event{}, false
	}
	return events[len(events)-1], true
}

// alldayAt returns the all-day event shown in lane row of day.
func (m Model) alldayAt(day dateutil.TimePoint, laneRow int) (calendar.Event, bool) {
	events := m.store.AllDayOn(day)
	if laneRow >= len(events) {
		return calendar.Event{}, false
	}
	return events[laneRow], true
}
