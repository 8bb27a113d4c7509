package tui

import (
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/drag"
	"github.com/javiermolinar/dragcal/internal/grid"
)

// calendarHost is the state the drag engine reads through its view interfaces.
// It is shared by every copy of the model.
type calendarHost struct {
	layout    Layout
	weekStart dateutil.TimePoint
}

func (h *calendarHost) day(i int) dateutil.TimePoint {
	return h.weekStart.AddDays(i)
}

// ViewAt implements drag.TimeGrid.
func (h *calendarHost) ViewAt(ev drag.PointerEvent) (drag.TimeView, bool) {
	day, ok := h.layout.DayAt(int(ev.X))
	if !ok {
		return nil, false
	}
	return dayColumn{host: h, index: day}, true
}

// dayColumn is one time column.
type dayColumn struct {
	host  *calendarHost
	index int
}

func (c dayColumn) BaseDate() dateutil.TimePoint {
	return c.host.day(c.index)
}

func (c dayColumn) ContainerBounds() grid.Bounds {
	return c.host.layout.TimeBounds()
}

// alldayLane is the all-day row across the week.
type alldayLane struct {
	host *calendarHost
}

func (a alldayLane) BaseDate() dateutil.TimePoint {
	return a.host.weekStart
}

func (a alldayLane) LaneBounds() grid.LaneBounds {
	return a.host.layout.LaneBounds()
}
