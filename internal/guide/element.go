// Package guide renders the transient overlay that tracks an in-progress drag.
//
// Geometry (pure) is kept apart from element attachment (side effects) so the
// placement math can be tested without a rendering environment.
package guide

import (
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/drag"
	"github.com/javiermolinar/dragcal/internal/grid"
)

// TextForNewEvent is the default label of a creation guide.
const TextForNewEvent = "New event"

// Box is the placement of a guide. Left and Width are percentages of the all-day
// lane; Top and Height are container units of a time column.
type Box struct {
	Left   float64
	Width  float64
	Top    float64
	Height float64
	Start  dateutil.TimePoint
	End    dateutil.TimePoint
}

// Element is the overlay a guide owns. It is reused across drag sessions.
type Element struct {
	Label       string
	BlockHeight int
	Display     bool
	Box         Box
}

// Reset returns the element to its inert state.
func (e *Element) Reset() {
	e.Display = false
	e.Box = Box{}
}

// Container is the host surface a guide element is attached to.
type Container interface {
	Mount(el *Element)
	Unmount(el *Element)
}

// AlldayBox places a guide over the normalized day span of d.
func AlldayBox(d drag.ScheduleData) Box {
	p := grid.DayRatio(d.DatesInRange, d.DragStartXIndex, d.Length)
	return Box{
		Left:  p.Left,
		Width: p.Width,
		Start: d.Span.Start,
		End:   d.Span.End,
	}
}

// TimeBox places a guide over the hour span of d inside its column.
func TimeBox(d drag.ScheduleData) Box {
	hours := float64(d.Bounds.HourSpan())
	if hours <= 0 {
		return Box{}
	}
	top := d.Span.StartY / hours * d.Bounds.Height
	bottom := d.Span.EndY / hours * d.Bounds.Height
	return Box{
		Top:    top,
		Height: bottom - top,
		Start:  d.Span.Start,
		End:    d.Span.End,
	}
}
