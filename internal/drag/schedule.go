// Package drag turns pointer input over a calendar grid into resolved schedule
// samples and drives the drag lifecycle (dragstart, drag, dragend, click).
package drag

import (
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/grid"
)

// Kind identifies a controller flavour.
type Kind string

const (
	KindTimeCreation   Kind = "time_creation"
	KindTimeMove       Kind = "time_move"
	KindAlldayCreation Kind = "allday_creation"
)

// TriggerEvent names the input that produced a sample.
type TriggerEvent string

const (
	TriggerMouseDown TriggerEvent = "mousedown"
	TriggerMouseMove TriggerEvent = "mousemove"
	TriggerMouseUp   TriggerEvent = "mouseup"
	TriggerClick     TriggerEvent = "click"
	TriggerManual    TriggerEvent = "manual"
)

// PointerType is the kind of pointer input.
type PointerType int

const (
	PointerDown PointerType = iota
	PointerMove
	PointerUp
	// PointerCancel models lost pointer capture. It ends the session like PointerUp.
	PointerCancel
)

func (p PointerType) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer sample in the host's coordinate space.
type PointerEvent struct {
	Type   PointerType
	X, Y   float64
	Target string // host identifier of the element under the pointer
}

// Span is the calendar range a drag currently covers. StartY and EndY are hour
// offsets from the grid's first visible hour (time axis only).
type Span struct {
	StartY float64
	EndY   float64
	Start  dateutil.TimePoint
	End    dateutil.TimePoint
}

// ScheduleData is the resolved output of one pointer sample. Handlers receive a
// copy; changing it has no effect on the controller.
type ScheduleData struct {
	Kind        Kind
	Target      string
	RelatedView View

	// Time axis.
	Bounds              grid.Bounds
	HourStart           int
	MouseY              float64
	GridY               float64
	TimeY               dateutil.TimePoint
	NearestGridY        float64
	NearestGridTimeY    dateutil.TimePoint
	NearestGridEndY     float64            // manual resolution only
	NearestGridEndTimeY dateutil.TimePoint // manual resolution only
	DayOffset           int                // columns moved since drag start

	// All-day axis.
	XIndex          int
	DatesInRange    int
	DragStartXIndex int
	Length          int

	Span         Span
	TriggerEvent TriggerEvent
}
