package drag

import (
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/grid"
)

// View is any host view a sample can be related to.
type View interface {
	// BaseDate returns midnight of the first day the view renders.
	BaseDate() dateutil.TimePoint
}

// TimeView is one day column of the time grid.
type TimeView interface {
	View
	// ContainerBounds returns the current layout. The value is only valid until the
	// host re-renders, so controllers snapshot it once per session.
	ContainerBounds() grid.Bounds
}

// TimeGrid finds the day column under a pointer.
type TimeGrid interface {
	ViewAt(ev PointerEvent) (TimeView, bool)
}

// AlldayView is the all-day lane spanning every visible day.
type AlldayView interface {
	View
	LaneBounds() grid.LaneBounds
}

// EventLookup returns the current range of the event identified by target.
type EventLookup func(target string) (start, end dateutil.TimePoint, ok bool)
