package drag

import (
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/grid"
)

// ScheduleResolver turns a pointer sample into schedule data. Any value with this
// method can drive a Controller.
type ScheduleResolver interface {
	ResolveSchedule(ev PointerEvent) ScheduleData
}

// SpanResolver is implemented by resolvers that derive the dragged range from the
// session's first sample and the current one.
type SpanResolver interface {
	ResolveSpan(start, current ScheduleData) ScheduleData
}

// ResolverSource builds a resolver for a session starting at ev. Returning false
// means the pointer-down does not start a session.
type ResolverSource func(ev PointerEvent) (ScheduleResolver, bool)

// TimeResolver resolves samples against a frozen snapshot of one time column.
type TimeResolver struct {
	view   TimeView
	bounds grid.Bounds
	origin dateutil.TimePoint
}

// NewTimeResolver snapshots the view's bounds and base date.
func NewTimeResolver(view TimeView) *TimeResolver {
	bounds := view.ContainerBounds()
	return &TimeResolver{
		view:   view,
		bounds: bounds,
		origin: view.BaseDate().AddMinutes(bounds.HourStart * 60),
	}
}

// Bounds returns the snapshot the resolver works with.
func (r *TimeResolver) Bounds() grid.Bounds {
	return r.bounds
}

// ResolveSchedule implements ScheduleResolver.
func (r *TimeResolver) ResolveSchedule(ev PointerEvent) ScheduleData {
	mouseY := ev.Y - r.bounds.Top
	gridY := grid.HourRatio(r.bounds.Height, float64(r.bounds.HourSpan()), mouseY)
	nearest := grid.NearestGridY(gridY)

	return ScheduleData{
		Target:           ev.Target,
		RelatedView:      r.view,
		Bounds:           r.bounds,
		HourStart:        r.bounds.HourStart,
		MouseY:           mouseY,
		GridY:            gridY,
		TimeY:            r.origin.AddMinutes(grid.TruncMinutesFromHours(gridY)),
		NearestGridY:     nearest,
		NearestGridTimeY: r.origin.AddMinutes(grid.MinutesFromHours(nearest)),
	}
}

// ResolveFromDates builds a manual sample for a known range instead of a pointer.
// Offsets use half-hour anchors.
func ResolveFromDates(view TimeView, start, end dateutil.TimePoint) ScheduleData {
	bounds := view.ContainerBounds()
	origin := view.BaseDate().AddMinutes(bounds.HourStart * 60)

	gridY, nearestY := grid.ResolveFromDate(start, bounds.HourStart)
	_, nearestEndY := grid.ResolveFromDate(end, bounds.HourStart)

	startTime := origin.AddMinutes(grid.MinutesFromHours(nearestY))
	endTime := origin.AddMinutes(grid.MinutesFromHours(nearestEndY))

	return ScheduleData{
		Target:              "",
		RelatedView:         view,
		Bounds:              bounds,
		HourStart:           bounds.HourStart,
		GridY:               gridY,
		TimeY:               origin.AddMinutes(grid.MinutesFromHours(gridY)),
		NearestGridY:        nearestY,
		NearestGridTimeY:    startTime,
		NearestGridEndY:     nearestEndY,
		NearestGridEndTimeY: endTime,
		Span: Span{
			StartY: nearestY,
			EndY:   nearestEndY,
			Start:  startTime,
			End:    endTime,
		},
		TriggerEvent: TriggerManual,
	}
}

// creationResolver spans from the first to the current sample, inclusive of the
// slot under the pointer.
type creationResolver struct {
	*TimeResolver
	slotMinutes int
}

func (r *creationResolver) ResolveSpan(start, current ScheduleData) ScheduleData {
	lo, hi := start, current
	if hi.NearestGridY < lo.NearestGridY {
		lo, hi = hi, lo
	}
	slot := float64(r.slotMinutes) / 60
	current.Span = Span{
		StartY: lo.NearestGridY,
		EndY:   hi.NearestGridY + slot,
		Start:  lo.NearestGridTimeY,
		End:    hi.NearestGridTimeY.AddMinutes(r.slotMinutes),
	}
	return current
}

// moveResolver shifts an existing event by the pointer's travel, across columns
// when the pointer leaves the starting day.
type moveResolver struct {
	*TimeResolver
	grid      TimeGrid
	startDay  dateutil.TimePoint
	start     dateutil.TimePoint
	end       dateutil.TimePoint
	dayOffset int
}

func (r *moveResolver) ResolveSchedule(ev PointerEvent) ScheduleData {
	data := r.TimeResolver.ResolveSchedule(ev)
	if view, ok := r.grid.ViewAt(ev); ok {
		r.dayOffset = view.BaseDate().DaysSince(r.startDay)
	}
	data.DayOffset = r.dayOffset
	return data
}

func (r *moveResolver) ResolveSpan(start, current ScheduleData) ScheduleData {
	minutes := grid.MinutesFromHours(current.NearestGridY - start.NearestGridY)
	newStart := r.start.AddDays(current.DayOffset).AddMinutes(minutes)
	newEnd := newStart.AddMinutes(int(r.end.Sub(r.start).Minutes()))

	startY := grid.HourOffset(r.start, current.HourStart) + float64(minutes)/60
	current.Span = Span{
		StartY: startY,
		EndY:   startY + r.end.Sub(r.start).Hours(),
		Start:  newStart,
		End:    newEnd,
	}
	return current
}

// AlldayResolver resolves samples against a frozen snapshot of the all-day lane.
type AlldayResolver struct {
	view   AlldayView
	bounds grid.LaneBounds
	base   dateutil.TimePoint
}

// NewAlldayResolver snapshots the lane.
func NewAlldayResolver(view AlldayView) *AlldayResolver {
	return &AlldayResolver{
		view:   view,
		bounds: view.LaneBounds(),
		base:   view.BaseDate(),
	}
}

// ResolveSchedule implements ScheduleResolver.
func (r *AlldayResolver) ResolveSchedule(ev PointerEvent) ScheduleData {
	xIndex := grid.ColumnIndex(ev.X-r.bounds.Left, r.bounds.Width, r.bounds.ColumnCount)
	day := r.base.AddDays(xIndex)
	return ScheduleData{
		Target:           ev.Target,
		RelatedView:      r.view,
		XIndex:           xIndex,
		DatesInRange:     r.bounds.ColumnCount,
		TimeY:            day,
		NearestGridTimeY: day,
	}
}

// ResolveSpan implements SpanResolver. Backward drags are normalized so that
// DragStartXIndex is the smaller index.
func (r *AlldayResolver) ResolveSpan(start, current ScheduleData) ScheduleData {
	from, length := grid.NormalizeSpan(start.XIndex, current.XIndex)
	current.DragStartXIndex = from
	current.Length = length
	current.Span = Span{
		Start: r.base.AddDays(from),
		End:   r.base.AddDays(from + length),
	}
	return current
}
