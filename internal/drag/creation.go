package drag

import "github.com/javiermolinar/dragcal/internal/dateutil"

// TimeCreation creates a new event by dragging over a time column.
type TimeCreation struct {
	*Controller
	previewing bool
}

// NewTimeCreation binds a creation controller to the host's time grid.
func NewTimeCreation(g TimeGrid, opts ...Option) *TimeCreation {
	o := buildOptions(opts)
	source := func(ev PointerEvent) (ScheduleResolver, bool) {
		view, ok := g.ViewAt(ev)
		if !ok {
			return nil, false
		}
		return &creationResolver{
			TimeResolver: NewTimeResolver(view),
			slotMinutes:  o.slotMinutes,
		}, true
	}
	return &TimeCreation{Controller: NewController(KindTimeCreation, source, opts...)}
}

// Preview shows a known range on view without a pointer session, for example an
// existing event the user selected. It is ignored while a drag is in progress.
func (tc *TimeCreation) Preview(view TimeView, start, end dateutil.TimePoint) {
	if tc.Destroyed() || tc.State() == StateDragging {
		return
	}
	tc.previewing = true
	tc.emit(EventPreview, ResolveFromDates(view, start, end))
}

// ClearPreview removes a range shown with Preview.
func (tc *TimeCreation) ClearPreview() {
	if !tc.previewing {
		return
	}
	tc.previewing = false
	tc.emit(EventPreviewEnd, ScheduleData{TriggerEvent: TriggerManual})
}

// Previewing reports whether a preview is shown.
func (tc *TimeCreation) Previewing() bool {
	return tc.previewing
}

// TimeMove drags an existing event to a new start, keeping its duration.
type TimeMove struct {
	*Controller
}

// NewTimeMove binds a move controller to the host's time grid. Pointer-downs on
// targets lookup does not recognise do not start a session.
func NewTimeMove(g TimeGrid, lookup EventLookup, opts ...Option) *TimeMove {
	source := func(ev PointerEvent) (ScheduleResolver, bool) {
		if ev.Target == "" || lookup == nil {
			return nil, false
		}
		start, end, ok := lookup(ev.Target)
		if !ok {
			return nil, false
		}
		view, ok := g.ViewAt(ev)
		if !ok {
			return nil, false
		}
		return &moveResolver{
			TimeResolver: NewTimeResolver(view),
			grid:         g,
			startDay:     view.BaseDate(),
			start:        start,
			end:          end,
		}, true
	}
	return &TimeMove{Controller: NewController(KindTimeMove, source, opts...)}
}

// AlldayCreation creates an all-day event by dragging over the all-day lane.
type AlldayCreation struct {
	*Controller
	view AlldayView
}

// NewAlldayCreation binds a creation controller to the all-day lane.
func NewAlldayCreation(view AlldayView, opts ...Option) *AlldayCreation {
	source := func(ev PointerEvent) (ScheduleResolver, bool) {
		return NewAlldayResolver(view), true
	}
	return &AlldayCreation{
		Controller: NewController(KindAlldayCreation, source, opts...),
		view:       view,
	}
}

// View returns the lane the controller is bound to.
func (ac *AlldayCreation) View() AlldayView {
	return ac.view
}
