package tui

import (
	"slices"

	"github.com/javiermolinar/dragcal/internal/calendar"
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/drag"
	"github.com/javiermolinar/dragcal/internal/guide"
)

type outcomeKind int

const (
	outcomeCreate outcomeKind = iota // ask for a title, then add the event
	outcomeMove                      // reschedule an existing event
	outcomeSelect                    // an existing event was clicked
)

// outcome is what a finished gesture asks the model to do. Controller handlers
// run inside Update and cannot return commands, so they queue outcomes instead.
type outcome struct {
	kind   outcomeKind
	allDay bool
	target string
	start  dateutil.TimePoint
	end    dateutil.TimePoint
}

type engineOptions struct {
	clickThreshold  float64
	slotMinutes     int
	defaultDuration int
	blockHeight     int
}

// engine owns the drag controllers, their guides and the guide layer.
type engine struct {
	creation *drag.TimeCreation
	move     *drag.TimeMove
	allday   *drag.AlldayCreation
	guides   []*guide.Guide
	createGd *guide.Guide
	moveGd   *guide.Guide
	layer    *guideLayer
	frames   *guide.Coalescer
	opts     engineOptions

	active    *drag.Controller
	cancelled bool
	outcomes  []outcome
}

func newEngine(host *calendarHost, store *calendar.Store, opts engineOptions) *engine {
	dragOpts := []drag.Option{
		drag.WithClickThreshold(opts.clickThreshold),
		drag.WithSlotMinutes(opts.slotMinutes),
	}
	e := &engine{
		creation: drag.NewTimeCreation(host, dragOpts...),
		move:     drag.NewTimeMove(host, store.Lookup, dragOpts...),
		allday:   drag.NewAlldayCreation(alldayLane{host: host}, dragOpts...),
		layer:    &guideLayer{},
		frames:   &guide.Coalescer{},
		opts:     opts,
	}

	timed := layerSlot{layer: e.layer}
	lane := layerSlot{layer: e.layer, allday: true}
	e.createGd = guide.NewTimeCreationGuide(e.creation, timed, e.frames.Slot())
	e.moveGd = guide.NewTimeMoveGuide(e.move, timed, e.frames.Slot())
	e.guides = []*guide.Guide{
		e.createGd,
		e.moveGd,
		guide.NewAlldayCreationGuide(e.allday, lane, e.frames.Slot(), guide.WithBlockHeight(opts.blockHeight, 1)),
	}

	e.creation.On(drag.EventDragEnd, func(d drag.ScheduleData) {
		e.queue(outcome{kind: outcomeCreate, start: d.Span.Start, end: d.Span.End})
	})
	e.creation.On(drag.EventClick, func(d drag.ScheduleData) {
		e.queue(outcome{
			kind:  outcomeCreate,
			start: d.Span.Start,
			end:   d.Span.Start.AddMinutes(e.opts.defaultDuration),
		})
	})
	e.move.On(drag.EventDragEnd, func(d drag.ScheduleData) {
		e.queue(outcome{kind: outcomeMove, target: d.Target, start: d.Span.Start, end: d.Span.End})
	})
	e.move.On(drag.EventClick, func(d drag.ScheduleData) {
		e.queue(outcome{kind: outcomeSelect, target: d.Target})
	})
	e.allday.On(drag.EventDragEnd, func(d drag.ScheduleData) {
		e.queue(outcome{kind: outcomeCreate, allDay: true, start: d.Span.Start, end: d.Span.End})
	})
	e.allday.On(drag.EventClick, func(d drag.ScheduleData) {
		e.queue(outcome{kind: outcomeCreate, allDay: true, start: d.Span.Start, end: d.Span.End})
	})
	return e
}

func (e *engine) queue(o outcome) {
	if e.cancelled {
		debuglog.Log("GESTURE_CANCELLED", map[string]any{"target": o.target})
		return
	}
	e.outcomes = append(e.outcomes, o)
}

// drain returns and clears the queued outcomes.
func (e *engine) drain() []outcome {
	out := e.outcomes
	e.outcomes = nil
	return out
}

// dragging reports whether a pointer session is open.
func (e *engine) dragging() bool {
	return e.active != nil && e.active.State() == drag.StateDragging
}

// startCreation begins a time creation gesture.
func (e *engine) startCreation(ev drag.PointerEvent) {
	if !e.dragging() {
		setLabel(e.createGd, guide.TextForNewEvent)
	}
	e.start(e.creation.Controller, ev)
}

// startMove begins moving the event titled title.
func (e *engine) startMove(ev drag.PointerEvent, title string) {
	if !e.dragging() {
		setLabel(e.moveGd, title)
	}
	e.start(e.move.Controller, ev)
}

// startAllday begins an all-day creation gesture.
func (e *engine) startAllday(ev drag.PointerEvent) {
	e.start(e.allday.Controller, ev)
}

func (e *engine) start(c *drag.Controller, ev drag.PointerEvent) {
	if e.dragging() {
		// The open session sees the reentry and logs it.
		e.active.Handle(ev)
		return
	}
	e.creation.ClearPreview()
	e.cancelled = false
	e.active = c
	c.Handle(ev)
	if c.State() != drag.StateDragging {
		e.active = nil
	}
}

// feed forwards a move or release to the open session.
func (e *engine) feed(ev drag.PointerEvent) {
	if e.active == nil {
		return
	}
	e.active.Handle(ev)
	if e.active.State() == drag.StateIdle {
		e.active = nil
	}
}

// cancel aborts the open session; its dragend outcome is discarded.
func (e *engine) cancel() {
	if e.active == nil {
		return
	}
	e.cancelled = true
	e.feed(drag.PointerEvent{Type: drag.PointerCancel})
	e.cancelled = false
}

// preview highlights an existing event through the creation guide.
func (e *engine) preview(col dayColumn, start, end dateutil.TimePoint, label string) {
	setLabel(e.createGd, label)
	e.creation.Preview(col, start, end)
}

func setLabel(g *guide.Guide, label string) {
	if el := g.Element(); el != nil {
		el.Label = label
	}
}

func (e *engine) clearPreview() {
	e.creation.ClearPreview()
}

// destroy tears down guides first so they unmount before controllers go away.
func (e *engine) destroy() {
	for _, g := range e.guides {
		g.Destroy()
	}
	e.creation.Destroy()
	e.move.Destroy()
	e.allday.Destroy()
	e.active = nil
}

// guideLayer holds the mounted guide elements the renderer paints.
type guideLayer struct {
	timed  []*guide.Element
	allday []*guide.Element
}

// layerSlot is the guide.Container for one half of the layer.
type layerSlot struct {
	layer  *guideLayer
	allday bool
}

func (s layerSlot) list() *[]*guide.Element {
	if s.allday {
		return &s.layer.allday
	}
	return &s.layer.timed
}

// Mount implements guide.Container.
func (s layerSlot) Mount(el *guide.Element) {
	l := s.list()
	if !slices.Contains(*l, el) {
		*l = append(*l, el)
	}
}

// Unmount implements guide.Container.
func (s layerSlot) Unmount(el *guide.Element) {
	l := s.list()
	*l = slices.DeleteFunc(*l, func(x *guide.Element) bool { return x == el })
}
