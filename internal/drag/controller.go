package drag

import (
	"math"

	"github.com/javiermolinar/dragcal/internal/debuglog"
)

// State is the controller's drag state.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Session is the state of one pointer-down to pointer-up interaction.
type Session struct {
	State     State
	Started   bool // dragstart has been emitted
	StartData ScheduleData

	resolver ScheduleResolver
	originX  float64
	originY  float64
}

// Option configures a controller.
type Option func(*options)

type options struct {
	clickThreshold float64
	slotMinutes    int
}

// WithClickThreshold sets how far the pointer may travel between down and up and
// still count as a click. The default 0 means any position change starts a drag.
func WithClickThreshold(distance float64) Option {
	return func(o *options) {
		if distance >= 0 {
			o.clickThreshold = distance
		}
	}
}

// WithSlotMinutes sets the length of the slot under the pointer that a creation
// span always includes. Defaults to 30.
func WithSlotMinutes(minutes int) Option {
	return func(o *options) {
		if minutes > 0 {
			o.slotMinutes = minutes
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{slotMinutes: 30}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Controller is the drag state machine shared by every controller flavour.
// It is not safe for concurrent use; hosts feed it from their event loop.
type Controller struct {
	kind      Kind
	source    ResolverSource
	emitter   *Emitter
	session   *Session
	threshold float64
	destroyed bool
}

// NewController builds a controller that obtains a resolver from source on every
// pointer-down.
func NewController(kind Kind, source ResolverSource, opts ...Option) *Controller {
	o := buildOptions(opts)
	return &Controller{
		kind:      kind,
		source:    source,
		emitter:   NewEmitter(),
		threshold: o.clickThreshold,
	}
}

// Kind returns the controller flavour.
func (c *Controller) Kind() Kind {
	return c.kind
}

// State returns StateDragging while a session is open.
func (c *Controller) State() State {
	if c.session == nil {
		return StateIdle
	}
	return c.session.State
}

// Session returns a copy of the open session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// On subscribes to a lifecycle event. It returns a no-op after Destroy.
func (c *Controller) On(name EventName, fn Handler) (off func()) {
	if c.destroyed {
		return func() {}
	}
	return c.emitter.On(name, fn)
}

// Handle feeds one pointer sample into the state machine.
func (c *Controller) Handle(ev PointerEvent) {
	if c.destroyed {
		return
	}
	switch ev.Type {
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
	case PointerUp, PointerCancel:
		c.pointerUp(ev)
	}
}

// Destroy drops the session and all subscriptions. Calling it again does nothing.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.session = nil
	c.emitter.Clear()
	debuglog.Log("DRAG_DESTROY", map[string]any{"kind": string(c.kind)})
}

// Destroyed reports whether Destroy was called.
func (c *Controller) Destroyed() bool {
	return c.destroyed
}

func (c *Controller) pointerDown(ev PointerEvent) {
	if c.session != nil {
		debuglog.Log("DRAG_REENTRY_IGNORED", map[string]any{
			"kind": string(c.kind),
			"x":    ev.X,
			"y":    ev.Y,
		})
		return
	}

	resolver, ok := c.source(ev)
	if !ok || resolver == nil {
		return
	}

	data := resolver.ResolveSchedule(ev)
	data.Kind = c.kind
	data.TriggerEvent = TriggerMouseDown
	data = resolveSpan(resolver, data, data)

	c.session = &Session{
		State:     StateDragging,
		StartData: data,
		resolver:  resolver,
		originX:   ev.X,
		originY:   ev.Y,
	}
	debuglog.Log("DRAG_SESSION_OPEN", map[string]any{
		"kind":   string(c.kind),
		"target": ev.Target,
	})
}

func (c *Controller) pointerMove(ev PointerEvent) {
	s := c.session
	if s == nil {
		return
	}

	if !s.Started {
		if math.Hypot(ev.X-s.originX, ev.Y-s.originY) <= c.threshold {
			return
		}
		s.Started = true
		debuglog.Log("DRAG_START", map[string]any{"kind": string(c.kind)})
		c.emitter.Emit(EventDragStart, s.StartData)
		if c.session != s {
			// A handler destroyed the controller.
			return
		}
	}

	c.emitter.Emit(EventDrag, c.sample(s, ev, TriggerMouseMove))
}

func (c *Controller) pointerUp(ev PointerEvent) {
	s := c.session
	if s == nil {
		return
	}
	// The session ends here whatever the handlers do.
	c.session = nil

	if s.Started {
		data := c.sample(s, ev, TriggerMouseUp)
		debuglog.Log("DRAG_END", map[string]any{
			"kind":    string(c.kind),
			"trigger": ev.Type.String(),
		})
		c.emitter.Emit(EventDragEnd, data)
		return
	}

	data := c.sample(s, ev, TriggerClick)
	debuglog.Log("DRAG_CLICK", map[string]any{"kind": string(c.kind)})
	c.emitter.Emit(EventClick, data)
}

func (c *Controller) sample(s *Session, ev PointerEvent, trigger TriggerEvent) ScheduleData {
	data := s.resolver.ResolveSchedule(ev)
	data.Kind = c.kind
	data.TriggerEvent = trigger
	// Only pointer-down carries the grabbed target.
	if data.Target == "" {
		data.Target = s.StartData.Target
	}
	return resolveSpan(s.resolver, s.StartData, data)
}

func resolveSpan(r ScheduleResolver, start, current ScheduleData) ScheduleData {
	if sr, ok := r.(SpanResolver); ok {
		return sr.ResolveSpan(start, current)
	}
	return current
}

// emit sends a sample that did not come from the pointer, such as a preview.
func (c *Controller) emit(name EventName, data ScheduleData) {
	if c.destroyed {
		return
	}
	data.Kind = c.kind
	c.emitter.Emit(name, data)
}
