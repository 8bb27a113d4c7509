package guide

import (
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/drag"
)

// Source is a controller a guide listens to.
type Source interface {
	On(name drag.EventName, fn drag.Handler) (off func())
}

// Geometry computes the placement for a sample.
type Geometry func(d drag.ScheduleData) Box

// Option configures a guide.
type Option func(*Guide)

// WithLabel sets the element label.
func WithLabel(label string) Option {
	return func(g *Guide) {
		g.element.Label = label
	}
}

// WithBlockHeight sizes the element from the host's event block height minus the
// top margin events keep inside their block.
func WithBlockHeight(eventBlockHeight, topMargin int) Option {
	return func(g *Guide) {
		g.element.BlockHeight = max(1, eventBlockHeight-topMargin)
	}
}

// Guide mirrors a controller's drag span onto one reusable element.
type Guide struct {
	container Container
	frames    FrameScheduler
	geometry  Geometry
	element   *Element
	offs      []func()
	mounted   bool
	destroyed bool
}

// New subscribes a guide to src. A nil frames paints immediately.
func New(src Source, container Container, frames FrameScheduler, geometry Geometry, opts ...Option) *Guide {
	if frames == nil {
		frames = Immediate{}
	}
	g := &Guide{
		container: container,
		frames:    frames,
		geometry:  geometry,
		element:   &Element{Label: TextForNewEvent, BlockHeight: 1},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.offs = []func(){
		src.On(drag.EventDragStart, g.onDragStart),
		src.On(drag.EventPreview, g.onDragStart),
		src.On(drag.EventDrag, g.refresh),
		src.On(drag.EventDragEnd, g.onClear),
		src.On(drag.EventClick, g.onClear),
		src.On(drag.EventPreviewEnd, g.onClear),
	}
	return g
}

// NewTimeCreationGuide follows a time creation controller, previews included.
func NewTimeCreationGuide(tc *drag.TimeCreation, container Container, frames FrameScheduler, opts ...Option) *Guide {
	return New(tc, container, frames, TimeBox, opts...)
}

// NewTimeMoveGuide follows a time move controller.
func NewTimeMoveGuide(tm *drag.TimeMove, container Container, frames FrameScheduler, opts ...Option) *Guide {
	return New(tm, container, frames, TimeBox, opts...)
}

// NewAlldayCreationGuide follows an all-day creation controller.
func NewAlldayCreationGuide(ac *drag.AlldayCreation, container Container, frames FrameScheduler, opts ...Option) *Guide {
	return New(ac, container, frames, AlldayBox, opts...)
}

// Element returns the guide element, or nil after Destroy.
func (g *Guide) Element() *Element {
	return g.element
}

// Mounted reports whether the element is attached to the container.
func (g *Guide) Mounted() bool {
	return g.mounted
}

// Destroy detaches from the controller and drops the element. Safe to call twice.
func (g *Guide) Destroy() {
	if g.destroyed {
		return
	}
	g.onClear(drag.ScheduleData{})
	for _, off := range g.offs {
		off()
	}
	g.offs = nil
	g.element = nil
	g.container = nil
	g.destroyed = true
}

func (g *Guide) onDragStart(d drag.ScheduleData) {
	if g.container == nil || g.element == nil {
		return
	}
	if !g.mounted {
		g.container.Mount(g.element)
		g.mounted = true
	}
	g.refresh(d)
}

// refresh schedules a repaint from d. Without a mounted element it does nothing.
func (g *Guide) refresh(d drag.ScheduleData) {
	if !g.mounted || g.element == nil {
		debuglog.Log("GUIDE_REFRESH_SKIPPED", map[string]any{"kind": string(d.Kind)})
		return
	}
	box := g.geometry(d)
	el := g.element
	g.frames.Request(func() {
		if !g.mounted || g.element != el {
			return
		}
		el.Display = true
		el.Box = box
	})
}

func (g *Guide) onClear(drag.ScheduleData) {
	el := g.element
	if el == nil {
		return
	}
	if g.mounted && g.container != nil {
		g.container.Unmount(el)
	}
	g.mounted = false
	el.Reset()
}
