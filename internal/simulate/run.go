package simulate

import (
	"fmt"
	"math"

	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/drag"
	"github.com/javiermolinar/dragcal/internal/grid"
	"github.com/javiermolinar/dragcal/internal/guide"
)

// Record is one lifecycle event a controller emitted.
type Record struct {
	Step       int
	Controller string
	Event      drag.EventName
	Trigger    drag.TriggerEvent
	Target     string
	GridY      float64
	Nearest    float64
	XIndex     int
	DayOffset  int
	Span       drag.Span
}

// Paint is the guide box shown after a step.
type Paint struct {
	Step       int
	Controller string
	Box        guide.Box
}

// Result is everything a run produced, in order.
type Result struct {
	Records []Record
	Paints  []Paint
}

// Events returns the emitted event names in order.
func (r *Result) Events() []drag.EventName {
	names := make([]drag.EventName, len(r.Records))
	for i, rec := range r.Records {
		names[i] = rec.Event
	}
	return names
}

// Last returns the last record with the given event name.
func (r *Result) Last(name drag.EventName) (Record, bool) {
	for i := len(r.Records) - 1; i >= 0; i-- {
		if r.Records[i].Event == name {
			return r.Records[i], true
		}
	}
	return Record{}, false
}

// surface is the simulated host: columns side by side, the all-day lane spans
// them at the same x.
type surface struct {
	layout GridSpec
	first  dateutil.TimePoint
	events map[string][2]dateutil.TimePoint
}

type column struct {
	s     *surface
	index int
}

func (c column) BaseDate() dateutil.TimePoint { return c.s.first.AddDays(c.index) }

func (c column) ContainerBounds() grid.Bounds {
	return grid.Bounds{
		Top:       c.s.layout.Top,
		Height:    c.s.layout.Height,
		HourStart: c.s.layout.HourStart,
		HourEnd:   c.s.layout.HourEnd,
	}
}

func (s *surface) ViewAt(ev drag.PointerEvent) (drag.TimeView, bool) {
	i := int(math.Floor(ev.X / s.layout.ColumnWidth))
	if i < 0 || i >= s.layout.Columns {
		return nil, false
	}
	return column{s: s, index: i}, true
}

func (s *surface) BaseDate() dateutil.TimePoint { return s.first }

func (s *surface) LaneBounds() grid.LaneBounds {
	return grid.LaneBounds{
		Width:       float64(s.layout.Columns) * s.layout.ColumnWidth,
		ColumnCount: s.layout.Columns,
	}
}

func (s *surface) lookup(target string) (start, end dateutil.TimePoint, ok bool) {
	r, ok := s.events[target]
	return r[0], r[1], ok
}

// container keeps track of the mounted element of one guide.
type container struct {
	mounted *guide.Element
}

func (c *container) Mount(el *guide.Element) { c.mounted = el }

func (c *container) Unmount(el *guide.Element) {
	if c.mounted == el {
		c.mounted = nil
	}
}

type lane struct {
	name       string
	controller *drag.Controller
	guide      *guide.Guide
	container  *container
}

// Run feeds every step to its controller. Guide paints are coalesced per step,
// the way a host flushes them once per frame.
func Run(s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	first, err := s.firstDay()
	if err != nil {
		return nil, err
	}

	host := &surface{layout: s.Grid, first: first, events: make(map[string][2]dateutil.TimePoint)}
	for _, e := range s.Events {
		start, _ := parseClock(e.Start)
		end, _ := parseClock(e.End)
		day := first.AddDays(e.Day)
		host.events[e.ID] = [2]dateutil.TimePoint{day.AddMinutes(start), day.AddMinutes(end)}
	}

	opts := []drag.Option{
		drag.WithClickThreshold(s.Grid.ClickThreshold),
		drag.WithSlotMinutes(s.Grid.SlotMinutes),
	}
	frames := &guide.Coalescer{}
	tc := drag.NewTimeCreation(host, opts...)
	tm := drag.NewTimeMove(host, host.lookup, opts...)
	ac := drag.NewAlldayCreation(host, opts...)

	lanes := map[string]*lane{
		"time":   {name: "time", controller: tc.Controller, container: &container{}},
		"move":   {name: "move", controller: tm.Controller, container: &container{}},
		"allday": {name: "allday", controller: ac.Controller, container: &container{}},
	}
	lanes["time"].guide = guide.NewTimeCreationGuide(tc, lanes["time"].container, frames.Slot())
	lanes["move"].guide = guide.NewTimeMoveGuide(tm, lanes["move"].container, frames.Slot())
	lanes["allday"].guide = guide.NewAlldayCreationGuide(ac, lanes["allday"].container, frames.Slot())
	defer func() {
		for _, l := range lanes {
			l.guide.Destroy()
			l.controller.Destroy()
		}
	}()

	res := &Result{}
	step := 0
	for _, l := range lanes {
		for _, name := range []drag.EventName{drag.EventDragStart, drag.EventDrag, drag.EventDragEnd, drag.EventClick} {
			l.controller.On(name, func(d drag.ScheduleData) {
				res.Records = append(res.Records, Record{
					Step:       step,
					Controller: l.name,
					Event:      name,
					Trigger:    d.TriggerEvent,
					Target:     d.Target,
					GridY:      d.GridY,
					Nearest:    d.NearestGridY,
					XIndex:     d.XIndex,
					DayOffset:  d.DayOffset,
					Span:       d.Span,
				})
			})
		}
	}

	for i, st := range s.Steps {
		step = i + 1
		l := lanes[st.Controller]
		l.controller.Handle(drag.PointerEvent{
			Type:   pointerTypes[st.Type],
			X:      st.X,
			Y:      st.Y,
			Target: st.Target,
		})

		if frames.Flush() {
			for _, name := range []string{"time", "move", "allday"} {
				if el := lanes[name].container.mounted; el != nil && el.Display {
					res.Paints = append(res.Paints, Paint{Step: step, Controller: name, Box: el.Box})
				}
			}
		}
	}

	debuglog.Log("SIMULATION_DONE", map[string]any{
		"steps":   len(s.Steps),
		"records": len(res.Records),
		"paints":  len(res.Paints),
	})
	return res, nil
}

// Describe formats a record on one line.
func (r Record) Describe() string {
	switch r.Controller {
	case "allday":
		return fmt.Sprintf("%s %s %s..%s", r.Controller, r.Event, r.Span.Start.Format("Mon Jan 2"), r.Span.End.Format("Mon Jan 2"))
	default:
		return fmt.Sprintf("%s %s %s %s-%s", r.Controller, r.Event, r.Span.Start.Format("Mon Jan 2"), r.Span.Start.Clock(), r.Span.End.Clock())
	}
}
