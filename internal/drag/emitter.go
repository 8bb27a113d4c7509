package drag

// EventName is a controller lifecycle event.
type EventName string

const (
	EventDragStart  EventName = "dragstart"
	EventDrag       EventName = "drag"
	EventDragEnd    EventName = "dragend"
	EventClick      EventName = "click"
	EventPreview    EventName = "preview"
	EventPreviewEnd EventName = "previewend"
)

// Handler receives a copy of the sample.
type Handler func(ScheduleData)

type subscription struct {
	id int
	fn Handler
}

// Emitter is a typed event emitter owned by one controller.
type Emitter struct {
	nextID int
	subs   map[EventName][]subscription
}

// NewEmitter returns an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{subs: make(map[EventName][]subscription)}
}

// On registers fn for name. The returned function removes the subscription and is
// safe to call more than once.
func (e *Emitter) On(name EventName, fn Handler) (off func()) {
	if fn == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.subs[name] = append(e.subs[name], subscription{id: id, fn: fn})

	return func() {
		subs := e.subs[name]
		for i, s := range subs {
			if s.id == id {
				e.subs[name] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every handler registered for name in subscription order.
func (e *Emitter) Emit(name EventName, data ScheduleData) {
	// Copy so handlers may unsubscribe while being called.
	subs := append([]subscription(nil), e.subs[name]...)
	for _, s := range subs {
		s.fn(data)
	}
}

// Count returns the number of handlers registered for name.
func (e *Emitter) Count(name EventName) int {
	return len(e.subs[name])
}

// Clear drops every subscription.
func (e *Emitter) Clear() {
	e.subs = make(map[EventName][]subscription)
}
