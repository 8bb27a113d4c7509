package calendar

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

// Store keeps events in memory.
type Store struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*Event
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{events: make(map[uuid.UUID]*Event)}
}

// Add stores e. A nil event is ignored.
func (s *Store) Add(e *Event) {
	if e == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
}

// Get returns a copy of the event with id.
func (s *Store) Get(id uuid.UUID) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return Event{}, ErrEventNotFound
	}
	return *e, nil
}

// Move reschedules an event. All-day events are normalized to midnight.
func (s *Store) Move(id uuid.UUID, start, end dateutil.TimePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return ErrEventNotFound
	}
	if e.AllDay {
		start, end = start.StartOfDay(), end.StartOfDay()
		if end.Before(start) {
			return ErrEndBeforeStart
		}
	} else if !end.After(start) {
		return ErrEndBeforeStart
	}
	e.Start, e.End = start, end
	return nil
}

// Rename changes an event title.
func (s *Store) Rename(id uuid.UUID, title string) error {
	title, err := cleanTitle(title)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return ErrEventNotFound
	}
	e.Title = title
	return nil
}

// Delete removes an event.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// OnDay returns the timed events touching day ordered by start.
func (s *Store) OnDay(day dateutil.TimePoint) []Event {
	return s.filter(func(e *Event) bool { return !e.AllDay && e.OnDay(day) })
}

// AllDayOn returns the all-day events covering day ordered by start.
func (s *Store) AllDayOn(day dateutil.TimePoint) []Event {
	return s.filter(func(e *Event) bool { return e.AllDay && e.OnDay(day) })
}

// At returns the timed event covering t. When events overlap the one that
// started last wins, matching the order they are painted in.
func (s *Store) At(t dateutil.TimePoint) (Event, bool) {
	matches := s.filter(func(e *Event) bool { return e.Covers(t) })
	if len(matches) == 0 {
		return Event{}, false
	}
	return matches[len(matches)-1], true
}

// Overlapping returns the timed events intersecting [from, to) ordered by start.
func (s *Store) Overlapping(from, to dateutil.TimePoint) []Event {
	return s.filter(func(e *Event) bool {
		return !e.AllDay && e.Start.Before(to) && e.End.After(from)
	})
}

// Lookup resolves a drag target to the event range.
func (s *Store) Lookup(target string) (start, end dateutil.TimePoint, ok bool) {
	id, err := ParseID(target)
	if err != nil {
		return start, end, false
	}
	e, err := s.Get(id)
	if err != nil || e.AllDay {
		return start, end, false
	}
	return e.Start, e.End, true
}

func (s *Store) filter(keep func(*Event) bool) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if keep(e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}
