// Package calendar defines the events the drag engine creates and moves.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEndBeforeStart = errors.New("end must be after start")
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidID     = errors.New("invalid event id")
)

// Event is a calendar entry. Timed events cover [Start, End). All-day events
// cover every day from Start to End inclusive, both at midnight.
type Event struct {
	ID        uuid.UUID
	Title     string
	Start     dateutil.TimePoint
	End       dateutil.TimePoint
	AllDay    bool
	CreatedAt time.Time
}

// New creates a timed event with validation.
func New(title string, start, end dateutil.TimePoint) (*Event, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, ErrEndBeforeStart
	}
	return &Event{
		ID:        uuid.New(),
		Title:     title,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}, nil
}

// NewAllDay creates an all-day event spanning firstDay to lastDay inclusive.
func NewAllDay(title string, firstDay, lastDay dateutil.TimePoint) (*Event, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return nil, err
	}
	first, last := firstDay.StartOfDay(), lastDay.StartOfDay()
	if last.Before(first) {
		return nil, ErrEndBeforeStart
	}
	return &Event{
		ID:        uuid.New(),
		Title:     title,
		Start:     first,
		End:       last,
		AllDay:    true,
		CreatedAt: time.Now(),
	}, nil
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// ParseID parses an event id as carried in drag targets.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// Duration returns the length of a timed event.
func (e *Event) Duration() time.Duration {
	if e.AllDay {
		return time.Duration(e.Days()) * 24 * time.Hour
	}
	return e.End.Sub(e.Start)
}

// Days returns the number of calendar days the event touches.
func (e *Event) Days() int {
	if e.AllDay {
		return e.End.DaysSince(e.Start) + 1
	}
	// An event ending exactly at midnight does not touch that day.
	return e.End.AddMinutes(-1).DaysSince(e.Start) + 1
}

// OnDay reports whether the event covers any part of day.
func (e *Event) OnDay(day dateutil.TimePoint) bool {
	d := day.StartOfDay()
	if e.AllDay {
		return !d.Before(e.Start) && !d.After(e.End)
	}
	next := d.AddDays(1)
	return e.Start.Before(next) && e.End.After(d)
}

// Covers reports whether a timed event includes the instant t.
func (e *Event) Covers(t dateutil.TimePoint) bool {
	if e.AllDay {
		return false
	}
	return !t.Before(e.Start) && t.Before(e.End)
}

// Summary is a one-line description suitable for the clipboard.
func (e *Event) Summary() string {
	if e.AllDay {
		if e.Start.Equal(e.End) {
			return fmt.Sprintf("%s (%s, all day)", e.Title, e.Start.Format("Mon Jan 2"))
		}
		return fmt.Sprintf("%s (%s - %s, all day)", e.Title, e.Start.Format("Mon Jan 2"), e.End.Format("Mon Jan 2"))
	}
	if e.Start.SameDay(e.End) || e.End.Equal(e.Start.StartOfDay().AddDays(1)) {
		return fmt.Sprintf("%s (%s %s-%s)", e.Title, e.Start.Format("Mon Jan 2"), e.Start.Clock(), e.End.Clock())
	}
	return fmt.Sprintf("%s (%s - %s)", e.Title, e.Start.Format("Mon Jan 2 15:04"), e.End.Format("Mon Jan 2 15:04"))
}
