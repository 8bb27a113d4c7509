// Package simulate replays scripted pointer input through the drag controllers
// and records what they emit and what their guides paint.
package simulate

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/drag"
)

// Script errors.
var (
	ErrNoSteps           = errors.New("script has no steps")
	ErrUnknownController = errors.New("unknown controller")
	ErrUnknownPointer    = errors.New("unknown pointer type")
)

// Script is a grid description plus the pointer samples to feed it.
type Script struct {
	Grid   GridSpec    `toml:"grid"`
	Events []EventSpec `toml:"event"`
	Steps  []Step      `toml:"step"`
}

// GridSpec lays out a row of day columns with an all-day lane above them.
type GridSpec struct {
	Top            float64 `toml:"top"`
	Height         float64 `toml:"height"`
	HourStart      int     `toml:"hour_start"`
	HourEnd        int     `toml:"hour_end"`
	Columns        int     `toml:"columns"`
	ColumnWidth    float64 `toml:"column_width"`
	Date           string  `toml:"date"` // first column, YYYY-MM-DD
	Timezone       string  `toml:"timezone"`
	ClickThreshold float64 `toml:"click_threshold"`
	SlotMinutes    int     `toml:"slot_minutes"`
}

// EventSpec is an existing event a move step can target.
type EventSpec struct {
	ID    string `toml:"id"`
	Day   int    `toml:"day"`   // column index
	Start string `toml:"start"` // HH:MM
	End   string `toml:"end"`   // HH:MM
}

// Step is one pointer sample.
type Step struct {
	Controller string  `toml:"controller"` // "time", "move" or "allday"
	Type       string  `toml:"type"`       // "down", "move", "up" or "cancel"
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Target     string  `toml:"target"`
}

var pointerTypes = map[string]drag.PointerType{
	"down":   drag.PointerDown,
	"move":   drag.PointerMove,
	"up":     drag.PointerUp,
	"cancel": drag.PointerCancel,
}

// Load reads a script from path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML script, fills defaults and validates it.
func Parse(data []byte) (*Script, error) {
	s := &Script{Grid: defaultGrid()}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return s, nil
}

func defaultGrid() GridSpec {
	return GridSpec{
		Height:      480,
		HourStart:   0,
		HourEnd:     24,
		Columns:     7,
		ColumnWidth: 100,
		SlotMinutes: 30,
	}
}

// Validate checks the grid and every step.
func (s *Script) Validate() error {
	g := s.Grid
	if g.Height <= 0 {
		return fmt.Errorf("grid height must be positive, got %v", g.Height)
	}
	if g.HourStart < 0 || g.HourEnd > 24 || g.HourStart >= g.HourEnd {
		return fmt.Errorf("grid hours must satisfy 0 <= hour_start < hour_end <= 24, got %d-%d", g.HourStart, g.HourEnd)
	}
	if g.Columns < 1 {
		return fmt.Errorf("grid columns must be at least 1, got %d", g.Columns)
	}
	if g.ColumnWidth <= 0 {
		return fmt.Errorf("grid column_width must be positive, got %v", g.ColumnWidth)
	}
	if _, err := s.firstDay(); err != nil {
		return err
	}

	for i, e := range s.Events {
		if e.ID == "" {
			return fmt.Errorf("event %d: missing id", i+1)
		}
		if e.Day < 0 || e.Day >= g.Columns {
			return fmt.Errorf("event %q: day %d outside the grid", e.ID, e.Day)
		}
		if _, err := parseClock(e.Start); err != nil {
			return fmt.Errorf("event %q start: %w", e.ID, err)
		}
		if _, err := parseClock(e.End); err != nil {
			return fmt.Errorf("event %q end: %w", e.ID, err)
		}
	}

	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	for i, st := range s.Steps {
		switch st.Controller {
		case "time", "move", "allday":
		default:
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownController, st.Controller)
		}
		if _, ok := pointerTypes[st.Type]; !ok {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownPointer, st.Type)
		}
	}
	return nil
}

func (s *Script) location() (*time.Location, error) {
	return dateutil.LoadLocation(s.Grid.Timezone)
}

func (s *Script) firstDay() (dateutil.TimePoint, error) {
	loc, err := s.location()
	if err != nil {
		return dateutil.TimePoint{}, err
	}
	if s.Grid.Date == "" {
		// A fixed Monday keeps runs reproducible.
		return dateutil.Date(2025, time.January, 6, loc), nil
	}
	d, err := dateutil.ParseDate(s.Grid.Date, loc)
	if err != nil {
		return dateutil.TimePoint{}, fmt.Errorf("grid date %q: %w", s.Grid.Date, err)
	}
	return dateutil.NewTimePoint(d), nil
}

// parseClock returns minutes from midnight for HH:MM.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
