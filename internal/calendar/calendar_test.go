package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

var monday = dateutil.Date(2025, 1, 6, time.UTC)

func at(day, hour, minute int) dateutil.TimePoint {
	return monday.AddDays(day).AddMinutes(hour*60 + minute)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		start   dateutil.TimePoint
		end     dateutil.TimePoint
		wantErr error
	}{
		{"valid", "Standup", at(0, 9, 0), at(0, 9, 15), nil},
		{"trims title", "  Standup ", at(0, 9, 0), at(0, 9, 15), nil},
		{"empty title", "   ", at(0, 9, 0), at(0, 10, 0), ErrEmptyTitle},
		{"end equals start", "Standup", at(0, 9, 0), at(0, 9, 0), ErrEndBeforeStart},
		{"end before start", "Standup", at(0, 10, 0), at(0, 9, 0), ErrEndBeforeStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.title, tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if e.Title != "Standup" {
				t.Errorf("Title = %q, want %q", e.Title, "Standup")
			}
			if e.ID == uuid.Nil {
				t.Error("expected a generated id")
			}
		})
	}
}

func TestNewAllDay(t *testing.T) {
	e, err := NewAllDay("Offsite", at(1, 13, 0), at(3, 8, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Start.Equal(monday.AddDays(1)) || !e.End.Equal(monday.AddDays(3)) {
		t.Errorf("range = %v..%v, want midnights of Tue..Thu", e.Start, e.End)
	}
	if e.Days() != 3 {
		t.Errorf("Days() = %d, want 3", e.Days())
	}

	if _, err := NewAllDay("Offsite", at(3, 0, 0), at(1, 0, 0)); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("error = %v, want ErrEndBeforeStart", err)
	}
}

func TestEvent_OnDay(t *testing.T) {
	overnight, _ := New("Deploy", at(0, 22, 0), at(1, 2, 0))
	untilMidnight, _ := New("Late", at(0, 22, 0), at(1, 0, 0))
	allday, _ := NewAllDay("Trip", at(2, 0, 0), at(3, 0, 0))

	tests := []struct {
		name string
		e    *Event
		day  int
		want bool
	}{
		{"overnight first day", overnight, 0, true},
		{"overnight second day", overnight, 1, true},
		{"overnight third day", overnight, 2, false},
		{"ends at midnight", untilMidnight, 1, false},
		{"all-day before", allday, 1, false},
		{"all-day first", allday, 2, true},
		{"all-day last", allday, 3, true},
		{"all-day after", allday, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.OnDay(monday.AddDays(tt.day)); got != tt.want {
				t.Errorf("OnDay(%d) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}

	if overnight.Days() != 2 || untilMidnight.Days() != 1 {
		t.Errorf("Days() = %d, %d, want 2, 1", overnight.Days(), untilMidnight.Days())
	}
}

func TestEvent_Summary(t *testing.T) {
	timed, _ := New("Review", at(0, 14, 0), at(0, 15, 30))
	if got, want := timed.Summary(), "Review (Mon Jan 6 14:00-15:30)"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	allday, _ := NewAllDay("Holiday", at(4, 0, 0), at(4, 0, 0))
	if got, want := allday.Summary(), "Holiday (Fri Jan 10, all day)"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestStore_CRUD(t *testing.T) {
	s := NewStore()
	e, _ := New("Focus", at(0, 9, 0), at(0, 11, 0))
	s.Add(e)

	got, err := s.Get(e.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Title != "Focus" {
		t.Errorf("Title = %q, want Focus", got.Title)
	}

	if err := s.Move(e.ID, at(2, 12, 0), at(2, 14, 0)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	got, _ = s.Get(e.ID)
	if !got.Start.Equal(at(2, 12, 0)) || !got.End.Equal(at(2, 14, 0)) {
		t.Errorf("after move: %v..%v", got.Start, got.End)
	}

	if err := s.Move(e.ID, at(2, 14, 0), at(2, 12, 0)); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("Move() backwards error = %v, want ErrEndBeforeStart", err)
	}
	if err := s.Rename(e.ID, ""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Rename() error = %v, want ErrEmptyTitle", err)
	}
	if err := s.Rename(e.ID, "Deep work"); err != nil {
		t.Errorf("Rename() error: %v", err)
	}

	if err := s.Delete(e.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(e.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrEventNotFound", err)
	}
	if err := s.Delete(e.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("second Delete() error = %v, want ErrEventNotFound", err)
	}
	if err := s.Move(uuid.New(), at(0, 1, 0), at(0, 2, 0)); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Move() unknown error = %v, want ErrEventNotFound", err)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	e, _ := New("Focus", at(0, 9, 0), at(0, 11, 0))
	s.Add(e)

	got, _ := s.Get(e.ID)
	got.Title = "changed"

	again, _ := s.Get(e.ID)
	if again.Title != "Focus" {
		t.Errorf("store mutated through copy: %q", again.Title)
	}
}

func TestStore_DayQueries(t *testing.T) {
	s := NewStore()
	late, _ := New("Late", at(1, 15, 0), at(1, 16, 0))
	early, _ := New("Early", at(1, 8, 0), at(1, 9, 0))
	other, _ := New("Other", at(2, 8, 0), at(2, 9, 0))
	trip, _ := NewAllDay("Trip", at(0, 0, 0), at(1, 0, 0))
	s.Add(late)
	s.Add(early)
	s.Add(other)
	s.Add(trip)

	day := s.OnDay(monday.AddDays(1))
	if len(day) != 2 || day[0].Title != "Early" || day[1].Title != "Late" {
		t.Fatalf("OnDay = %+v, want Early then Late", day)
	}
	allday := s.AllDayOn(monday.AddDays(1))
	if len(allday) != 1 || allday[0].Title != "Trip" {
		t.Errorf("AllDayOn = %+v, want Trip", allday)
	}
	if got := s.AllDayOn(monday.AddDays(2)); len(got) != 0 {
		t.Errorf("AllDayOn(Wed) = %+v, want none", got)
	}
}

func TestStore_At(t *testing.T) {
	s := NewStore()
	long, _ := New("Long", at(0, 9, 0), at(0, 12, 0))
	inner, _ := New("Inner", at(0, 10, 0), at(0, 11, 0))
	s.Add(long)
	s.Add(inner)

	tests := []struct {
		name string
		t    dateutil.TimePoint
		want string
		ok   bool
	}{
		{"before", at(0, 8, 59), "", false},
		{"start inclusive", at(0, 9, 0), "Long", true},
		{"overlap picks later start", at(0, 10, 30), "Inner", true},
		{"end exclusive", at(0, 12, 0), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.At(tt.t)
			if ok != tt.ok || got.Title != tt.want {
				t.Errorf("At() = %q, %v, want %q, %v", got.Title, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestStore_Overlapping(t *testing.T) {
	s := NewStore()
	a, _ := New("A", at(0, 9, 10), at(0, 9, 20))
	b, _ := New("B", at(0, 9, 30), at(0, 10, 0))
	c, _ := New("C", at(0, 10, 0), at(0, 11, 0))
	s.Add(c)
	s.Add(b)
	s.Add(a)

	got := s.Overlapping(at(0, 9, 0), at(0, 10, 0))
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "B" {
		t.Errorf("Overlapping(9:00, 10:00) = %+v, want A then B", got)
	}
	if got := s.Overlapping(at(0, 11, 0), at(0, 12, 0)); len(got) != 0 {
		t.Errorf("Overlapping(11:00, 12:00) = %+v, want none", got)
	}
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore()
	e, _ := New("Focus", at(0, 9, 0), at(0, 11, 0))
	trip, _ := NewAllDay("Trip", at(0, 0, 0), at(1, 0, 0))
	s.Add(e)
	s.Add(trip)

	start, end, ok := s.Lookup(e.ID.String())
	if !ok || !start.Equal(e.Start) || !end.Equal(e.End) {
		t.Errorf("Lookup() = %v, %v, %v", start, end, ok)
	}
	if _, _, ok := s.Lookup("not-a-uuid"); ok {
		t.Error("Lookup() should reject a malformed id")
	}
	if _, _, ok := s.Lookup(uuid.NewString()); ok {
		t.Error("Lookup() should reject an unknown id")
	}
	if _, _, ok := s.Lookup(trip.ID.String()); ok {
		t.Error("Lookup() should reject all-day events")
	}
}
