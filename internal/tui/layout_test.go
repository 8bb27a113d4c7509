package tui

import (
	"testing"
	"time"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(120, 50, 7, 8, 18, 2, 0)

	if l.ColWidth != 15 {
		t.Errorf("ColWidth = %d, want 15", l.ColWidth)
	}
	if l.RowsPerHour != 4 || l.MinutesPerRow() != 15 {
		t.Errorf("RowsPerHour = %d, MinutesPerRow = %d, want 4 and 15", l.RowsPerHour, l.MinutesPerRow())
	}
	if l.TotalRows != 40 || l.VisibleRows != 40 {
		t.Errorf("TotalRows = %d, VisibleRows = %d, want 40 and 40", l.TotalRows, l.VisibleRows)
	}
	if l.LaneTop() != 3 || l.GridTop() != 5 {
		t.Errorf("LaneTop = %d, GridTop = %d, want 3 and 5", l.LaneTop(), l.GridTop())
	}
}

func TestComputeLayout_TinyTerminal(t *testing.T) {
	l := computeLayout(0, 0, 7, 0, 24, 2, 0)
	if l.ColWidth != minColWidth {
		t.Errorf("ColWidth = %d, want %d", l.ColWidth, minColWidth)
	}
	if l.RowsPerHour != 1 || l.VisibleRows != 1 {
		t.Errorf("RowsPerHour = %d, VisibleRows = %d, want 1 and 1", l.RowsPerHour, l.VisibleRows)
	}
}

func TestComputeLayout_ScrollClamped(t *testing.T) {
	l := computeLayout(120, 30, 7, 0, 24, 2, 100)

	if l.RowsPerHour != 1 {
		t.Fatalf("RowsPerHour = %d, want 1", l.RowsPerHour)
	}
	if l.VisibleRows != 22 || l.Scroll != 2 {
		t.Errorf("VisibleRows = %d, Scroll = %d, want 22 and 2", l.VisibleRows, l.Scroll)
	}

	b := l.TimeBounds()
	if b.Top != 3 || b.Height != 24 {
		t.Errorf("TimeBounds = %+v, want top 3 height 24", b)
	}
	if row, ok := l.RowAt(5); !ok || row != 2 {
		t.Errorf("RowAt(5) = %d, %v, want 2, true", row, ok)
	}

	if got := computeLayout(120, 30, 7, 0, 24, 2, -4).Scroll; got != 0 {
		t.Errorf("negative scroll = %d, want 0", got)
	}
}

func TestLayout_DayAt(t *testing.T) {
	l := computeLayout(120, 50, 7, 8, 18, 2, 0)

	tests := []struct {
		x      int
		want   int
		wantOK bool
	}{
		{x: 0, wantOK: false},
		{x: 7, wantOK: false},
		{x: 8, want: 0, wantOK: true},
		{x: 23, want: 0, wantOK: true}, // separator belongs to the column on its left
		{x: 24, want: 1, wantOK: true},
		{x: 119, want: 6, wantOK: true},
		{x: 120, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := l.DayAt(tt.x)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("DayAt(%d) = %d, %v, want %d, %v", tt.x, got, ok, tt.want, tt.wantOK)
		}
	}
	if x := l.ColumnX(3); x != 56 {
		t.Errorf("ColumnX(3) = %d, want 56", x)
	}
}

func TestLayout_Rows(t *testing.T) {
	l := computeLayout(120, 50, 7, 8, 18, 2, 0)
	day := dateutil.Date(2025, 1, 8, time.UTC)

	if _, ok := l.LaneRowAt(2); ok {
		t.Error("row 2 is the header separator")
	}
	if row, ok := l.LaneRowAt(4); !ok || row != 1 {
		t.Errorf("LaneRowAt(4) = %d, %v, want 1, true", row, ok)
	}
	if _, ok := l.RowAt(4); ok {
		t.Error("row 4 belongs to the all-day lane")
	}
	if _, ok := l.RowAt(45); ok {
		t.Error("row 45 is below the grid")
	}

	start := l.RowStart(day, 6)
	if start.Clock() != "09:30" {
		t.Errorf("RowStart(6) = %s, want 09:30", start.Clock())
	}

	tests := []struct {
		clock int // minutes from midnight
		want  int
	}{
		{8 * 60, 0},
		{9*60 + 20, 5},
		{7*60 + 50, -1},
		{7*60 + 30, -2},
	}
	for _, tt := range tests {
		if got := l.RowOf(day, day.AddMinutes(tt.clock)); got != tt.want {
			t.Errorf("RowOf(%d) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestLayout_LaneBounds(t *testing.T) {
	b := computeLayout(120, 50, 7, 8, 18, 2, 0).LaneBounds()
	if b.Left != 8 || b.Width != 112 || b.ColumnCount != 7 {
		t.Errorf("LaneBounds = %+v, want left 8 width 112 columns 7", b)
	}
}
