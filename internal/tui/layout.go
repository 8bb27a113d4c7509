package tui

import (
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/grid"
	"github.com/javiermolinar/dragcal/internal/tui/view"
)

const (
	timeColWidth   = 6
	gridLeft       = 1 + timeColWidth + 1 // left border, gutter, separator
	headerRows     = 3                    // top border, day names, header separator
	minColWidth    = 4
	maxRowsPerHour = 4
)

// Layout maps terminal cells to calendar positions. Every value is in cells.
type Layout struct {
	Width       int
	Height      int
	Days        int
	ColWidth    int
	LaneRows    int
	RowsPerHour int
	TotalRows   int // rows of the whole hour range
	VisibleRows int // rows that fit on screen
	Scroll      int // first visible row
	HourStart   int
	HourEnd     int
}

// computeLayout fits the week into width x height.
func computeLayout(width, height, days, hourStart, hourEnd, laneRows, scroll int) Layout {
	l := Layout{
		Width:     width,
		Height:    height,
		Days:      max(days, 1),
		LaneRows:  max(laneRows, 1),
		HourStart: hourStart,
		HourEnd:   hourEnd,
	}
	l.ColWidth = max((width-gridLeft-l.Days)/l.Days, minColWidth)

	hours := max(hourEnd-hourStart, 1)
	avail := max(height-headerRows-l.LaneRows-1-view.FooterHeight, 1)
	l.RowsPerHour = min(max(avail/hours, 1), maxRowsPerHour)
	l.TotalRows = hours * l.RowsPerHour
	l.VisibleRows = min(avail, l.TotalRows)
	l.Scroll = l.clampScroll(scroll)
	return l
}

func (l Layout) clampScroll(scroll int) int {
	return min(max(scroll, 0), max(l.TotalRows-l.VisibleRows, 0))
}

// MinutesPerRow is the time a grid row stands for.
func (l Layout) MinutesPerRow() int {
	return 60 / l.RowsPerHour
}

// LaneTop is the screen row of the first all-day row.
func (l Layout) LaneTop() int {
	return headerRows
}

// GridTop is the screen row of the first visible time row.
func (l Layout) GridTop() int {
	return headerRows + l.LaneRows
}

// ColumnX is the screen column where day starts.
func (l Layout) ColumnX(day int) int {
	return gridLeft + day*(l.ColWidth+1)
}

// DayAt returns the day column under screen column x. The separator right of a
// column belongs to it.
func (l Layout) DayAt(x int) (int, bool) {
	if x < gridLeft {
		return 0, false
	}
	day := (x - gridLeft) / (l.ColWidth + 1)
	if day >= l.Days {
		return 0, false
	}
	return day, true
}

// LaneRowAt returns the all-day row under screen row y.
func (l Layout) LaneRowAt(y int) (int, bool) {
	row := y - l.LaneTop()
	if row < 0 || row >= l.LaneRows {
		return 0, false
	}
	return row, true
}

// RowAt returns the time row under screen row y, counting from the first hour.
func (l Layout) RowAt(y int) (int, bool) {
	row := y - l.GridTop()
	if row < 0 || row >= l.VisibleRows {
		return 0, false
	}
	return row + l.Scroll, true
}

// RowStart returns the time where row begins on day.
func (l Layout) RowStart(day dateutil.TimePoint, row int) dateutil.TimePoint {
	return day.AddMinutes(l.HourStart*60 + row*l.MinutesPerRow())
}

// RowOf returns the row containing t on day, unclamped.
func (l Layout) RowOf(day, t dateutil.TimePoint) int {
	minutes := t.WallMinutesSince(day.StartOfDay()) - l.HourStart*60
	if minutes < 0 {
		return (minutes - l.MinutesPerRow() + 1) / l.MinutesPerRow()
	}
	return minutes / l.MinutesPerRow()
}

// TimeBounds describes a day column to the drag engine. Top is where the first
// hour would be drawn, which is above the screen once scrolled.
func (l Layout) TimeBounds() grid.Bounds {
	return grid.Bounds{
		Top:       float64(l.GridTop() - l.Scroll),
		Height:    float64(l.TotalRows),
		HourStart: l.HourStart,
		HourEnd:   l.HourEnd,
	}
}

// LaneBounds describes the all-day lane to the drag engine.
func (l Layout) LaneBounds() grid.LaneBounds {
	return grid.LaneBounds{
		Left:        float64(gridLeft),
		Width:       float64(l.Days * (l.ColWidth + 1)),
		ColumnCount: l.Days,
	}
}
