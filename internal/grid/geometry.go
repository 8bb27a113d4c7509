// Package grid converts pointer offsets inside a calendar grid into calendar
// coordinates. Everything here is pure.
package grid

import (
	"math"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

// Bounds describes a time column as laid out by the host for one render pass.
// Top locates the container in the host's coordinate space.
type Bounds struct {
	Top       float64
	Height    float64
	HourStart int
	HourEnd   int
}

// HourSpan returns the number of visible hours.
func (b Bounds) HourSpan() int {
	return b.HourEnd - b.HourStart
}

// LaneBounds describes the all-day lane. Left locates the container in the host's
// coordinate space.
type LaneBounds struct {
	Left        float64
	Width       float64
	ColumnCount int
}

// Percent is a horizontal placement expressed in percent of the lane width.
type Percent struct {
	Left  float64
	Width float64
}

// HourRatio linearly maps y inside a container of boundsHeight pixels onto
// hourSpan hours. Values outside [0, boundsHeight] are not clamped.
func HourRatio(boundsHeight, hourSpan, y float64) float64 {
	if boundsHeight == 0 {
		return 0
	}
	return y / boundsHeight * hourSpan
}

// DayRatio places a span of spanLength+1 columns starting at startIndex.
func DayRatio(columnCount, startIndex, spanLength int) Percent {
	if columnCount <= 0 {
		return Percent{}
	}
	base := 100 / float64(columnCount)
	return Percent{
		Left:  base * float64(startIndex),
		Width: base * float64(spanLength+1),
	}
}

// ColumnIndex returns the column under x for a lane of the given width.
// Positions outside the lane produce indexes outside [0, columnCount).
func ColumnIndex(x, width float64, columnCount int) int {
	if width <= 0 || columnCount <= 0 {
		return 0
	}
	return int(math.Floor(x / (width / float64(columnCount))))
}

// NormalizeSpan orders a dragged index range so that start is the smaller index
// and length the absolute distance, whichever direction the pointer travelled.
func NormalizeSpan(startIndex, currentIndex int) (start, length int) {
	length = currentIndex - startIndex
	if length < 0 {
		return currentIndex, -length
	}
	return startIndex, length
}

// NearestHalfHour rounds a minute field up to a half-hour anchor:
// 0 stays 0, 1-30 become 0.5 and 31-59 become a full hour.
func NearestHalfHour(minute int) float64 {
	switch {
	case minute <= 0:
		return 0
	case minute <= 30:
		return 0.5
	default:
		return 1
	}
}

// ResolveFromDate computes grid offsets from an existing point instead of a pointer
// position. The result uses half-hour anchors, which is coarser than the minute
// table used while dragging.
func ResolveFromDate(field dateutil.TimePoint, hourStart int) (gridY, nearestGridY float64) {
	gridY = float64(field.Hour()-hourStart) + NearestHalfHour(field.Minute())
	return gridY, gridY
}

// HourOffset returns the exact hour offset of field from hourStart.
func HourOffset(field dateutil.TimePoint, hourStart int) float64 {
	return float64(field.Hour()-hourStart) + float64(field.Minute())/60
}
