package grid

import (
	"math"
	"testing"
	"time"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestHourRatio(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		hourSpan float64
		y        float64
		want     float64
	}{
		{name: "middle of full day", height: 600, hourSpan: 24, y: 300, want: 12},
		{name: "top", height: 600, hourSpan: 24, y: 0, want: 0},
		{name: "bottom", height: 600, hourSpan: 24, y: 600, want: 24},
		{name: "working hours", height: 480, hourSpan: 8, y: 90, want: 1.5},
		{name: "above grid is not clamped", height: 600, hourSpan: 24, y: -25, want: -1},
		{name: "below grid is not clamped", height: 600, hourSpan: 24, y: 650, want: 26},
		{name: "zero height", height: 0, hourSpan: 24, y: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourRatio(tt.height, tt.hourSpan, tt.y)
			if !almostEqual(got, tt.want) {
				t.Errorf("HourRatio(%v, %v, %v) = %v, want %v", tt.height, tt.hourSpan, tt.y, got, tt.want)
			}
		})
	}
}

func TestHourRatio_Monotonic(t *testing.T) {
	const height = 733.0
	prev := HourRatio(height, 17, 0)
	for y := 0.25; y <= height; y += 0.25 {
		got := HourRatio(height, 17, y)
		if got < prev {
			t.Fatalf("HourRatio decreased at y=%v: %v < %v", y, got, prev)
		}
		prev = got
	}
}

func TestDayRatio(t *testing.T) {
	t.Run("single column of seven", func(t *testing.T) {
		got := DayRatio(7, 1, 0)
		want := 100.0 / 7
		if !almostEqual(got.Left, want) || !almostEqual(got.Width, want) {
			t.Errorf("DayRatio(7, 1, 0) = %+v, want left=width=%v", got, want)
		}
	})

	t.Run("span of three", func(t *testing.T) {
		got := DayRatio(5, 2, 2)
		if !almostEqual(got.Left, 40) || !almostEqual(got.Width, 60) {
			t.Errorf("DayRatio(5, 2, 2) = %+v, want {40 60}", got)
		}
	})

	t.Run("no columns", func(t *testing.T) {
		if got := DayRatio(0, 1, 1); got != (Percent{}) {
			t.Errorf("DayRatio(0, ...) = %+v, want zero", got)
		}
	})
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{x: 0, want: 0},
		{x: 9.99, want: 0},
		{x: 10, want: 1},
		{x: 69, want: 6},
		{x: 70, want: 7},
		{x: -0.5, want: -1},
	}
	for _, tt := range tests {
		if got := ColumnIndex(tt.x, 70, 7); got != tt.want {
			t.Errorf("ColumnIndex(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestNormalizeSpan(t *testing.T) {
	tests := []struct {
		name       string
		start, cur int
		wantStart  int
		wantLength int
	}{
		{name: "forward", start: 2, cur: 5, wantStart: 2, wantLength: 3},
		{name: "backward", start: 5, cur: 2, wantStart: 2, wantLength: 3},
		{name: "in place", start: 4, cur: 4, wantStart: 4, wantLength: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length := NormalizeSpan(tt.start, tt.cur)
			if start != tt.wantStart || length != tt.wantLength {
				t.Errorf("NormalizeSpan(%d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.cur, start, length, tt.wantStart, tt.wantLength)
			}
		})
	}
}

func TestNearestHalfHour(t *testing.T) {
	tests := []struct {
		minute int
		want   float64
	}{
		{0, 0}, {1, 0.5}, {15, 0.5}, {30, 0.5}, {31, 1}, {59, 1},
	}
	for _, tt := range tests {
		if got := NearestHalfHour(tt.minute); got != tt.want {
			t.Errorf("NearestHalfHour(%d) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestResolveFromDate(t *testing.T) {
	day := dateutil.Date(2025, 1, 6, time.UTC)

	tests := []struct {
		name      string
		minutes   int
		hourStart int
		want      float64
	}{
		{name: "on the hour", minutes: 10 * 60, hourStart: 8, want: 2},
		{name: "quarter past rounds to half", minutes: 10*60 + 15, hourStart: 8, want: 2.5},
		{name: "half past stays half", minutes: 10*60 + 30, hourStart: 0, want: 10.5},
		{name: "after half rounds to next hour", minutes: 10*60 + 45, hourStart: 0, want: 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gridY, nearest := ResolveFromDate(day.AddMinutes(tt.minutes), tt.hourStart)
			if gridY != tt.want || nearest != tt.want {
				t.Errorf("ResolveFromDate() = (%v, %v), want %v", gridY, nearest, tt.want)
			}
		})
	}
}

func TestHourOffset(t *testing.T) {
	day := dateutil.Date(2025, 1, 6, time.UTC)
	got := HourOffset(day.AddMinutes(10*60+15), 9)
	if !almostEqual(got, 1.25) {
		t.Errorf("HourOffset() = %v, want 1.25", got)
	}
}
