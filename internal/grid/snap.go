package grid

import "math"

// floorTolerance keeps float noise just below a whole hour (7.999999999999999 for
// 16/48*24) in that hour instead of snapping it to minute 59.
const floorTolerance = 1e-9

// SnapTable holds the 60 sub-hour candidates k/60.
var SnapTable = func() [60]float64 {
	var table [60]float64
	for k := range table {
		table[k] = float64(k) / 60
	}
	return table
}()

// Snap returns the table entry closest to fractional. Ties go to the lower entry.
// The result is always in [0, 1): remainders above 59/60 stay on the last entry.
func Snap(fractional float64) float64 {
	nearest := SnapTable[0]
	best := math.Abs(fractional - nearest)
	for _, candidate := range SnapTable[1:] {
		if d := math.Abs(fractional - candidate); d < best {
			best = d
			nearest = candidate
		}
	}
	return nearest
}

// NearestGridY snaps a continuous hour offset to minute resolution.
func NearestGridY(continuousHour float64) float64 {
	floored := math.Floor(continuousHour + floorTolerance)
	return floored + Snap(continuousHour-floored)
}

// MinutesFromHours converts a snapped hour offset to whole minutes. Rounding
// absorbs the float error of k/60 so the same input always maps to the same minute.
func MinutesFromHours(hours float64) int {
	return int(math.Round(hours * 60))
}

// TruncMinutesFromHours converts an unsnapped hour offset to whole minutes,
// dropping the sub-minute remainder.
func TruncMinutesFromHours(hours float64) int {
	return int(math.Trunc(hours * 60))
}
