package view

import (
	"strconv"
	"time"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

// HeaderLabels builds column labels for days columns starting at first and marks
// today's column. Column 0 is the time gutter.
func HeaderLabels(first dateutil.TimePoint, days int, today time.Time) ([]string, map[int]bool) {
	labels := make([]string, 0, days+1)
	todayCols := make(map[int]bool)

	start := first.Time()
	yearSuffix := start.Year() % 100
	labels = append(labels, start.Format("Jan")+" "+strconv.Itoa(yearSuffix/10)+strconv.Itoa(yearSuffix%10))

	for i := 0; i < days; i++ {
		day := first.AddDays(i).Time()
		label := day.Format("Mon") + " " + strconv.Itoa(day.Day())
		if dateutil.SameDay(day, today.In(day.Location())) {
			label = "*" + label + "*"
			todayCols[i+1] = true
		}
		labels = append(labels, label)
	}

	return labels, todayCols
}
