package ui

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/drag"
	"github.com/javiermolinar/dragcal/internal/simulate"
)

// field is one labelled line of resolver output.
type field struct {
	label string
	value string
}

const labelWidth = 16

func scheduleFields(d drag.ScheduleData) []field {
	return []field{
		{"bounds", fmt.Sprintf("top=%s height=%s hours=%d-%d", num(d.Bounds.Top), num(d.Bounds.Height), d.Bounds.HourStart, d.Bounds.HourEnd)},
		{"mouse_y", num(d.MouseY)},
		{"grid_y", fmt.Sprintf("%.6f", d.GridY)},
		{"time_y", formatTime(d.TimeY)},
		{"nearest_grid_y", fmt.Sprintf("%.6f", d.NearestGridY)},
		{"nearest_time_y", formatTime(d.NearestGridTimeY)},
	}
}

func formatTime(t dateutil.TimePoint) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Mon 2006-01-02 15:04")
}

// printFields writes label/value lines, wrapping values that do not fit width.
func printFields(w io.Writer, fields []field, width int) {
	prefix := strings.Repeat(" ", labelWidth+4)
	valueWidth := max(width-len(prefix), 20)
	for _, f := range fields {
		lines := wrap(f.value, valueWidth)
		label := runewidth.FillRight(f.label, labelWidth)
		fmt.Fprintf(w, "  %s  %s\n", formatMuted(label), formatValue(lines[0]))
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", prefix, formatValue(line))
		}
	}
}

// wrap splits text into lines of at most width cells, breaking on spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}

// printResult writes the events and paints of a simulation run.
func printResult(w io.Writer, res *simulate.Result, width int) {
	fmt.Fprintln(w, formatHeader("Events"))
	if len(res.Records) == 0 {
		fmt.Fprintln(w, formatMuted("  (none)"))
	}
	for _, r := range res.Records {
		line := fmt.Sprintf("  #%-3d %s", r.Step, r.Describe())
		fmt.Fprintf(w, "%s  %s\n", formatEvent(runewidth.Truncate(line, width, "…")), formatMuted(string(r.Trigger)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader("Guide paints"))
	if len(res.Paints) == 0 {
		fmt.Fprintln(w, formatMuted("  (none)"))
	}
	for _, p := range res.Paints {
		fmt.Fprintf(w, "  #%-3d %s\n", p.Step, formatPaint(describeBox(p)))
	}
}

func describeBox(p simulate.Paint) string {
	if p.Controller == "allday" {
		return fmt.Sprintf("%s left=%.2f%% width=%.2f%%", p.Controller, p.Box.Left, p.Box.Width)
	}
	return fmt.Sprintf("%s top=%s height=%s", p.Controller, num(p.Box.Top), num(p.Box.Height))
}

// num prints v with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
