package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/drag"
	"github.com/javiermolinar/dragcal/internal/grid"
)

type resolveOpts struct {
	top       float64
	height    float64
	y         float64
	to        float64
	hourStart int
	hourEnd   int
	slot      int
	date      string
}

// column is a single time column used to resolve samples outside the TUI.
type column struct {
	day    dateutil.TimePoint
	bounds grid.Bounds
}

func (c column) BaseDate() dateutil.TimePoint { return c.day }

func (c column) ContainerBounds() grid.Bounds { return c.bounds }

func (c column) ViewAt(drag.PointerEvent) (drag.TimeView, bool) { return c, true }

func (a *App) resolveCmd() *cobra.Command {
	opts := resolveOpts{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a pointer offset into calendar time",
		Long: `Resolve a pointer y offset inside a time column and print the schedule
data the drag engine derives from it.

With --to, a creation drag from --y to --to is replayed and its span printed.

Examples:
  dragcal resolve --y 180
  dragcal resolve --height 600 --hour-start 8 --hour-end 20 --y 125 --date tomorrow
  dragcal resolve --y 180 --to 205`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runResolve(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.top, "top", 0, "Column top in host units")
	cmd.Flags().Float64Var(&opts.height, "height", 480, "Column height in host units")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "Pointer y in host units")
	cmd.Flags().Float64Var(&opts.to, "to", 0, "Drag to this y and print the creation span")
	cmd.Flags().IntVar(&opts.hourStart, "hour-start", 0, "First visible hour")
	cmd.Flags().IntVar(&opts.hourEnd, "hour-end", 24, "Last visible hour (exclusive)")
	cmd.Flags().IntVar(&opts.slot, "slot", 30, "Slot minutes a creation span includes")
	cmd.Flags().StringVar(&opts.date, "date", "", "Column date (YYYY-MM-DD, today, tomorrow, monday...)")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func (a *App) runResolve(cmd *cobra.Command, opts resolveOpts) error {
	if opts.height <= 0 {
		return errors.New("height must be positive")
	}
	if opts.hourStart < 0 || opts.hourEnd > 24 || opts.hourStart >= opts.hourEnd {
		return fmt.Errorf("invalid hour range %d-%d", opts.hourStart, opts.hourEnd)
	}

	day, err := dateutil.ParseRelativeDate(opts.date, a.now().In(a.config.Location()))
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}

	col := column{
		day: dateutil.NewTimePoint(day),
		bounds: grid.Bounds{
			Top:       opts.top,
			Height:    opts.height,
			HourStart: opts.hourStart,
			HourEnd:   opts.hourEnd,
		},
	}

	w := cmd.OutOrStdout()
	width := termWidth()

	data := drag.NewTimeResolver(col).ResolveSchedule(drag.PointerEvent{Type: drag.PointerDown, Y: opts.y})
	fmt.Fprintln(w, formatHeader(fmt.Sprintf("Sample at y=%s", num(opts.y))))
	printFields(w, scheduleFields(data), width)

	if !cmd.Flags().Changed("to") {
		return nil
	}

	span, ok := replayCreation(col, opts)
	if !ok {
		return errors.New("creation drag produced no span")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader(fmt.Sprintf("Creation span y=%s..%s", num(opts.y), num(opts.to))))
	printFields(w, []field{
		{"start", formatTime(span.Start)},
		{"end", formatTime(span.End)},
		{"start_y", fmt.Sprintf("%.6f", span.StartY)},
		{"end_y", fmt.Sprintf("%.6f", span.EndY)},
	}, width)
	return nil
}

// replayCreation drives a creation controller from opts.y to opts.to and returns
// the span of whichever of dragend or click it emits.
func replayCreation(col column, opts resolveOpts) (drag.Span, bool) {
	tc := drag.NewTimeCreation(col, drag.WithSlotMinutes(opts.slot))
	defer tc.Destroy()

	var (
		span drag.Span
		ok   bool
	)
	record := func(d drag.ScheduleData) {
		span, ok = d.Span, true
	}
	tc.On(drag.EventDragEnd, record)
	tc.On(drag.EventClick, record)

	tc.Handle(drag.PointerEvent{Type: drag.PointerDown, Y: opts.y})
	if opts.to != opts.y {
		tc.Handle(drag.PointerEvent{Type: drag.PointerMove, Y: opts.to})
	}
	tc.Handle(drag.PointerEvent{Type: drag.PointerUp, Y: opts.to})
	return span, ok
}
