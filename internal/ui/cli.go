// Package ui wires the command line: the TUI entry point plus inspection tools
// for the drag engine.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dragcal/internal/calendar"
	"github.com/javiermolinar/dragcal/internal/config"
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  *calendar.Store
	config *config.Config
	root   *cobra.Command
	debug  bool   // Enable debug logging
	week   string // Week to open, relative date
	now    func() time.Time
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{store: calendar.NewStore(), config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "dragcal",
		Short: "A terminal week calendar you schedule by dragging",
		Long: `dragcal shows a week calendar in the terminal.

Drag over empty time to create an event, drag an event to move it and drag
across the all-day lane to create an all-day event.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !a.debug {
				return nil
			}
			if err := debuglog.Init(true, a.config.Debug.LogPath); err != nil {
				return fmt.Errorf("opening debug log: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			debuglog.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (JSON lines to debug.log_path)")
	a.root.Flags().StringVar(&a.week, "week", "", "Open the week containing this date (YYYY-MM-DD, today, next-week, monday...)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.resolveCmd())
	a.root.AddCommand(a.simulateCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dragcal %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) runTUI() error {
	var opts []tui.ModelOption
	if a.week != "" {
		day, err := dateutil.ParseRelativeDate(a.week, a.now().In(a.config.Location()))
		if err != nil {
			return fmt.Errorf("parsing --week: %w", err)
		}
		opts = append(opts, tui.WithWeek(day))
	}
	return tui.Run(a.store, a.config, opts...)
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetArgs overrides os.Args, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
