package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dragcal/internal/config"
	"github.com/javiermolinar/dragcal/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  dragcal config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.View.HourStart = promptInt(reader, out, "First hour", cfg.View.HourStart)
	cfg.View.HourEnd = promptInt(reader, out, "Last hour (exclusive)", cfg.View.HourEnd)
	cfg.View.WeekStart = promptValue(reader, out, "Week starts on", cfg.View.WeekStart)
	cfg.View.Days = promptInt(reader, out, "Visible days", cfg.View.Days)
	cfg.View.EventBlockHeight = promptInt(reader, out, "All-day lane rows", cfg.View.EventBlockHeight)
	cfg.View.Timezone = promptValue(reader, out, "Timezone (empty for local)", cfg.View.Timezone)
	cfg.Drag.ClickThreshold = promptFloat(reader, out, "Click threshold (cells)", cfg.Drag.ClickThreshold)
	cfg.Drag.DefaultDuration = promptInt(reader, out, "Default duration (minutes)", cfg.Drag.DefaultDuration)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	timezone := cfg.View.Timezone
	if timezone == "" {
		timezone = "(local)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[view]")
	fmt.Fprintf(out, "  hour_start         = %d\n", cfg.View.HourStart)
	fmt.Fprintf(out, "  hour_end           = %d\n", cfg.View.HourEnd)
	fmt.Fprintf(out, "  week_start         = %s\n", cfg.View.WeekStart)
	fmt.Fprintf(out, "  days               = %d\n", cfg.View.Days)
	fmt.Fprintf(out, "  event_block_height = %d\n", cfg.View.EventBlockHeight)
	fmt.Fprintf(out, "  timezone           = %s\n", timezone)
	fmt.Fprintln(out, "\n[drag]")
	fmt.Fprintf(out, "  click_threshold    = %g\n", cfg.Drag.ClickThreshold)
	fmt.Fprintf(out, "  default_duration   = %d\n", cfg.Drag.DefaultDuration)
	fmt.Fprintf(out, "  frame_interval_ms  = %d\n", cfg.Drag.FrameIntervalMS)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme              = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, "\n[debug]")
	fmt.Fprintf(out, "  log_path           = %s\n", cfg.Debug.LogPath)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptFloat(reader *bufio.Reader, out io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, out, label, strconv.FormatFloat(current, 'g', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		current = theme.DefaultName
	}
}
