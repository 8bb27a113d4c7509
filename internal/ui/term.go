package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Lifecycle events: bold cyan
	colorEvent = color.New(color.FgCyan, color.Bold)

	// Resolved times: yellow to make them pop
	colorValue = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Guide boxes: green
	colorPaint = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatEvent(s string) string {
	return colorEvent.Sprint(s)
}

func formatValue(s string) string {
	return colorValue.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatPaint(s string) string {
	return colorPaint.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
