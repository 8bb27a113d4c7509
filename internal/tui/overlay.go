package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
	overlayMaxWidth  = 56
	overlayMaxHeight = 12
)

// Overlay splices an opaque box over rendered content. It backs the title prompt.
type Overlay struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlay returns a hidden overlay.
func NewOverlay(bg lipgloss.Color) Overlay {
	return Overlay{bgColor: bg}
}

// Show makes the overlay visible.
func (o *Overlay) Show() { o.active = true }

// Hide removes the overlay.
func (o *Overlay) Hide() { o.active = false }

// Active reports whether the overlay is visible.
func (o Overlay) Active() bool { return o.active }

// Render draws content centered in a backdrop box on top of base.
func (o Overlay) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	contentW := 0
	for _, line := range contentLines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	boxW, boxH := o.boxSize(width, height)
	boxW = min(max(boxW, contentW), width)
	boxH = min(max(boxH, len(contentLines)), height)
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	box := o.box(boxW, boxH, contentLines)
	lines := fitLines(base, width, height)
	for i, line := range box {
		row := top + i
		lines[row] = ansi.Cut(lines[row], 0, left) + line + ansi.Cut(lines[row], left+boxW, width)
	}
	return strings.Join(lines, "\n")
}

func (o Overlay) boxSize(width, height int) (int, int) {
	boxW := min(max(width/2, overlayMinWidth), overlayMaxWidth, width)
	boxH := min(max(height/3, overlayMinHeight), overlayMaxHeight, height)
	return boxW, boxH
}

// box fills a boxW x boxH area with the backdrop and centers content in it.
func (o Overlay) box(boxW, boxH int, content []string) []string {
	bgSeq := o.backgroundSeq()
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle

	lines := make([]string, boxH)
	for i := range lines {
		lines[i] = blank
	}

	contentH := min(len(content), boxH)
	top := (boxH - contentH) / 2
	for i := 0; i < contentH; i++ {
		line := content[i]
		w := lipgloss.Width(line)
		if w > boxW {
			line = ansi.Cut(line, 0, boxW)
			w = boxW
		}
		left := (boxW - w) / 2
		// Keep the backdrop after any reset inside the content.
		line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
		lines[top+i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq +
			strings.Repeat(" ", boxW-left-w) + ansi.ResetStyle
	}
	return lines
}

func (o Overlay) backgroundSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// fitLines cuts or pads base to exactly width x height cells.
func fitLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
