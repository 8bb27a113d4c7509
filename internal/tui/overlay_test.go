package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlayShowHide(t *testing.T) {
	overlay := NewOverlay(lipgloss.Color("#0c0c0c"))
	if overlay.Active() {
		t.Fatal("expected overlay to start hidden")
	}
	overlay.Show()
	if !overlay.Active() {
		t.Fatal("expected overlay to be active after Show")
	}
	overlay.Hide()
	if overlay.Active() {
		t.Fatal("expected overlay to be hidden after Hide")
	}
}

func TestOverlayRenderHiddenReturnsBase(t *testing.T) {
	overlay := NewOverlay(lipgloss.Color("#0c0c0c"))
	base := "alpha\nbeta"
	if got := overlay.Render(base, 10, 2, "content"); got != base {
		t.Fatalf("expected base content unchanged when hidden, got %q", got)
	}
}

func TestOverlayRenderSplicesBox(t *testing.T) {
	overlay := NewOverlay(lipgloss.Color("#0c0c0c"))
	overlay.Show()

	width, height := 40, 12
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	got := overlay.Render(base, width, height, "NEW EVENT")

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	if !strings.Contains(ansi.Strip(got), "NEW EVENT") {
		t.Fatal("expected content in output")
	}

	_, boxH := overlay.boxSize(width, height)
	top := (height - boxH) / 2
	bgSeq := overlay.backgroundSeq()
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d width = %d, want %d", i, w, width)
		}
		inBox := i >= top && i < top+boxH
		if hasBg := strings.Contains(line, bgSeq); hasBg != inBox {
			t.Fatalf("line %d backdrop = %v, want %v", i, hasBg, inBox)
		}
	}
}

func TestOverlayRenderShortBase(t *testing.T) {
	overlay := NewOverlay(lipgloss.Color("#123456"))
	overlay.Show()

	got := overlay.Render("x", 30, 8, "hello\nworld")
	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	stripped := ansi.Strip(got)
	if !strings.Contains(stripped, "hello") || !strings.Contains(stripped, "world") {
		t.Fatal("expected both content lines")
	}
}
