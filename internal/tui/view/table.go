package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableContent holds the body rows: the all-day lane first, then time rows.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds data needed to render the calendar grid.
type TableViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	BorderStyle  lipgloss.Style
	Bg           lipgloss.Color
	Render       bool
}

// RenderTable draws the grid. Cells arrive padded to their column width so
// every column lands on a known terminal x, which mouse hit testing relies on.
func RenderTable(state TableViewState) string {
	if !state.Render || state.GridH <= 0 {
		return ""
	}

	t := table.New().
		Headers(state.Headers...).
		Rows(state.Content.Rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(state.BorderStyle).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		StyleFunc(state.cellStyle)

	return PadLines(t.Render(), state.InnerW, state.GridH, state.Bg)
}

func (s TableViewState) cellStyle(row, col int) lipgloss.Style {
	var styles []lipgloss.Style
	switch {
	case row == table.HeaderRow:
		styles = s.HeaderStyles
	case row >= 0 && row < len(s.Content.CellStyles):
		styles = s.Content.CellStyles[row]
	}
	if col < 0 || col >= len(styles) {
		return lipgloss.NewStyle()
	}
	return styles[col]
}
