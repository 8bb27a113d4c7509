package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dragcal/internal/tui/theme"
	"github.com/javiermolinar/dragcal/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg lipgloss.Color

	// Header
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	TimeColumnStyle     lipgloss.Style
	BorderStyle         lipgloss.Style

	// Cells
	EmptyCellStyle     lipgloss.Style
	HourLineStyle      lipgloss.Style
	LaneCellStyle      lipgloss.Style
	EventStyle         lipgloss.Style
	EventAltStyle      lipgloss.Style
	EventSelectedStyle lipgloss.Style
	AllDayStyle        lipgloss.Style
	GuideStyle         lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modal
	Modal              view.ModalStyles
	ModalBackdropColor lipgloss.Color
	ModalInputStyle    lipgloss.Style
	ModalHintStyle     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	return &Styles{
		palette: p,
		colorBg: p.Bg,

		DayHeaderStyle:      base.Bold(true),
		DayHeaderTodayStyle: base.Bold(true).Foreground(p.Accent),
		TimeColumnStyle:     base.Foreground(p.FgMuted),
		BorderStyle:         lipgloss.NewStyle().Foreground(p.Accent).Background(p.Bg),

		EmptyCellStyle:     base,
		HourLineStyle:      base.Foreground(p.GridLine),
		LaneCellStyle:      base.Background(p.BgHighlight),
		EventStyle:         base.Background(p.EventBg).Foreground(p.TextOnEvent),
		EventAltStyle:      base.Background(p.EventBgAlt).Foreground(p.TextOnEvent),
		EventSelectedStyle: base.Background(p.BgSelection).Foreground(p.Fg).Bold(true),
		AllDayStyle:        base.Background(p.AllDayBg).Foreground(p.TextOnEvent),
		GuideStyle:         base.Background(p.GuideBg).Foreground(p.TextOnGuide).Bold(true),

		StatusStyle: base.Foreground(p.Accent),
		ErrorStyle:  base.Foreground(p.Warning),
		HelpStyle:   base.Foreground(p.FgMuted),

		Modal: view.ModalStyles{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.Modal.Border).
				BorderBackground(p.Modal.Bg).
				Background(p.Modal.Bg).
				Padding(1, 2),
			Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Modal.Border).Background(p.Modal.Bg),
			Body:   lipgloss.NewStyle().Foreground(p.Modal.Text).Background(p.Modal.Bg),
			Footer: lipgloss.NewStyle().Foreground(p.Modal.Muted).Background(p.Modal.Bg),
		},
		ModalBackdropColor: p.BgSelection,
		ModalInputStyle:    lipgloss.NewStyle().Foreground(p.Modal.Text).Background(p.Modal.Bg),
		ModalHintStyle:     lipgloss.NewStyle().Foreground(p.Modal.Muted).Background(p.Modal.Bg),
	}
}
