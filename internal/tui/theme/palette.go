package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Warning     lipgloss.Color

	EventBg     lipgloss.Color
	EventBgAlt  lipgloss.Color
	AllDayBg    lipgloss.Color
	GuideBg     lipgloss.Color
	GridLine    lipgloss.Color
	TextOnEvent lipgloss.Color
	TextOnGuide lipgloss.Color

	Modal ModalColors
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg     lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := IsLight(t.Bg)
	eventBg := eventBackground(t.Event, t.Bg, light)
	guideBg := Blend(t.Guide, t.Bg, 0.35)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Warning:     lipgloss.Color(t.Warning),

		EventBg:     lipgloss.Color(eventBg),
		EventBgAlt:  lipgloss.Color(alternateShade(eventBg, light)),
		AllDayBg:    lipgloss.Color(eventBackground(t.AllDay, t.Bg, light)),
		GuideBg:     lipgloss.Color(guideBg),
		GridLine:    lipgloss.Color(Blend(t.FgMuted, t.Bg, 0.6)),
		TextOnEvent: lipgloss.Color(chooseTextColor(eventBg, t.Fg, t.Bg)),
		TextOnGuide: lipgloss.Color(chooseTextColor(guideBg, t.Fg, t.Bg)),

		Modal: ModalColors{
			Bg:     lipgloss.Color(t.BaseBg),
			Border: lipgloss.Color(t.ModalBorder),
			Text:   lipgloss.Color(t.TextPrimary),
			Muted:  lipgloss.Color(t.TextMuted),
		},
	}
}

// IsLight reports whether a background is light enough to need dark text.
func IsLight(bg string) bool {
	return luminance(bg) > 0.55
}

// Blend mixes a toward b by ratio in [0, 1]. Unparseable input returns a.
func Blend(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}

func eventBackground(accent, bg string, light bool) string {
	if light {
		return Blend(accent, bg, 0.75)
	}
	return Blend(accent, "#000000", 0.5)
}

func alternateShade(hex string, light bool) string {
	if light {
		return Blend(hex, "#000000", 0.10)
	}
	return Blend(hex, "#ffffff", 0.20)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := luminance(a), luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// luminance is the WCAG relative luminance of a hex color.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
