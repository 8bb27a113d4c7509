// Package tui provides the terminal week calendar driven by the drag engine.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/javiermolinar/dragcal/internal/calendar"
	"github.com/javiermolinar/dragcal/internal/config"
	"github.com/javiermolinar/dragcal/internal/dateutil"
	"github.com/javiermolinar/dragcal/internal/debuglog"
	"github.com/javiermolinar/dragcal/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Asking for the title of a new event
)

func (m Mode) String() string {
	if m == ModePrompt {
		return "prompt"
	}
	return "normal"
}

// pendingEvent is a range waiting for its title.
type pendingEvent struct {
	allDay bool
	start  dateutil.TimePoint
	end    dateutil.TimePoint
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *calendar.Store
	config *config.Config
	now    func() time.Time

	theme  *theme.Theme
	styles *Styles

	// Shared with the drag engine
	host   *calendarHost
	engine *engine

	mode     Mode
	pending  *pendingEvent
	selected uuid.UUID
	prompt   textinput.Model
	overlay  Overlay
	scroll   int
	width    int
	height   int

	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithWeek shows the week containing day instead of the current one.
func WithWeek(day time.Time) ModelOption {
	return func(m *Model) {
		m.host.weekStart = m.weekOf(day)
	}
}

// New creates a new TUI model.
func New(store *calendar.Store, cfg *config.Config, opts ...ModelOption) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 256
	ti.Width = 36
	ti.TextStyle = styles.ModalInputStyle
	ti.PromptStyle = styles.ModalInputStyle
	ti.PlaceholderStyle = styles.ModalHintStyle

	m := Model{
		store:   store,
		config:  cfg,
		now:     time.Now,
		theme:   t,
		styles:  styles,
		host:    &calendarHost{},
		prompt:  ti,
		overlay: NewOverlay(styles.ModalBackdropColor),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.host.weekStart.IsZero() {
		m.host.weekStart = m.weekOf(m.now())
	}

	m.relayout()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI.
func Run(store *calendar.Store, cfg *config.Config, opts ...ModelOption) error {
	model := New(store, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(Model); ok && fm.engine != nil {
		fm.engine.destroy()
	}
	return err
}

func (m Model) weekOf(t time.Time) dateutil.TimePoint {
	t = t.In(m.config.Location())
	return dateutil.NewTimePoint(dateutil.WeekStart(t, m.config.WeekStartDay()))
}

// relayout recomputes the layout and rebuilds the engine when the row size
// changes. Controllers keep their slot size for their whole lifetime.
func (m *Model) relayout() {
	v := m.config.View
	prev := m.host.layout
	m.host.layout = computeLayout(m.width, m.height, v.Days, v.HourStart, v.HourEnd, v.EventBlockHeight, m.scroll)
	m.scroll = m.host.layout.Scroll

	if m.engine != nil && prev.MinutesPerRow() == m.host.layout.MinutesPerRow() {
		return
	}
	if m.engine != nil {
		if m.engine.dragging() {
			m.engine.cancel()
		}
		m.engine.destroy()
	}
	m.engine = newEngine(m.host, m.store, engineOptions{
		clickThreshold:  m.config.Drag.ClickThreshold,
		slotMinutes:     m.host.layout.MinutesPerRow(),
		defaultDuration: m.config.Drag.DefaultDuration,
		blockHeight:     v.EventBlockHeight,
	})
	debuglog.Log("ENGINE_BUILT", map[string]any{
		"minutes_per_row": m.host.layout.MinutesPerRow(),
		"rows":            m.host.layout.TotalRows,
	})
}

// setStatus shows a temporary message in the footer.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = m.now().Add(statusTTL)
}

const statusTTL = 3 * time.Second
