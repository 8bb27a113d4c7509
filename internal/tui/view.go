package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dragcal/internal/calendar"
	"github.com/javiermolinar/dragcal/internal/guide"
	"github.com/javiermolinar/dragcal/internal/tui/view"
)

const (
	helpNormal = "drag: new event · drag event: move · click: select · h/l week · t today · j/k scroll · d delete · y copy · q quit"
	helpPrompt = "enter save · esc cancel"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModePrompt && m.overlay.Active()
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	l := m.host.layout
	if m.width < gridLeft+l.Days*(minColWidth+1) || m.height < headerRows+l.LaneRows+2+view.FooterHeight {
		return "Terminal too small"
	}

	gridBox := view.RenderTable(m.tableViewState())
	footerBox := view.RenderFooter(m.footerViewState())

	content := lipgloss.JoinVertical(lipgloss.Left, gridBox, footerBox)
	return view.PadLines(content, m.width, m.height, m.styles.colorBg)
}

func (m Model) tableViewState() view.TableViewState {
	l := m.host.layout
	labels, todayCols := view.HeaderLabels(m.host.weekStart, l.Days, m.now())

	headers := make([]string, len(labels))
	headerStyles := make([]lipgloss.Style, len(labels))
	for i, label := range labels {
		if i == 0 {
			headers[i] = view.Fit(label, timeColWidth)
			headerStyles[i] = m.styles.TimeColumnStyle
			continue
		}
		headers[i] = view.Fit(label, l.ColWidth)
		headerStyles[i] = m.styles.DayHeaderStyle
		if todayCols[i] {
			headerStyles[i] = m.styles.DayHeaderTodayStyle
		}
	}

	var content view.TableContent
	m.appendLaneRows(&content)
	m.appendTimeRows(&content)

	return view.TableViewState{
		InnerW:       m.width,
		GridH:        m.height - view.FooterHeight,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      content,
		BorderStyle:  m.styles.BorderStyle,
		Bg:           m.styles.colorBg,
		Render:       true,
	}
}

// cellGrid is a block of rows being filled column by column.
type cellGrid struct {
	text   [][]string
	styles [][]lipgloss.Style
}

func newCellGrid(rows, days, colWidth int, gutter lipgloss.Style, cell lipgloss.Style) cellGrid {
	g := cellGrid{
		text:   make([][]string, rows),
		styles: make([][]lipgloss.Style, rows),
	}
	blank := view.Fit("", colWidth)
	for r := range rows {
		g.text[r] = make([]string, days+1)
		g.styles[r] = make([]lipgloss.Style, days+1)
		g.text[r][0] = view.Fit("", timeColWidth)
		g.styles[r][0] = gutter
		for c := 1; c <= days; c++ {
			g.text[r][c] = blank
			g.styles[r][c] = cell
		}
	}
	return g
}

func (g cellGrid) set(row, day int, text string, style lipgloss.Style) {
	if row < 0 || row >= len(g.text) || day < 0 || day+1 >= len(g.text[row]) {
		return
	}
	g.text[row][day+1] = text
	g.styles[row][day+1] = style
}

func (g cellGrid) appendTo(content *view.TableContent) {
	content.Rows = append(content.Rows, g.text...)
	content.CellStyles = append(content.CellStyles, g.styles...)
}

// appendLaneRows renders the all-day lane: stacked all-day events, then the
// all-day guide on top.
func (m Model) appendLaneRows(content *view.TableContent) {
	l := m.host.layout
	g := newCellGrid(l.LaneRows, l.Days, l.ColWidth, m.styles.TimeColumnStyle, m.styles.LaneCellStyle)
	g.text[0][0] = view.Fit("all", timeColWidth)

	for day := range l.Days {
		date := m.host.day(day)
		events := m.store.AllDayOn(date)
		for r, e := range events {
			if r >= l.LaneRows {
				break
			}
			if r == l.LaneRows-1 && len(events) > l.LaneRows {
				g.set(r, day, view.Fit(fmt.Sprintf("+%d more", len(events)-r), l.ColWidth), m.styles.AllDayStyle)
				break
			}
			title := ""
			if day == 0 || e.Start.SameDay(date) {
				title = e.Title
			}
			g.set(r, day, view.Fit(title, l.ColWidth), m.eventStyle(e, m.styles.AllDayStyle))
		}
	}

	for _, el := range m.engine.layer.allday {
		if !el.Display {
			continue
		}
		first := int(math.Round(el.Box.Left / 100 * float64(l.Days)))
		span := max(int(math.Round(el.Box.Width/100*float64(l.Days))), 1)
		rows := min(max(el.BlockHeight, 1), l.LaneRows)
		for r := range rows {
			for day := first; day < first+span; day++ {
				text := ""
				if r == 0 && day == first {
					text = el.Label
				}
				g.set(r, day, view.Fit(text, l.ColWidth), m.styles.GuideStyle)
			}
		}
	}

	g.appendTo(content)
}

// appendTimeRows renders the visible time rows: events, then timed guides.
func (m Model) appendTimeRows(content *view.TableContent) {
	l := m.host.layout
	g := newCellGrid(l.VisibleRows, l.Days, l.ColWidth, m.styles.TimeColumnStyle, m.styles.EmptyCellStyle)
	mpr := l.MinutesPerRow()

	for vr := range l.VisibleRows {
		row := vr + l.Scroll
		hourRow := row%l.RowsPerHour == 0
		if hourRow {
			g.text[vr][0] = view.Fit(fmt.Sprintf(" %02d:00", l.HourStart+row/l.RowsPerHour), timeColWidth)
		}

		for day := range l.Days {
			date := m.host.day(day)
			from := l.RowStart(date, row)
			events := m.store.Overlapping(from, from.AddMinutes(mpr))
			if len(events) == 0 {
				if hourRow && row > 0 && l.RowsPerHour > 1 {
					g.set(vr, day, strings.Repeat("╌", l.ColWidth), m.styles.HourLineStyle)
				}
				continue
			}

			e := events[len(events)-1]
			base := m.styles.EventStyle
			if len(events) > 1 {
				base = m.styles.EventAltStyle
			}
			text := ""
			if vr == 0 || l.RowOf(date, e.Start) == row {
				text = e.Title
			}
			g.set(vr, day, view.Fit(text, l.ColWidth), m.eventStyle(e, base))
		}
	}

	for _, el := range m.engine.layer.timed {
		if el.Display {
			m.paintTimedGuide(g, el)
		}
	}

	g.appendTo(content)
}

// paintTimedGuide fills the rows a guide box covers. Box units are rows since the
// column height handed to the engine is the row count.
func (m Model) paintTimedGuide(g cellGrid, el *guide.Element) {
	l := m.host.layout
	day := el.Box.Start.StartOfDay().DaysSince(m.host.weekStart)
	if day < 0 || day >= l.Days {
		return
	}

	top := int(math.Floor(el.Box.Top + 1e-9))
	bottom := max(int(math.Ceil(el.Box.Top+el.Box.Height-1e-9)), top+1)
	clock := el.Box.Start.Clock() + "-" + el.Box.End.Clock()

	for row := top; row < bottom; row++ {
		var text string
		switch {
		case bottom-top == 1:
			text = el.Box.Start.Clock() + " " + el.Label
		case row == top:
			text = el.Label
		case row == top+1:
			text = clock
		}
		g.set(row-l.Scroll, day, view.Fit(text, l.ColWidth), m.styles.GuideStyle)
	}
}

func (m Model) eventStyle(e calendar.Event, base lipgloss.Style) lipgloss.Style {
	if e.ID == m.selected {
		return m.styles.EventSelectedStyle
	}
	return base
}

func (m Model) footerViewState() view.FooterViewState {
	status := m.statusMsg
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}
	if status == "" {
		status = m.weekStatus()
	}

	help := helpNormal
	if m.mode == ModePrompt {
		help = helpPrompt
	}

	return view.FooterViewState{
		InnerW:      m.width,
		StatusText:  " " + status,
		HelpText:    " " + help,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
	}
}

func (m Model) weekStatus() string {
	l := m.host.layout
	first := m.host.weekStart
	last := first.AddDays(l.Days)

	timed := len(m.store.Overlapping(first, last))
	allDay := 0
	seen := make(map[string]bool)
	for day := range l.Days {
		for _, e := range m.store.AllDayOn(m.host.day(day)) {
			if !seen[e.ID.String()] {
				seen[e.ID.String()] = true
				allDay++
			}
		}
	}

	status := fmt.Sprintf("Week of %s · %d events", first.Format("Mon Jan 2 2006"), timed+allDay)
	if m.engine.dragging() {
		status += " · dragging"
	}
	return status
}

func (m Model) renderModal() string {
	p := m.pending
	if p == nil {
		return ""
	}
	title := "New event"
	if p.allDay {
		title = "New all-day event"
	}
	body := m.prompt.View() + "\n\n" + pendingRange(*p)
	return view.RenderModalFrame(title, body, helpPrompt, m.styles.Modal)
}

// pendingRange describes the range a new event will get.
func pendingRange(p pendingEvent) string {
	if p.allDay {
		days := p.end.StartOfDay().DaysSince(p.start.StartOfDay()) + 1
		if days <= 1 {
			return p.start.Format("Mon Jan 2") + " (all day)"
		}
		return fmt.Sprintf("%s - %s (%d days)", p.start.Format("Mon Jan 2"), p.end.Format("Mon Jan 2"), days)
	}
	minutes := int(p.end.Sub(p.start).Minutes())
	return fmt.Sprintf("%s %s-%s (%s)", p.start.Format("Mon Jan 2"), p.start.Clock(), p.end.Clock(), view.FormatDuration(minutes))
}
