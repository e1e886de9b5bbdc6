package multiselect

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"optgrip/internal/domain"
)

const (
	closedMarker = "▸ "
	openMarker   = "▾ "
	chipRemove   = " ×"
	searchIcon   = "⌕ "
	clearCaption = "✕ clear"
	checkMark    = "✓ "
	noCheckMark  = "  "

	triggerLine = 1
	// the panel border takes one line above its content
	panelContentLine = triggerLine + 2
	// border plus horizontal padding
	panelContentX = 2
)

// span is a half-open column range
type span struct {
	start, end int
}

func (s span) contains(x int) bool { return x >= s.start && x < s.end }

// layout is the geometry of the rendered widget, relative to its origin.
// View and mouse handling both derive from it.
type layout struct {
	chips     []span
	searchY   int
	clear     span
	showClear bool
	listY     int
	rows      int
	height    int
}

func (m Model) layout() layout {
	l := layout{searchY: -1, listY: -1}

	x := lipgloss.Width(closedMarker)
	for i, opt := range m.selected {
		w := lipgloss.Width(m.chipView(i, opt))
		l.chips = append(l.chips, span{start: x, end: x + w})
		x += w + 1
	}

	if !m.open {
		l.height = triggerLine + 1
		return l
	}

	y := panelContentLine
	if m.searchLabel != "" {
		y++
	}
	l.searchY = y
	if m.search.Value() != "" {
		start := panelContentX + lipgloss.Width(searchIcon) + lipgloss.Width(m.search.View()) + 2
		l.clear = span{start: start, end: start + lipgloss.Width(clearCaption)}
		l.showClear = true
	}
	y++

	l.listY = y
	l.rows = len(m.filtered)
	if l.rows == 0 {
		// the empty-state line
		y++
	}
	y += l.rows

	// closing border
	l.height = y + 1
	return l
}

// View renders the widget
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.triggerView())

	if m.open {
		b.WriteString("\n")
		b.WriteString(m.Styles.Panel.Render(m.panelView()))
	}

	return b.String()
}

func (m Model) headerView() string {
	header := m.Styles.Label.Render(m.label)
	if n := len(m.selected); n > 0 {
		header += " " + m.Styles.Count.Render(fmt.Sprintf("(%d selected)", n))
	}
	return header
}

func (m Model) triggerView() string {
	marker := closedMarker
	if m.open {
		marker = openMarker
	}

	markerStyle := m.Styles.Trigger
	if m.focus == focusTrigger && m.chipCursor < 0 {
		markerStyle = m.Styles.TriggerFocus
	}

	if len(m.selected) == 0 {
		return markerStyle.Render(marker) + m.Styles.Placeholder.Render(m.selectionLabel)
	}

	chips := make([]string, 0, len(m.selected))
	for i, opt := range m.selected {
		chips = append(chips, m.chipView(i, opt))
	}
	return markerStyle.Render(marker) + strings.Join(chips, " ")
}

func (m Model) chipView(i int, opt domain.Option) string {
	style := m.Styles.Chip
	if m.focus == focusTrigger && i == m.chipCursor {
		style = m.Styles.ChipFocus
	}
	return style.Render(opt.Label + chipRemove)
}

func (m Model) panelView() string {
	var lines []string

	if m.searchLabel != "" {
		lines = append(lines, m.Styles.SearchLabel.Render(m.searchLabel))
	}

	search := m.Styles.SearchIcon.Render(searchIcon) + m.search.View()
	if m.search.Value() != "" {
		search += "  " + m.Styles.Clear.Render(clearCaption)
	}
	lines = append(lines, search)

	if len(m.filtered) == 0 {
		lines = append(lines, m.Styles.Empty.Render(fmt.Sprintf("No options match %q", m.search.Value())))
	}
	for i, opt := range m.filtered {
		lines = append(lines, m.optionView(i, opt))
	}

	return strings.Join(lines, "\n")
}

func (m Model) optionView(i int, opt domain.Option) string {
	mark := noCheckMark
	if Contains(m.selected, opt.ID) {
		mark = m.Styles.Check.Render(checkMark)
	}

	style := m.Styles.Option
	if m.focus == focusList && i == m.cursor {
		style = m.Styles.OptionCursor
	}
	return mark + style.Render(opt.Label)
}

// handleMouse maps left clicks onto chips, the trigger, the clear affordance
// and listbox rows. A click outside the widget closes an open panel.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x := msg.X - m.originX
	y := msg.Y - m.originY
	l := m.layout()

	if y < 0 || y >= l.height || x < 0 || (m.width > 0 && x >= m.width) {
		if m.open {
			m.Close()
		}
		return m, nil
	}

	switch {
	case y == triggerLine:
		for i, chip := range l.chips {
			if chip.contains(x) && i < len(m.selected) {
				m.removeOption(m.selected[i])
				return m, nil
			}
		}
		m.Toggle()
		return m.setFocus(focusTrigger)

	case m.open && y == l.searchY:
		if l.showClear && l.clear.contains(x) {
			m.ClearSearch()
		}
		return m.setFocus(focusSearch)

	case m.open && l.rows > 0 && y >= l.listY && y < l.listY+l.rows:
		m.cursor = y - l.listY
		var cmd tea.Cmd
		m, cmd = m.setFocus(focusList)
		m.toggleOption(m.filtered[m.cursor])
		return m, cmd
	}

	return m, nil
}
