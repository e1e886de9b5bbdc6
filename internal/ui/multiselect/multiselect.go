// Package multiselect provides a searchable multi-selection dropdown for
// Bubble Tea programs.
//
// The widget does not own the selection. The host passes a read-only
// snapshot of the selected options together with a Setter, the widget reports
// adds and removes through the Setter, and the host pushes the resulting
// snapshot back with SetSelected. Open state, search text, the filtered list
// and cursors live in the widget.
package multiselect

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"optgrip/internal/domain"
)

// DefaultSearchPlaceholder is shown in an empty search input when the host
// does not provide a placeholder.
const DefaultSearchPlaceholder = "Search"

// Props are the inputs a host hands to the widget
type Props struct {
	ID                 string
	Label              string
	SelectionLabel     string // shown in the trigger while nothing is selected
	SearchLabel        string // optional caption above the search input
	SearchPlaceholder  string // optional, defaults to DefaultSearchPlaceholder
	Options            []domain.Option
	SelectedOptions    []domain.Option
	SetSelectedOptions Setter
}

type focusArea int

const (
	focusTrigger focusArea = iota
	focusSearch
	focusList
)

func (f focusArea) String() string {
	switch f {
	case focusSearch:
		return "search"
	case focusList:
		return "list"
	default:
		return "trigger"
	}
}

// Model is the widget state
type Model struct {
	KeyMap KeyMap
	Styles Styles

	id             string
	label          string
	selectionLabel string
	searchLabel    string
	setSelected    Setter

	options  []domain.Option
	selected []domain.Option
	filtered []domain.Option

	open       bool
	search     textinput.Model
	focus      focusArea
	cursor     int // listbox row, index into filtered
	chipCursor int // -1 when the trigger itself is focused

	// position of the widget on screen, for mouse hit testing
	originX int
	originY int
	width   int
}

// New creates a closed widget from props
func New(p Props) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = p.SearchPlaceholder
	if ti.Placeholder == "" {
		ti.Placeholder = DefaultSearchPlaceholder
	}
	ti.Width = 32

	setter := p.SetSelectedOptions
	if setter == nil {
		setter = func(SelectionUpdate) {}
	}

	m := Model{
		KeyMap:         DefaultKeyMap(),
		Styles:         DefaultStyles(),
		id:             p.ID,
		label:          p.Label,
		selectionLabel: p.SelectionLabel,
		searchLabel:    p.SearchLabel,
		setSelected:    setter,
		options:        p.Options,
		selected:       p.SelectedOptions,
		search:         ti,
		chipCursor:     -1,
	}
	m.refilter()
	return m
}

// ID returns the widget id given in props
func (m Model) ID() string { return m.id }

// Label returns the widget caption
func (m Model) Label() string { return m.label }

// IsOpen reports whether the panel is visible
func (m Model) IsOpen() bool { return m.open }

// SearchText returns the current search text
func (m Model) SearchText() string { return m.search.Value() }

// Options returns the full candidate list
func (m Model) Options() []domain.Option { return m.options }

// Selected returns the selection snapshot last pushed by the host
func (m Model) Selected() []domain.Option { return m.selected }

// Filtered returns the options matching the current search text
func (m Model) Filtered() []domain.Option { return m.filtered }

// Cursor returns the highlighted listbox row
func (m Model) Cursor() int { return m.cursor }

// Capturing reports whether key presses belong to the widget rather than the
// host. This is the case whenever the panel is open.
func (m Model) Capturing() bool { return m.open }

// SetOptions replaces the candidate list and refilters it with the current
// search text. When the focused list becomes empty, focus moves to the search
// input and the returned command starts its cursor blinking.
func (m *Model) SetOptions(options []domain.Option) tea.Cmd {
	m.options = options
	return m.refilter()
}

// SetSelected pushes a new selection snapshot into the widget
func (m *Model) SetSelected(selected []domain.Option) {
	m.selected = selected
	if m.chipCursor >= len(m.selected) {
		m.chipCursor = len(m.selected) - 1
	}
}

// SetOrigin records where the host draws the widget so mouse events can be
// mapped onto it.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetWidth limits the area treated as part of the widget for mouse events.
// Zero means unbounded.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Open shows the panel
func (m *Model) Open() {
	m.open = true
}

// Close hides the panel and returns focus to the trigger. Search text is kept.
func (m *Model) Close() {
	m.open = false
	m.focus = focusTrigger
	m.search.Blur()
}

// Toggle flips between the open and closed states
func (m *Model) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// SetSearch replaces the search text
func (m *Model) SetSearch(text string) {
	m.search.SetValue(text)
	m.refilter()
}

// ClearSearch empties the search text, restoring the full list
func (m *Model) ClearSearch() {
	m.SetSearch("")
}

// Update handles key and mouse messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and other textinput messages
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.open {
		switch {
		case key.Matches(msg, m.KeyMap.NextFocus):
			return m.setFocus(m.focus.next(len(m.filtered) > 0))
		case key.Matches(msg, m.KeyMap.PrevFocus):
			return m.setFocus(m.focus.prev(len(m.filtered) > 0))
		case key.Matches(msg, m.KeyMap.Dismiss):
			if m.focus == focusSearch && m.search.Value() != "" {
				m.ClearSearch()
				return m, nil
			}
			m.Close()
			return m, nil
		}
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusList:
		return m.handleListKey(msg)
	default:
		return m.handleTriggerKey(msg)
	}
}

func (m Model) handleTriggerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Activate):
		if m.chipCursor >= 0 && m.chipCursor < len(m.selected) {
			// Activating a chip removes it and leaves the panel as it is.
			m.removeOption(m.selected[m.chipCursor])
			return m, nil
		}
		m.Toggle()
		return m, nil
	case key.Matches(msg, m.KeyMap.ChipLeft):
		if m.chipCursor >= 0 {
			m.chipCursor--
		}
		return m, nil
	case key.Matches(msg, m.KeyMap.ChipRight):
		if m.chipCursor < len(m.selected)-1 {
			m.chipCursor++
		}
		return m, nil
	case key.Matches(msg, m.KeyMap.RemoveChip):
		switch {
		case m.chipCursor >= 0 && m.chipCursor < len(m.selected):
			m.removeOption(m.selected[m.chipCursor])
		case len(m.selected) > 0:
			m.removeOption(m.selected[len(m.selected)-1])
		}
		return m, nil
	}

	// Typing while the panel is open starts a search.
	if m.open && msg.Type == tea.KeyRunes {
		return m.searchFrom(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.ClearSearch):
		m.ClearSearch()
		return m, nil
	case msg.Type == tea.KeyDown, msg.Type == tea.KeyEnter:
		if len(m.filtered) > 0 {
			return m.setFocus(focusList)
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Activate):
		if m.cursor < len(m.filtered) {
			m.toggleOption(m.filtered[m.cursor])
		}
		return m, nil
	case key.Matches(msg, m.KeyMap.Up):
		if m.cursor == 0 {
			return m.setFocus(focusSearch)
		}
		m.cursor--
		return m, nil
	case key.Matches(msg, m.KeyMap.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
		return m.searchFrom(msg)
	}
	return m, nil
}

// searchFrom moves focus to the search input and hands it msg
func (m Model) searchFrom(msg tea.KeyMsg) (Model, tea.Cmd) {
	var focusCmd, inputCmd tea.Cmd
	m, focusCmd = m.setFocus(focusSearch)
	m, inputCmd = m.handleSearchKey(msg)
	return m, tea.Batch(focusCmd, inputCmd)
}

func (m Model) setFocus(f focusArea) (Model, tea.Cmd) {
	if f == focusList && len(m.filtered) == 0 {
		f = focusSearch
	}
	m.focus = f
	if f != focusTrigger {
		m.chipCursor = -1
	}
	if f == focusSearch {
		return m, m.search.Focus()
	}
	m.search.Blur()
	return m, nil
}

func (f focusArea) next(listVisible bool) focusArea {
	switch f {
	case focusTrigger:
		return focusSearch
	case focusSearch:
		if listVisible {
			return focusList
		}
		return focusTrigger
	default:
		return focusTrigger
	}
}

func (f focusArea) prev(listVisible bool) focusArea {
	switch f {
	case focusTrigger:
		if listVisible {
			return focusList
		}
		return focusSearch
	case focusList:
		return focusSearch
	default:
		return focusTrigger
	}
}

// toggleOption reports a listbox activation to the host
func (m *Model) toggleOption(opt domain.Option) {
	m.setSelected(Transform(func(prev []domain.Option) []domain.Option {
		return Toggle(prev, opt)
	}))
}

// removeOption reports a chip activation to the host
func (m *Model) removeOption(opt domain.Option) {
	m.setSelected(Transform(func(prev []domain.Option) []domain.Option {
		return Remove(prev, opt.ID)
	}))
}

// refilter recomputes the filtered list from options and search text and
// keeps the listbox cursor in range.
func (m *Model) refilter() tea.Cmd {
	m.filtered = Filter(m.options, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.focus == focusList && len(m.filtered) == 0 {
		m.focus = focusSearch
		return m.search.Focus()
	}
	return nil
}
