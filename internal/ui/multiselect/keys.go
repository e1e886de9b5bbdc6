package multiselect

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the widget's key bindings
type KeyMap struct {
	Activate    key.Binding
	ChipLeft    key.Binding
	ChipRight   key.Binding
	RemoveChip  key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Up          key.Binding
	Down        key.Binding
	ClearSearch key.Binding
	Dismiss     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle"),
		),
		ChipLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "pick chip"),
		),
		ChipRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "pick chip"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("del", "remove chip"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear search"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp returns the bindings that apply to the focused part of the widget
func (m Model) ShortHelp() []key.Binding {
	activate := m.KeyMap.Activate
	switch {
	case m.focus == focusList:
		activate.SetHelp("enter/space", "select")
		return []key.Binding{m.KeyMap.Up, m.KeyMap.Down, activate, m.KeyMap.PrevFocus}
	case m.focus == focusSearch:
		bindings := []key.Binding{m.KeyMap.NextFocus}
		if m.search.Value() != "" {
			bindings = append(bindings, m.KeyMap.ClearSearch)
		}
		return append(bindings, m.KeyMap.Dismiss)
	case m.chipCursor >= 0:
		activate.SetHelp("enter/space", "remove chip")
		return []key.Binding{activate, m.KeyMap.ChipLeft}
	}

	if m.open {
		activate.SetHelp("enter/space", "close "+m.label+" options")
	} else {
		activate.SetHelp("enter/space", "open "+m.label+" options")
	}
	bindings := []key.Binding{activate}
	if len(m.selected) > 0 {
		bindings = append(bindings, m.KeyMap.ChipRight, m.KeyMap.RemoveChip)
	}
	if m.open {
		bindings = append(bindings, m.KeyMap.NextFocus)
	}
	return bindings
}

// FullHelp returns every binding grouped by area
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.KeyMap.Activate, m.KeyMap.ChipLeft, m.KeyMap.ChipRight, m.KeyMap.RemoveChip},
		{m.KeyMap.NextFocus, m.KeyMap.PrevFocus, m.KeyMap.ClearSearch, m.KeyMap.Dismiss},
		{m.KeyMap.Up, m.KeyMap.Down},
	}
}
