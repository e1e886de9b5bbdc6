package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the host bindings. They apply only while the widget is not
// capturing input, except ForceQuit.
type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Help      key.Binding
	View      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view selection"),
		),
	}
}
