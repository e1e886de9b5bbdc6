package multiselect

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the widget
type Styles struct {
	Label        lipgloss.Style
	Count        lipgloss.Style
	Trigger      lipgloss.Style
	TriggerFocus lipgloss.Style
	Placeholder  lipgloss.Style
	Chip         lipgloss.Style
	ChipFocus    lipgloss.Style
	Panel        lipgloss.Style
	SearchLabel  lipgloss.Style
	SearchIcon   lipgloss.Style
	Clear        lipgloss.Style
	Option       lipgloss.Style
	OptionCursor lipgloss.Style
	Check        lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the default widget styles
func DefaultStyles() Styles {
	return Styles{
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Count:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Trigger:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		TriggerFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Placeholder:  lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ChipFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("252")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchIcon:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Clear:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		OptionCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")),
		Check:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Empty:        lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
