package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/noborus/ov/oviewer"

	"optgrip/internal/domain"
)

// Pager shows long content outside the Bubble Tea view
type Pager interface {
	Show(content string) error
}

// OvPager pages content with ov while Bubble Tea has released the terminal
type OvPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewOvPager creates a pager. SetProgram must be called before Show.
func NewOvPager() *OvPager {
	return &OvPager{}
}

// SetProgram sets the program reference for terminal management
func (p *OvPager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show hands the terminal to ov until the user quits the pager
func (p *OvPager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to reset the screen before Bubble Tea redraws
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

var (
	helpTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	helpKeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpDescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

// renderHelpContent renders the key reference shown in the pager
func renderHelpContent(label string) string {
	sections := []helpSection{
		{"Trigger", []helpEntry{
			{"enter/space", fmt.Sprintf("Open or close %s options", label)},
			{"←/→", "Move between selected chips"},
			{"enter/space", "Remove the highlighted chip"},
			{"del/backspace", "Remove the highlighted (or last) chip"},
		}},
		{"Search", []helpEntry{
			{"type", "Filter options by label"},
			{"ctrl+x", "Clear search"},
			{"esc", "Clear search, or close when empty"},
			{"↓/enter", "Move to the option list"},
		}},
		{"Options", []helpEntry{
			{"↑/↓, k/j", "Move up/down"},
			{"enter/space", "Select or deselect"},
		}},
		{"Mouse", []helpEntry{
			{"click trigger", "Open or close"},
			{"click chip", "Remove from selection"},
			{"click option", "Select or deselect"},
			{"click ✕ clear", "Clear search"},
			{"click outside", "Close"},
		}},
		{"Other", []helpEntry{
			{"tab/shift+tab", "Move focus while open"},
			{"v", "Show selected options"},
			{"?", "Show this help"},
			{"q", "Quit and print selected values"},
		}},
	}

	var help strings.Builder
	help.WriteString(helpTitleStyle.Render("optgrip help"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString(helpSectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				helpKeyStyle.Render(fmt.Sprintf("%-14s", e.keys)),
				helpDescStyle.Render(e.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// renderSelectionTable renders the selected options with their payloads
func renderSelectionTable(label string, selected []domain.Option) string {
	title := helpTitleStyle.Render(fmt.Sprintf("%s: %d selected", label, len(selected)))
	if len(selected) == 0 {
		return title + "\n" + helpDescStyle.Render("Nothing selected")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("#", "ID", "Label", "Value")
	for i, opt := range selected {
		t.Row(fmt.Sprintf("%d", i+1), opt.ID, opt.Label, opt.Value)
	}

	return title + "\n" + t.Render()
}
