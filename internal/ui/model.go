package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"optgrip/internal/config"
	"optgrip/internal/domain"
	"optgrip/internal/eventbus"
	"optgrip/internal/ui/multiselect"
)

// ReadyMarker is appended to the title when the model is built with
// WithReadyMarker, so pty driven tests know the first frame is drawn.
const ReadyMarker = "__READY__"

// Screen position of the widget: the main padding plus the title and the
// blank line under it.
const (
	paddingX = 2
	paddingY = 1
	widgetX  = paddingX
	widgetY  = paddingY + 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	mainStyle   = lipgloss.NewStyle().Padding(paddingY, paddingX)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the host view. It owns the option list and the selected set and
// renders the selector widget with a snapshot of both.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	options  []domain.Option
	selected []domain.Option

	selector multiselect.Model
	keys     keyMap
	help     help.Model
	pager    Pager

	width       int
	height      int
	status      string
	readyMarker bool
}

// ModelOption configures a Model
type ModelOption func(*Model)

// WithPager sets the pager used for help and the selection table
func WithPager(p Pager) ModelOption {
	return func(m *Model) { m.pager = p }
}

// WithReadyMarker makes the first frames carry ReadyMarker
func WithReadyMarker() ModelOption {
	return func(m *Model) { m.readyMarker = true }
}

// NewModel creates the host view from configuration
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...ModelOption) *Model {
	m := &Model{
		bus:     bus,
		config:  cfg,
		options: cfg.Options,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	if cfg.UISettings.RememberSelection {
		m.selected = cfg.SelectedOptions()
	}
	for _, opt := range opts {
		opt(m)
	}

	m.selector = multiselect.New(multiselect.Props{
		ID:                 cfg.Widget.ID,
		Label:              cfg.Widget.Label,
		SelectionLabel:     cfg.Widget.SelectionLabel,
		SearchLabel:        cfg.Widget.SearchLabel,
		SearchPlaceholder:  cfg.Widget.SearchPlaceholder,
		Options:            m.options,
		SelectedOptions:    m.selected,
		SetSelectedOptions: m.applySelection,
	})
	m.selector.SetOrigin(widgetX, widgetY)

	return m
}

// Selected returns the current selection in selection order
func (m *Model) Selected() []domain.Option {
	return m.selected
}

// Selector returns the widget as currently rendered
func (m *Model) Selector() multiselect.Model {
	return m.selector
}

// applySelection is the mutator handed to the widget
func (m *Model) applySelection(u multiselect.SelectionUpdate) {
	prev := m.selected
	m.selected = u.Resolve(prev)

	added, removed := diffSelection(prev, m.selected)
	log.Printf("Selection changed on %s: +%v -%v (%d selected)", m.config.Widget.ID, added, removed, len(m.selected))

	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.SelectionChangedEvent{
		WidgetID: m.config.Widget.ID,
		Added:    added,
		Removed:  removed,
		Selected: m.selected,
	})
	if m.config.UISettings.RememberSelection {
		m.bus.Publish(eventbus.ConfigChangedEvent{SelectedIDs: domain.OptionIDs(m.selected)})
	}
}

// diffSelection returns the ids present only in next and only in prev
func diffSelection(prev, next []domain.Option) (added, removed []string) {
	for _, o := range next {
		if !multiselect.Contains(prev, o.ID) {
			added = append(added, o.ID)
		}
	}
	for _, o := range prev {
		if !multiselect.Contains(next, o.ID) {
			removed = append(removed, o.ID)
		}
	}
	return added, removed
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2*paddingX
		m.selector.SetWidth(msg.Width - 2*paddingX)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.selector.Capturing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				return m, m.showInPager("help", renderHelpContent(m.config.Widget.Label))
			case key.Matches(msg, m.keys.View):
				return m, m.showInPager("selection", renderSelectionTable(m.config.Widget.Label, m.selected))
			}
		}

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager for %s failed: %v", msg.what, msg.err)
			m.status = fmt.Sprintf("Could not show %s: %v", msg.what, msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	m.selector.SetSelected(m.selected)
	return m, cmd
}

func (m *Model) showInPager(what, content string) tea.Cmd {
	if m.pager == nil {
		return nil
	}
	pager := m.pager
	return func() tea.Msg {
		return pagerClosedMsg{what: what, err: pager.Show(content)}
	}
}

// View renders the host view
func (m *Model) View() string {
	var b strings.Builder

	title := titleStyle.Render("optgrip")
	if m.readyMarker {
		title += " " + ReadyMarker
	}
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(m.selector.View())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	bindings := m.selector.ShortHelp()
	if !m.selector.Capturing() {
		bindings = append(bindings, m.keys.View, m.keys.Help, m.keys.Quit)
	} else {
		bindings = append(bindings, m.keys.ForceQuit)
	}
	b.WriteString(m.help.ShortHelpView(bindings))

	return mainStyle.Render(b.String())
}
