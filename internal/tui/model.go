// Package tui provides a Bubble Tea terminal host for the color scheme
// switch.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/scheme"
)

// palette holds the styles for one color scheme.
type palette struct {
	page   lipgloss.Style
	title  lipgloss.Style
	on     lipgloss.Style
	off    lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
}

var palettes = map[scheme.Scheme]palette{
	scheme.Light: {
		page:   lipgloss.NewStyle().Background(lipgloss.Color("#fafafa")).Foreground(lipgloss.Color("#1f2328")).Padding(1, 2),
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3584e4")),
		on:     lipgloss.NewStyle().Background(lipgloss.Color("#3584e4")).Foreground(lipgloss.Color("#ffffff")).Padding(0, 1),
		off:    lipgloss.NewStyle().Background(lipgloss.Color("#d0d7de")).Foreground(lipgloss.Color("#1f2328")).Padding(0, 1),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#57606a")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cf222e")),
	},
	scheme.Dark: {
		page:   lipgloss.NewStyle().Background(lipgloss.Color("#1e1e1e")).Foreground(lipgloss.Color("#e6edf3")).Padding(1, 2),
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#78aeed")),
		on:     lipgloss.NewStyle().Background(lipgloss.Color("#78aeed")).Foreground(lipgloss.Color("#11191f")).Padding(0, 1),
		off:    lipgloss.NewStyle().Background(lipgloss.Color("#3d444d")).Foreground(lipgloss.Color("#e6edf3")).Padding(0, 1),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7b72")),
	},
}

// Model is the TUI model.
type Model struct {
	sw  *colorswitch.Switch
	doc *Document

	keys KeyMap
	help help.Model

	width int

	statusMsg string
	statusErr bool
}

// New creates a Model for a switch hosted in doc. The switch is attached
// if it is not already.
func New(sw *colorswitch.Switch, doc *Document) (Model, error) {
	if err := sw.Attach(); err != nil {
		return Model{}, err
	}
	return Model{
		sw:   sw,
		doc:  doc,
		keys: DefaultKeyMap(),
		help: help.New(),
	}, nil
}

// Run starts the program and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			control := m.doc.Control()
			control.Flip()
			if err := m.sw.LastError(); err != nil {
				m.setStatus(fmt.Sprintf("failed to change color scheme: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("switched to %s", m.sw.Scheme()), false)
			}
		case key.Matches(msg, m.keys.Light):
			m.setAttribute(scheme.Light)
		case key.Matches(msg, m.keys.Dark):
			m.setAttribute(scheme.Dark)
		}
	}
	return m, nil
}

func (m *Model) setAttribute(s scheme.Scheme) {
	if err := m.sw.SetAttribute(colorswitch.AttrScheme, s.String()); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("scheme attribute set to %s", s), false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// currentPalette picks the palette from the document root attribute.
func (m Model) currentPalette() palette {
	value, _ := m.doc.RootAttribute(m.sw.Options().RootAttribute)
	s, ok := scheme.Parse(value)
	if !ok {
		s = scheme.Light
	}
	return palettes[s]
}

func (m Model) View() string {
	p := m.currentPalette()
	control := m.doc.Control()

	var b strings.Builder
	b.WriteString(p.title.Render(control.Label()))
	b.WriteString("\n\n")

	light, dark := p.on.Render("☀ light"), p.off.Render("☾ dark")
	if control.Checked() {
		light, dark = p.off.Render("☀ light"), p.on.Render("☾ dark")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, light, dark))
	b.WriteString("\n\n")

	if m.statusMsg != "" {
		if m.statusErr {
			b.WriteString(p.err.Render(m.statusMsg))
		} else {
			b.WriteString(p.status.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	page := p.page
	if m.width > 0 {
		page = page.Width(m.width)
	}
	return page.Render(b.String())
}
