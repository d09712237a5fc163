// Package preview is an interactive view that repaints itself in the host
// terminal's colors and follows theme changes.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/hostcolor/internal/render"
	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// ThemeChangedMsg is delivered when the host announces a theme change.
type ThemeChangedMsg outercolor.ThemeChangeEvent

// ColorsMsg carries the result of a re-query.
type ColorsMsg outercolor.TerminalColors

// RefreshFunc re-queries the host terminal. It runs outside Update because
// it blocks for up to two reply timeouts.
type RefreshFunc func() outercolor.TerminalColors

// Model is the bubbletea model for the preview.
type Model struct {
	report  render.Report
	theme   render.Theme
	noColor bool
	refresh RefreshFunc

	keys       KeyMap
	help       help.Model
	changes    int
	refreshing bool
	width      int
}

// NewModel builds the model from an initial report.
func NewModel(report render.Report, noColor bool, refresh RefreshFunc) Model {
	m := Model{
		report:  report,
		noColor: noColor,
		refresh: refresh,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.restyle()
	return m
}

func (m *Model) restyle() {
	m.theme = render.ThemeFor(m.report, m.noColor)
	m.help.Styles.ShortKey = m.theme.Accent
	m.help.Styles.FullKey = m.theme.Accent
	m.help.Styles.ShortDesc = m.theme.Muted
	m.help.Styles.FullDesc = m.theme.Muted
}

// Report returns the colors currently shown.
func (m Model) Report() render.Report { return m.report }

// Changes counts theme-change notifications received.
func (m Model) Changes() int { return m.changes }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) requery() tea.Cmd {
	if m.refresh == nil {
		return nil
	}
	refresh := m.refresh
	return func() tea.Msg { return ColorsMsg(refresh()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			if !m.refreshing {
				m.refreshing = true
				return m, m.requery()
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case ThemeChangedMsg:
		m.changes++
		m.report.Colors = msg.Colors
		m.restyle()
		// The event carries the cached colors; the host has new ones.
		if !m.refreshing {
			m.refreshing = true
			return m, m.requery()
		}
	case ColorsMsg:
		m.refreshing = false
		m.report.Colors = outercolor.TerminalColors(msg)
		m.report.Initialized = true
		m.restyle()
	}
	return m, nil
}

func (m Model) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.Bold.Render("hostcolor preview"))
	sb.WriteString("\n\n")
	sb.WriteString(m.swatchLine("Foreground", m.report.Colors.HasForeground, m.report.Foreground()))
	sb.WriteString(m.swatchLine("Background", m.report.Colors.HasBackground, m.report.Background()))

	tone := "light"
	if m.report.Dark() {
		tone = "dark"
	}
	sb.WriteString("\n")
	sb.WriteString(t.Primary.Render("Theme: " + tone))
	sb.WriteString(t.Muted.Render(fmt.Sprintf("   changes: %d", m.changes)))
	if m.refreshing {
		sb.WriteString(t.Accent.Render("   querying…"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(t.Muted.Render("Muted text blends the foreground into the background."))
	sb.WriteString("\n")
	sb.WriteString(t.Accent.Render("Accent text stays readable on either tone."))

	body := t.Panel.Render(sb.String())
	return body + "\n" + m.help.View(m.keys) + "\n"
}

func (m Model) swatchLine(label string, ok bool, c outercolor.RGB) string {
	block := m.theme.Icons.Missing + m.theme.Icons.Missing
	if ok {
		if m.noColor {
			block = m.theme.Icons.Swatch + m.theme.Icons.Swatch
		} else {
			block = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
		}
	}
	note := ""
	if !ok {
		note = m.theme.Muted.Render("  (fallback)")
	}
	return fmt.Sprintf("%-11s %s %s%s\n", label, block, m.theme.Primary.Render(c.Hex()), note)
}
