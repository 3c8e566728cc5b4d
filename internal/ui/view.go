package ui

import (
	"strings"

	"github.com/breakeven-llc/business-terminal/internal/logging/events"
	"github.com/breakeven-llc/business-terminal/internal/party"
	"github.com/breakeven-llc/business-terminal/internal/shell"
	"github.com/breakeven-llc/business-terminal/internal/theme"
	uistate "github.com/breakeven-llc/business-terminal/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const bannerInnerWidth = 68

// bannerEntries builds the welcome text shown when the terminal opens.
func bannerEntries(version string) []uistate.Entry {
	border := func(s string) string { return render(styles.Border, s) }
	rule := strings.Repeat("═", bannerInnerWidth)
	title := "  " + render(styles.Banner, "BREAKEVEN LLC TERMINAL") +
		" " + render(styles.Version, version)
	pad := bannerInnerWidth - ansi.StringWidth(title)
	if pad < 0 {
		pad = 0
	}
	bullet := func(color, text string) string {
		return "  " + theme.Rainbow(color, "●") + " " + text
	}
	raw := []string{
		border("╔" + rule + "╗"),
		border("║") + title + strings.Repeat(" ", pad) + border("║"),
		border("╚" + rule + "╝"),
		"",
		bullet(theme.ColorGreen, render(styles.Strong, "Podcast-as-a-Service Terminal")),
		bullet(theme.ColorYellow, render(styles.Muted, "Professional Solutions Platform")),
		bullet(theme.ColorCyan, render(styles.Muted, "Type ")+render(styles.Title, "help")+render(styles.Muted, " for available commands")),
		"",
		render(styles.Muted, strings.Repeat("─", bannerInnerWidth)),
		"",
	}
	entries := make([]uistate.Entry, 0, len(raw))
	for _, line := range raw {
		entries = append(entries, uistate.Entry{Text: line, Raw: true})
	}
	return entries
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func styleFor(s shell.Style) *lipgloss.Style {
	switch s {
	case shell.StyleHeading:
		return styles.Heading
	case shell.StyleTitle:
		return styles.Title
	case shell.StyleCommand:
		return styles.Command
	case shell.StyleMuted:
		return styles.Muted
	case shell.StyleError:
		return styles.Error
	case shell.StyleWarning:
		return styles.Warning
	case shell.StyleSuccess:
		return styles.Success
	case shell.StyleAccent:
		return styles.Accent
	}
	return styles.Text
}

func (m *Model) renderEntry(e uistate.Entry) string {
	switch {
	case e.Raw:
		return e.Text
	case e.Prompt:
		return render(styles.Prompt, promptGlyph) + render(styles.Input, e.Text)
	}
	return render(styleFor(e.Style), e.Text)
}

func (m *Model) promptLine() string {
	m.cursor.SetChar(" ")
	return render(styles.Prompt, promptGlyph) + render(styles.Input, m.editor.Buffer()) + m.cursor.View()
}

func (m *Model) frameLines() []string {
	frame := m.animation.Frame()
	out := make([]string, 0, len(frame))
	for i, line := range frame {
		if m.width > 0 {
			line = truncate.String(line, uint(m.width))
		}
		out = append(out, theme.Rainbow(party.Color(i), line))
	}
	return out
}

func (m *Model) content() string {
	lines := make([]string, 0, m.scrollback.Len()+1)
	for _, e := range m.scrollback.Entries() {
		lines = append(lines, m.wrap(m.renderEntry(e)))
	}
	switch {
	case m.animation != nil:
		lines = append(lines, m.frameLines()...)
	case !m.interp.Busy():
		lines = append(lines, m.wrap(m.promptLine()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) wrap(line string) string {
	if m.width <= 0 || line == "" {
		return line
	}
	return ansi.Wrap(line, m.width, "")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	content := m.content()
	if m.viewport.Height <= 0 {
		return content
	}
	m.viewport.SetContent(content)
	if m.follow {
		m.viewport.GotoBottom()
	}
	return m.viewport.View()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.syncViewportSize()
	events.App.Resize(m.width, m.height)
	return nil
}

func (m *Model) syncViewportSize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height
}
