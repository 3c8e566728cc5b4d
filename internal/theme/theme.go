package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Text    *lipgloss.Style
	Prompt  *lipgloss.Style
	Input   *lipgloss.Style
	Cursor  *lipgloss.Style
	Heading *lipgloss.Style
	Title   *lipgloss.Style
	Command *lipgloss.Style
	Muted   *lipgloss.Style
	Error   *lipgloss.Style
	Warning *lipgloss.Style
	Success *lipgloss.Style
	Accent  *lipgloss.Style
	Border  *lipgloss.Style
	Banner  *lipgloss.Style
	Strong  *lipgloss.Style
	Version *lipgloss.Style
}

// Palette colours of the terminal.
const (
	ColorBackground = "#0a0e27"
	ColorForeground = "#f8f8f2"
	ColorCursor     = "#ff79c6"
	ColorRed        = "#ff5555"
	ColorGreen      = "#50fa7b"
	ColorYellow     = "#f1fa8c"
	ColorBlue       = "#bd93f9"
	ColorMagenta    = "#ff79c6"
	ColorCyan       = "#8be9fd"
	ColorWhite      = "#ffffff"
	ColorComment    = "#6272a4"
)

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForeground)),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMagenta)).Bold(true),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForeground)),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBackground)).Background(lipgloss.Color(ColorCursor)),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)).Bold(true),
	),
	Command: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorComment)),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)).Bold(true),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)).Bold(true),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)).Bold(true),
	),
	Accent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMagenta)).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)).Bold(true),
	),
	Banner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)).Bold(true),
	),
	Strong: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForeground)).Bold(true),
	),
	Version: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorComment)).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Rainbow renders text in the given ANSI colour, bold.
func Rainbow(color, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
