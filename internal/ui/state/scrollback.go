package state

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/breakeven-llc/business-terminal/internal/shell"
)

// Entry is one line of terminal output.
type Entry struct {
	Text  string
	Style shell.Style
	// Prompt marks an echoed input line; it is drawn behind the prompt glyph.
	Prompt bool
	// Raw marks pre-rendered text that carries its own ANSI styling.
	Raw bool
}

// Scrollback holds the visible output of the terminal, oldest first. When a
// limit is set the oldest entries are discarded beyond it.
type Scrollback struct {
	entries []Entry
	limit   int
}

// NewScrollback constructs a scrollback keeping at most limit entries
// (0 keeps everything).
func NewScrollback(limit int) *Scrollback {
	if limit < 0 {
		limit = 0
	}
	return &Scrollback{limit: limit}
}

// Append adds entries and enforces the limit.
func (s *Scrollback) Append(entries ...Entry) {
	s.entries = append(s.entries, entries...)
	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		s.entries = append(s.entries[:0], s.entries[drop:]...)
	}
}

// AppendLines adds command output.
func (s *Scrollback) AppendLines(lines []shell.Line) {
	for _, line := range lines {
		s.Append(Entry{Text: line.Text, Style: line.Style})
	}
}

// Echo records an input line as it appeared behind the prompt.
func (s *Scrollback) Echo(text string) {
	s.Append(Entry{Text: text, Prompt: true})
}

// Clear erases all entries.
func (s *Scrollback) Clear() {
	s.entries = s.entries[:0]
}

// Len returns the number of entries.
func (s *Scrollback) Len() int { return len(s.entries) }

// Entries returns the entries in display order. The slice must not be modified.
func (s *Scrollback) Entries() []Entry { return s.entries }

// Transcript returns the unstyled text of every entry, prefixing echoed input
// with prompt.
func (s *Scrollback) Transcript(prompt string) []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		text := e.Text
		if e.Raw {
			text = ansi.Strip(text)
		}
		if e.Prompt {
			text = prompt + text
		}
		out = append(out, text)
	}
	return out
}
