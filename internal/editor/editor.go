// Package editor implements the prompt line editor: an edit buffer, the
// submitted-line history, and the transition applied for each input fragment.
package editor

import (
	"strings"
	"unicode"
)

// Result describes what an applied fragment changed.
type Result struct {
	// Changed reports whether the buffer content differs afterwards.
	Changed bool
	// Submitted is set on Enter; Line then holds the trimmed buffer.
	Submitted bool
	Line      string
	// Cancelled is set on Cancel; Abandoned holds the discarded text.
	Cancelled bool
	Abandoned string
	// ClearScreen asks the surface to erase its output.
	ClearScreen bool
	// Recalled is set when history navigation replaced the buffer.
	Recalled bool
	// CompleteRequested asks the caller to complete the current buffer.
	CompleteRequested bool
}

// Editor owns the edit buffer and history for one prompt.
type Editor struct {
	buf     []rune
	history History
}

// New returns an empty editor.
func New() *Editor {
	e := &Editor{}
	e.history.Reset()
	return e
}

// Buffer returns the current edit buffer.
func (e *Editor) Buffer() string { return string(e.buf) }

// History exposes the submitted-line history.
func (e *Editor) History() *History { return &e.history }

// Replace overwrites the buffer, e.g. with a completion.
func (e *Editor) Replace(text string) bool {
	next := []rune(printable(text))
	if string(next) == string(e.buf) {
		return false
	}
	e.buf = next
	return true
}

// Apply feeds one fragment through the editor.
func (e *Editor) Apply(in Input) Result {
	switch in.Kind {
	case KindText:
		text := printable(in.Text)
		if text == "" {
			return Result{}
		}
		e.buf = append(e.buf, []rune(text)...)
		return Result{Changed: true}
	case KindBackspace:
		if len(e.buf) == 0 {
			return Result{}
		}
		e.buf = e.buf[:len(e.buf)-1]
		return Result{Changed: true}
	case KindEnter:
		raw := string(e.buf)
		line := strings.TrimSpace(raw)
		if line != "" {
			e.history.Push(raw)
		} else {
			e.history.Reset()
		}
		e.buf = e.buf[:0]
		return Result{Changed: raw != "", Submitted: true, Line: line}
	case KindHistoryPrev:
		line, ok := e.history.Prev()
		if !ok {
			return Result{}
		}
		return e.recall(line)
	case KindHistoryNext:
		line, ok := e.history.Next()
		if !ok {
			return Result{}
		}
		return e.recall(line)
	case KindCancel:
		abandoned := string(e.buf)
		e.buf = e.buf[:0]
		return Result{Changed: abandoned != "", Cancelled: true, Abandoned: abandoned}
	case KindClearScreen:
		return Result{ClearScreen: true}
	case KindComplete:
		return Result{CompleteRequested: true}
	}
	return Result{}
}

func (e *Editor) recall(line string) Result {
	changed := line != string(e.buf)
	e.buf = []rune(line)
	return Result{Changed: changed, Recalled: true}
}

// printable strips control runes; tabs and newlines inside pasted text
// become spaces.
func printable(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
