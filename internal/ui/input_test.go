package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/breakeven-llc/business-terminal/internal/editor"
	"github.com/breakeven-llc/business-terminal/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func TestInputForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want editor.Input
		ok   bool
	}{
		{"runes", keyRunes("ab"), editor.Text("ab"), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, editor.Text(" "), true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, editor.Signal(editor.KindBackspace), true},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, editor.Signal(editor.KindBackspace), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, editor.Signal(editor.KindEnter), true},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, editor.Signal(editor.KindHistoryPrev), true},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, editor.Signal(editor.KindHistoryNext), true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, editor.Signal(editor.KindCancel), true},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, editor.Signal(editor.KindClearScreen), true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, editor.Signal(editor.KindComplete), true},
		{"alt runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, editor.Input{}, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, editor.Input{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inputForKey(tt.key)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("inputForKey(%s) = %#v, %v; want %#v, %v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeysDroppedWhileBusy(t *testing.T) {
	m := newTestModel(t, stubOpener, Options{})
	typeInto(m, "podcast play")
	_, pending := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Busy() {
		t.Fatalf("expected guard held")
	}

	typeInto(m, "help")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Buffer(); got != "" {
		t.Fatalf("expected keys dropped while busy, buffer %q", got)
	}
	if got := m.History(); len(got) != 1 || got[0] != "podcast play" {
		t.Fatalf("expected only the first submission in history, got %q", got)
	}

	runCmd(m, pending)
	if m.Busy() {
		t.Fatalf("expected guard released")
	}
	typeInto(m, "x")
	if got := m.Buffer(); got != "x" {
		t.Fatalf("expected typing to resume, buffer %q", got)
	}
}

func TestCtrlDQuitsOnlyOnEmptyBuffer(t *testing.T) {
	m := newTestModel(t, stubOpener, Options{})
	typeInto(m, "a")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD}); cmd != nil {
		t.Fatalf("expected ctrl+d ignored with text in the buffer")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.quitting {
		t.Fatalf("expected quitting flag")
	}
}

func TestUnmappedKeysLeaveBuffer(t *testing.T) {
	m := newTestModel(t, stubOpener, Options{})
	typeInto(m, "ab")
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Buffer(); got != "ab" {
		t.Fatalf("expected buffer unchanged, got %q", got)
	}
}

func TestDroppedKeysTraceReason(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	h := NewHarness(newTestModel(t, stubOpener, Options{}))
	h.Submit("ethan")
	h.Type("q")
	if h.Model().Animating() {
		t.Fatalf("expected animation stopped")
	}
	m := h.Model()
	typeInto(m, "podcast play")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeInto(m, "z")

	logging.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	reasons := map[string]interface{}{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry struct {
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if entry.Event == "editor.drop" {
			reasons[fmt.Sprint(entry.Payload["key"])] = entry.Payload["reason"]
		}
	}
	if reasons["q"] != "animating" {
		t.Fatalf("expected the stopping key traced as animating, got %v", reasons)
	}
	if reasons["z"] != "busy" {
		t.Fatalf("expected the busy key traced as busy, got %v", reasons)
	}
}
