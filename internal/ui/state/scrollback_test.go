package state

import (
	"testing"

	"github.com/breakeven-llc/business-terminal/internal/shell"
)

func TestScrollbackTranscript(t *testing.T) {
	s := NewScrollback(0)
	s.Echo("echo hi")
	s.AppendLines([]shell.Line{{Text: "hi"}})
	s.Append(Entry{Text: "\x1b[1;36mBANNER\x1b[0m", Raw: true})

	got := s.Transcript("$ ")
	want := []string{"$ echo hi", "hi", "BANNER"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestScrollbackLimit(t *testing.T) {
	s := NewScrollback(3)
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		s.Append(Entry{Text: text})
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
	if first := s.Entries()[0].Text; first != "c" {
		t.Fatalf("expected oldest kept entry c, got %q", first)
	}
}

func TestScrollbackClear(t *testing.T) {
	s := NewScrollback(0)
	s.Append(Entry{Text: "x"})
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty scrollback, got %d", s.Len())
	}
	s.Append(Entry{Text: "y"})
	if s.Len() != 1 {
		t.Fatalf("expected append after clear, got %d", s.Len())
	}
}
