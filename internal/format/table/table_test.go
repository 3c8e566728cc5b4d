package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"help", "- Show this help message"},
		{"podcast", "- Play/pause/stop the podcast"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"help     - Show this help message",
		"podcast  - Play/pause/stop the podcast",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\n%q", got, want)
	}
}

func TestFormatRightAlignsAndMeasuresCells(t *testing.T) {
	rows := [][]string{
		{"🎧", "7"},
		{"ab", "120"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"🎧    7",
		"ab  120",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\n%q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
