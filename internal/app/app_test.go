package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/breakeven-llc/business-terminal/internal/podcast"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelUsesConfiguredEpisode(t *testing.T) {
	var gotPath string
	var gotVolume float64
	open := func(path string, volume float64) (podcast.Backend, error) {
		gotPath, gotVolume = path, volume
		return nil, errors.New("no device")
	}
	model := NewModel(Config{PodcastPath: "show.mp3", Volume: 0.4, Width: 60, Height: 20}, open)
	defer model.Close()

	for _, r := range "podcast play" {
		if r == ' ' {
			model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected pending playback command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				if m := c(); m != nil {
					model.Update(m)
				}
			}
		}
	} else {
		model.Update(msg)
	}

	if gotPath != "show.mp3" || gotVolume != 0.4 {
		t.Fatalf("expected opener called with show.mp3 at 0.4, got %q at %v", gotPath, gotVolume)
	}
	transcript := strings.Join(model.Transcript(), "\n")
	if !strings.Contains(transcript, "Error: Could not play podcast") {
		t.Fatalf("expected playback failure in transcript:\n%s", transcript)
	}
	if model.Busy() {
		t.Fatalf("expected guard released")
	}
}
