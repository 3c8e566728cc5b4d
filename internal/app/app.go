package app

import (
	"errors"
	"fmt"

	"github.com/breakeven-llc/business-terminal/internal/logging"
	"github.com/breakeven-llc/business-terminal/internal/podcast"
	"github.com/breakeven-llc/business-terminal/internal/shell"
	"github.com/breakeven-llc/business-terminal/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	PodcastPath string
	Volume      float64
	Width       int
	Height      int
	// InitialWidth and InitialHeight size the first frame when Width and
	// Height are unset; resize messages replace them.
	InitialWidth  int
	InitialHeight int
	Scrollback    int
}

// NewModel wires the interpreter and the terminal model for cfg. A nil opener
// plays through the system audio device.
func NewModel(cfg Config, open podcast.Opener) *ui.Model {
	player := podcast.NewPlayer(cfg.PodcastPath, cfg.Volume, open)
	interp := shell.New(shell.Options{Player: player})
	return ui.NewModel(interp, ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  cfg.InitialWidth,
		InitialHeight: cfg.InitialHeight,
		Scrollback:    cfg.Scrollback,
		Blink:         true,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := NewModel(cfg, nil)
	defer func() {
		if err := model.Close(); err != nil {
			logging.Error(fmt.Errorf("close podcast: %w", err))
		}
	}()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
