package command

import (
	"github.com/breakeven-llc/business-terminal/internal/logging/events"
	"github.com/breakeven-llc/business-terminal/internal/shell"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an asynchronous continuation of a command.
type Request struct {
	Name    string
	Pending func() []shell.Line
}

// Done reports a finished continuation and the output it produced.
type Done struct {
	Name  string
	Lines []shell.Line
}

// Bus runs command continuations off the event loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a continuation into a Bubble Tea command while emitting trace
// logs. The returned command always yields a Done message so the caller can
// release the interpreter guard.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Dispatch(req.Name+".pending", nil)
	return func() tea.Msg {
		if req.Pending == nil {
			return Done{Name: req.Name}
		}
		lines := req.Pending()
		events.Command.Result(req.Name+".pending", len(lines), false)
		return Done{Name: req.Name, Lines: lines}
	}
}
