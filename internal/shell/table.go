package shell

import (
	"sort"
	"strings"
)

// Handler produces the output of one command invocation.
type Handler func(in *Interpreter, call Call) Result

// Command is one entry of the command table.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Hidden  bool
	Handler Handler
}

// Table maps lowercased command names to commands. It is built once and not
// modified afterwards.
type Table struct {
	order    []*Command
	commands map[string]*Command
}

// BuildTable constructs the fixed command table.
func BuildTable() *Table {
	defs := []Command{
		{Name: "help", Summary: "Show this help message", Handler: helpCommand},
		{Name: "clear", Summary: "Clear the terminal", Handler: clearCommand},
		{Name: "date", Summary: "Show current date and time", Handler: dateCommand},
		{Name: "echo", Summary: "Echo back your message", Usage: "echo <text>", Handler: echoCommand},
		{Name: "about", Summary: "Learn about Breakeven LLC", Handler: aboutCommand},
		{Name: "status", Summary: "Check system status", Handler: statusCommand},
		{Name: "podcast", Summary: "Play/pause/stop the podcast", Usage: podcastUsage, Handler: podcastCommand},
		{Name: partyCommandName, Hidden: true, Handler: partyCommand},
	}
	t := &Table{commands: make(map[string]*Command, len(defs))}
	for i := range defs {
		cmd := &defs[i]
		t.order = append(t.order, cmd)
		t.commands[cmd.Name] = cmd
	}
	return t
}

// Lookup resolves a command by name, ignoring case.
func (t *Table) Lookup(name string) (*Command, bool) {
	cmd, ok := t.commands[strings.ToLower(name)]
	return cmd, ok
}

// Visible returns the listed commands in help order.
func (t *Table) Visible() []*Command {
	out := make([]*Command, 0, len(t.order))
	for _, cmd := range t.order {
		if !cmd.Hidden {
			out = append(out, cmd)
		}
	}
	return out
}

// Names returns the sorted names of the listed commands.
func (t *Table) Names() []string {
	visible := t.Visible()
	names := make([]string, 0, len(visible))
	for _, cmd := range visible {
		names = append(names, cmd.Name)
	}
	sort.Strings(names)
	return names
}
