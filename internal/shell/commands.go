package shell

import (
	"fmt"

	"github.com/breakeven-llc/business-terminal/internal/format/table"
)

const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

func helpCommand(in *Interpreter, _ Call) Result {
	visible := in.table.Visible()
	rows := make([][]string, 0, len(visible))
	for _, cmd := range visible {
		rows = append(rows, []string{cmd.Name, "- " + cmd.Summary})
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})

	lines := []Line{
		{Text: "Available commands:", Style: StyleHeading},
		{},
	}
	for i, cmd := range visible {
		lines = append(lines, Line{Text: "  " + aligned[i], Style: StyleCommand})
		if cmd.Usage != "" {
			lines = append(lines, Line{Text: "              Usage: " + cmd.Usage, Style: StyleMuted})
		}
	}
	lines = append(lines, Line{}, Line{Text: "Keyboard shortcuts:", Style: StyleMuted})
	for _, row := range table.Format(shortcuts, nil) {
		lines = append(lines, Line{Text: "  " + row, Style: StyleMuted})
	}
	return Result{Lines: lines}
}

var shortcuts = [][]string{
	{"Ctrl+C", "- Cancel current input"},
	{"Ctrl+L", "- Clear screen"},
	{"↑/↓", "- Navigate command history"},
	{"Tab", "- Complete command name"},
	{"PgUp/PgDn", "- Scroll output"},
	{"Ctrl+D", "- Exit"},
}

func clearCommand(*Interpreter, Call) Result {
	return Result{Clear: true}
}

func dateCommand(in *Interpreter, _ Call) Result {
	return Result{Lines: []Line{{Text: in.now().Format(dateLayout)}}}
}

func echoCommand(_ *Interpreter, call Call) Result {
	if call.Raw == "" {
		return Result{}
	}
	return Result{Lines: []Line{{Text: call.Raw}}}
}

func aboutCommand(*Interpreter, Call) Result {
	return Result{Lines: []Line{
		{Text: "Breakeven LLC", Style: StyleTitle},
		{Text: "─────────────────────────────────────────", Style: StyleMuted},
		{Text: "Professional solutions for modern business challenges."},
		{},
		{Text: "Services:", Style: StyleHeading},
		{Text: "  • Business Strategy Consulting"},
		{Text: "  • Technology Implementation"},
		{Text: "  • Innovation Leadership"},
		{},
	}}
}

func statusCommand(in *Interpreter, _ Call) Result {
	uptime := in.rng.IntN(999) + 1
	load := in.rng.Float64() * 2
	free := in.rng.IntN(50) + 50
	return Result{Lines: []Line{
		{Text: "● System Status: Operational", Style: StyleSuccess},
		{Text: fmt.Sprintf("Uptime: %d days", uptime), Style: StyleMuted},
		{Text: fmt.Sprintf("Load: %.2f", load), Style: StyleMuted},
		{Text: fmt.Sprintf("Memory: %d%% free", free), Style: StyleMuted},
	}}
}

const partyCommandName = "ethan"

func partyCommand(*Interpreter, Call) Result {
	return Result{
		Lines: []Line{
			{Text: "🦜 PARTY PARROT TIME! 🦜", Style: StyleAccent},
			{},
		},
		Animate: true,
	}
}

// PartyStoppedLines is written when the animation ends.
func PartyStoppedLines() []Line {
	return []Line{
		{},
		{Text: "Party stopped! 🎉", Style: StyleWarning},
		{},
	}
}
