package command

import (
	"testing"

	"github.com/breakeven-llc/business-terminal/internal/shell"
)

func TestExecuteReturnsDoneWithLines(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{Name: "podcast", Pending: func() []shell.Line {
		return []shell.Line{{Text: "Error: Could not play podcast"}}
	}})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	done, ok := cmd().(Done)
	if !ok {
		t.Fatalf("expected Done message")
	}
	if done.Name != "podcast" || len(done.Lines) != 1 {
		t.Fatalf("unexpected done %#v", done)
	}
}

func TestExecuteWithoutPendingStillReportsDone(t *testing.T) {
	done, ok := New().Execute(Request{Name: "noop"})().(Done)
	if !ok || done.Name != "noop" || len(done.Lines) != 0 {
		t.Fatalf("unexpected result %#v", done)
	}
}
