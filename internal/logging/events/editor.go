package events

import "github.com/breakeven-llc/business-terminal/internal/logging"

type EditorTracer struct{}

type dropReason string

const (
	DropBusy      dropReason = "busy"
	DropAnimating dropReason = "animating"
)

var Editor = EditorTracer{}

func (EditorTracer) Submit(line string, historyLen int) {
	logging.Trace("editor.submit", map[string]interface{}{"line": line, "history": historyLen})
}

func (EditorTracer) Cancel(abandoned string) {
	logging.Trace("editor.cancel", map[string]interface{}{"abandoned": abandoned})
}

func (EditorTracer) ClearScreen(buffer string) {
	logging.Trace("editor.clear-screen", map[string]interface{}{"buffer": buffer})
}

func (EditorTracer) Recall(cursor int, line string) {
	logging.Trace("editor.history.recall", map[string]interface{}{"cursor": cursor, "line": line})
}

func (EditorTracer) Complete(prefix, completion string) {
	logging.Trace("editor.complete", map[string]interface{}{"prefix": prefix, "completion": completion})
}

func (EditorTracer) Drop(key string, reason dropReason) {
	logging.Trace("editor.drop", map[string]interface{}{"key": key, "reason": string(reason)})
}
