package events

import "github.com/breakeven-llc/business-terminal/internal/logging"

type CommandTracer struct{}

type PodcastTracer struct{}

type PartyTracer struct{}

var (
	Command = CommandTracer{}
	Podcast = PodcastTracer{}
	Party   = PartyTracer{}
)

func (CommandTracer) Dispatch(name string, args []string) {
	logging.Trace("command.dispatch", map[string]interface{}{"name": name, "args": args})
}

func (CommandTracer) NotFound(name string) {
	logging.Trace("command.not-found", map[string]interface{}{"name": name})
}

func (CommandTracer) Busy(line string) {
	logging.Trace("command.busy", map[string]interface{}{"line": line})
}

func (CommandTracer) Result(name string, lines int, pending bool) {
	logging.Trace("command.result", map[string]interface{}{"name": name, "lines": lines, "pending": pending})
}

func (CommandTracer) Release(name string) {
	logging.Trace("command.release", map[string]interface{}{"name": name})
}

func (PodcastTracer) Transition(from, to string) {
	logging.Trace("podcast.transition", map[string]interface{}{"from": from, "to": to})
}

func (PodcastTracer) Open(path string) {
	logging.Trace("podcast.open", map[string]interface{}{"path": path})
}

func (PodcastTracer) Release(path string) {
	logging.Trace("podcast.release", map[string]interface{}{"path": path})
}

func (PodcastTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("podcast.error", map[string]interface{}{"error": err.Error()})
}

func (PartyTracer) Start(frames int) {
	logging.Trace("party.start", map[string]interface{}{"frames": frames})
}

func (PartyTracer) Stop(ticks int) {
	logging.Trace("party.stop", map[string]interface{}{"ticks": ticks})
}
