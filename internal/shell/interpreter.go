// Package shell interprets submitted prompt lines against the fixed command
// table. At most one submission is processed at a time; a submission that
// arrives while another is in flight is rejected with ErrBusy and dropped.
package shell

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/breakeven-llc/business-terminal/internal/logging/events"
	"github.com/breakeven-llc/business-terminal/internal/podcast"
)

// ErrBusy is returned when a submission arrives while another is in flight.
var ErrBusy = errors.New("command in progress")

// Style tags an output line with its presentation role.
type Style int

const (
	StylePlain Style = iota
	StyleHeading
	StyleTitle
	StyleCommand
	StyleMuted
	StyleError
	StyleWarning
	StyleSuccess
	StyleAccent
)

// Line is one line of command output.
type Line struct {
	Text  string
	Style Style
}

// Result is the outcome of a submission.
type Result struct {
	Name  string
	Lines []Line
	// Clear asks the surface to erase its output before Lines are written.
	Clear bool
	// Pending is run off the event loop; the lines it returns are written
	// when it completes. The guard stays held until Release is called.
	Pending func() []Line
	// Animate starts the party animation; the guard stays held until Release.
	Animate bool
}

// Held reports whether the result keeps the guard held after Submit returns.
func (r Result) Held() bool {
	return r.Pending != nil || r.Animate
}

// Call is a parsed invocation.
type Call struct {
	Name string
	Args []string
	// Raw is the argument text exactly as typed after the command name.
	Raw string
}

// Parse splits a line into a lowercased command name and its arguments.
func Parse(line string) Call {
	line = strings.TrimSpace(line)
	if line == "" {
		return Call{}
	}
	fields := strings.Fields(line)
	call := Call{Name: strings.ToLower(fields[0]), Args: fields[1:]}
	// Fields splits on any Unicode space, so Raw must cut at the same place.
	if idx := strings.IndexFunc(line, unicode.IsSpace); idx >= 0 {
		call.Raw = strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
	}
	return call
}

// Options configures an Interpreter.
type Options struct {
	Player  *podcast.Player
	Now     func() time.Time
	Rand    *rand.Rand
	Version string
}

// Interpreter dispatches submitted lines and owns the playback state.
type Interpreter struct {
	table   *Table
	player  *podcast.Player
	now     func() time.Time
	rng     *rand.Rand
	version string

	busy     bool
	inflight string
}

// New builds an interpreter.
func New(opts Options) *Interpreter {
	in := &Interpreter{
		table:   BuildTable(),
		player:  opts.Player,
		now:     opts.Now,
		rng:     opts.Rand,
		version: opts.Version,
	}
	if in.player == nil {
		in.player = podcast.NewPlayer("podcast.mp3", podcast.DefaultVolume, nil)
	}
	if in.now == nil {
		in.now = time.Now
	}
	if in.rng == nil {
		in.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	if in.version == "" {
		in.version = "v1.0.0"
	}
	return in
}

// Table exposes the command table.
func (in *Interpreter) Table() *Table { return in.table }

// Player exposes the playback state.
func (in *Interpreter) Player() *podcast.Player { return in.player }

// Version reports the banner version string.
func (in *Interpreter) Version() string { return in.version }

// Busy reports whether the guard is held.
func (in *Interpreter) Busy() bool { return in.busy }

// Submit dispatches a line. When the returned Result is Held the caller must
// call Release once the continuation has finished.
func (in *Interpreter) Submit(line string) (Result, error) {
	if in.busy {
		events.Command.Busy(line)
		return Result{}, ErrBusy
	}
	in.busy = true
	call := Parse(line)
	in.inflight = call.Name
	res := in.dispatch(call)
	events.Command.Result(call.Name, len(res.Lines), res.Held())
	if !res.Held() {
		in.Release()
	}
	return res, nil
}

// Release clears the guard.
func (in *Interpreter) Release() {
	if !in.busy {
		return
	}
	events.Command.Release(in.inflight)
	in.busy = false
	in.inflight = ""
}

func (in *Interpreter) dispatch(call Call) Result {
	if call.Name == "" {
		return Result{}
	}
	cmd, ok := in.table.Lookup(call.Name)
	if !ok {
		events.Command.NotFound(call.Name)
		return Result{
			Name:  call.Name,
			Lines: []Line{{Text: "command not found: " + call.Name, Style: StyleError}},
		}
	}
	events.Command.Dispatch(cmd.Name, call.Args)
	res := cmd.Handler(in, call)
	res.Name = cmd.Name
	return res
}

// Close releases the audio resource.
func (in *Interpreter) Close() error {
	if in.player == nil {
		return nil
	}
	return in.player.Close()
}
