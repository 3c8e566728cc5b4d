// Package party holds the frames of the hidden party-parrot animation.
package party

import (
	_ "embed"
	"strings"
	"time"
)

// Interval is the delay between frames.
const Interval = 150 * time.Millisecond

//go:embed frames.txt
var rawFrames string

const frameSeparator = "%%"

var frames = parseFrames(rawFrames)

// Colors is the rainbow cycle applied to frame lines, as ANSI colour indexes:
// red, yellow, green, cyan, blue, magenta.
var Colors = []string{"9", "11", "10", "14", "12", "13"}

func parseFrames(raw string) [][]string {
	var out [][]string
	for _, chunk := range strings.Split(raw, "\n"+frameSeparator+"\n") {
		chunk = strings.TrimRight(chunk, "\n")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		out = append(out, strings.Split(chunk, "\n"))
	}
	return out
}

// FrameCount reports the number of frames in the loop.
func FrameCount() int { return len(frames) }

// Animation walks the frame loop.
type Animation struct {
	index int
	ticks int
}

// New starts an animation at the first frame.
func New() *Animation { return &Animation{} }

// Frame returns the lines of the current frame.
func (a *Animation) Frame() []string {
	if len(frames) == 0 {
		return nil
	}
	return frames[a.index]
}

// Index reports the current frame position.
func (a *Animation) Index() int { return a.index }

// Ticks reports how many times the animation has advanced.
func (a *Animation) Ticks() int { return a.ticks }

// Advance moves to the next frame, wrapping at the end.
func (a *Animation) Advance() {
	if len(frames) == 0 {
		return
	}
	a.index = (a.index + 1) % len(frames)
	a.ticks++
}

// Color returns the rainbow colour for the given line of a frame.
func Color(line int) string {
	if line < 0 {
		line = -line
	}
	return Colors[line%len(Colors)]
}
