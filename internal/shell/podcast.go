package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/breakeven-llc/business-terminal/internal/logging"
	"github.com/breakeven-llc/business-terminal/internal/podcast"
)

const podcastUsage = "podcast [play|pause|stop|list|status|resume]"

var (
	lineNotPlaying     = Line{Text: "No podcast is playing", Style: StyleError}
	lineAlreadyPlaying = Line{Text: "Podcast is already playing", Style: StyleWarning}
	linePlayFailed     = Line{Text: "Error: Could not play podcast", Style: StyleError}
)

func podcastCommand(in *Interpreter, call Call) Result {
	sub := ""
	if len(call.Args) > 0 {
		sub = strings.ToLower(call.Args[0])
	}
	switch sub {
	case "", "play":
		return podcastPlay(in)
	case "resume":
		return podcastResume(in)
	case "pause":
		return podcastPause(in)
	case "stop":
		return podcastStop(in)
	case "list":
		return podcastList(in)
	case "status":
		return podcastStatus(in)
	}
	return Result{Lines: []Line{
		{Text: "Unknown podcast command: " + sub, Style: StyleError},
		{Text: "Usage: " + podcastUsage, Style: StyleMuted},
	}}
}

func podcastPlay(in *Interpreter) Result {
	if in.player.Status() == podcast.Playing {
		return Result{Lines: []Line{lineAlreadyPlaying}}
	}
	return Result{
		Lines: []Line{
			{Text: "🎧 Playing podcast...", Style: StyleAccent},
			{Text: "Commands: podcast pause | podcast stop", Style: StyleMuted},
		},
		Pending: startPlayback(in.player.Play),
	}
}

func podcastResume(in *Interpreter) Result {
	switch in.player.Status() {
	case podcast.Playing:
		return Result{Lines: []Line{lineAlreadyPlaying}}
	case podcast.Stopped:
		return Result{Lines: []Line{lineNotPlaying}}
	}
	return Result{
		Lines:   []Line{{Text: "▶ Resuming podcast...", Style: StyleAccent}},
		Pending: startPlayback(in.player.Resume),
	}
}

// startPlayback wraps a blocking start so failures surface as output lines.
func startPlayback(start func() error) func() []Line {
	return func() []Line {
		err := start()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, podcast.ErrAlreadyPlaying):
			return []Line{lineAlreadyPlaying}
		default:
			logging.Error(fmt.Errorf("podcast: %w", err))
			return []Line{linePlayFailed}
		}
	}
}

func podcastPause(in *Interpreter) Result {
	err := in.player.Pause()
	switch {
	case errors.Is(err, podcast.ErrNotPlaying):
		return Result{Lines: []Line{lineNotPlaying}}
	case err != nil:
		logging.Error(fmt.Errorf("podcast: %w", err))
		return Result{Lines: []Line{{Text: "Error: Could not pause podcast", Style: StyleError}}}
	}
	return Result{Lines: []Line{{Text: "⏸ Podcast paused", Style: StyleWarning}}}
}

func podcastStop(in *Interpreter) Result {
	err := in.player.Stop()
	if errors.Is(err, podcast.ErrNotPlaying) {
		return Result{Lines: []Line{lineNotPlaying}}
	}
	if err != nil {
		logging.Error(fmt.Errorf("podcast: %w", err))
	}
	return Result{Lines: []Line{{Text: "⏹ Podcast stopped", Style: StyleWarning}}}
}

func podcastList(in *Interpreter) Result {
	ep, err := in.player.Episode()
	if err != nil {
		logging.Error(fmt.Errorf("podcast: %w", err))
		return Result{Lines: []Line{{Text: "No episodes available", Style: StyleError}}}
	}
	length := "length unknown until played"
	if ep.Duration > 0 {
		length = formatClock(ep.Duration)
	}
	marker := " "
	if in.player.Status() != podcast.Stopped {
		marker = "▶"
	}
	return Result{Lines: []Line{
		{Text: "Episodes:", Style: StyleHeading},
		{Text: fmt.Sprintf(" %s 1. %s", marker, ep.Title), Style: StyleCommand},
		{Text: fmt.Sprintf("      %s, %s", humanize.Bytes(uint64(ep.Size)), length), Style: StyleMuted},
	}}
}

func podcastStatus(in *Interpreter) Result {
	status := in.player.Status()
	if status == podcast.Stopped {
		return Result{Lines: []Line{{Text: "Podcast: stopped", Style: StyleMuted}}}
	}
	text := fmt.Sprintf("Podcast: %s at %s", status, formatClock(in.player.Position()))
	if ep, err := in.player.Episode(); err == nil && ep.Duration > 0 {
		text += " / " + formatClock(ep.Duration)
	}
	style := StyleSuccess
	if status == podcast.Paused {
		style = StyleWarning
	}
	return Result{Lines: []Line{{Text: text, Style: style}}}
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
