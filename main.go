package main

import (
	"fmt"
	"os"

	"github.com/breakeven-llc/business-terminal/internal/app"
	"github.com/breakeven-llc/business-terminal/internal/config"
	"github.com/breakeven-llc/business-terminal/internal/logging"
	"github.com/breakeven-llc/business-terminal/internal/logging/events"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetSession(uuid.NewString())
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	defer logging.Sync()

	// The terminal still runs without an episode; podcast commands report it.
	if err := config.Validate(runtimeCfg); err != nil {
		logging.Error(err)
		if runtimeCfg.Features.Verbose {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	report := detectTerminal(standardStreams())
	runtimeCfg.App = seedTerminalSize(runtimeCfg.App, report)
	events.App.Start(startupTracePayload(runtimeCfg, report))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events.App.Stop("exit")
}

// seedTerminalSize gives the model a starting size from the detected terminal
// so the first frame wraps correctly before any resize message arrives.
// Explicit --width/--height values win.
func seedTerminalSize(cfg app.Config, report terminalReport) app.Config {
	if report.Size == nil {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = report.Size.Width
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = report.Size.Height
	}
	return cfg
}

// startupTracePayload bundles runtime context for the app.start trace.
func startupTracePayload(cfg config.Config, report terminalReport) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": report,
		"logPath":  logging.Path(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type terminalSize struct {
	Stream string `json:"stream"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type streamStatus struct {
	Stream     string `json:"stream"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

type terminalReport struct {
	// Size is taken from the first stream that is a terminal and reports one.
	Size    *terminalSize  `json:"size,omitempty"`
	Streams []streamStatus `json:"streams"`
}

type namedStream struct {
	name string
	fd   int
}

func standardStreams() []namedStream {
	return []namedStream{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// detectTerminal checks which streams are attached to a terminal and records
// the first usable size. stdout comes first because that is where the UI
// draws.
func detectTerminal(streams []namedStream) terminalReport {
	report := terminalReport{Streams: make([]streamStatus, 0, len(streams))}
	for _, s := range streams {
		status := streamStatus{Stream: s.name}
		if s.fd >= 0 && term.IsTerminal(s.fd) {
			status.IsTerminal = true
			w, h, err := term.GetSize(s.fd)
			switch {
			case err != nil:
				status.Error = err.Error()
			case report.Size == nil && w > 0 && h > 0:
				report.Size = &terminalSize{Stream: s.name, Width: w, Height: h}
			}
		}
		report.Streams = append(report.Streams, status)
	}
	return report
}
