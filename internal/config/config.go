package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/breakeven-llc/business-terminal/internal/app"
	"github.com/breakeven-llc/business-terminal/internal/podcast"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	defaultPodcast    = "podcast.mp3"
	defaultScrollback = 1000
)

const (
	envPodcast    = "BUSINESS_TERMINAL_PODCAST"
	envVolume     = "BUSINESS_TERMINAL_VOLUME"
	envWidth      = "BUSINESS_TERMINAL_WIDTH"
	envHeight     = "BUSINESS_TERMINAL_HEIGHT"
	envScrollback = "BUSINESS_TERMINAL_SCROLLBACK"
	envVerbose    = "BUSINESS_TERMINAL_VERBOSE"
	envTrace      = "BUSINESS_TERMINAL_TRACE"
	envLogFile    = "BUSINESS_TERMINAL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("business-terminal", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	podcastPath := fs.String("podcast", envOrDefault(env, envPodcast, defaultPodcast), "path to the podcast episode (mp3, wav or ogg)")
	volume := fs.Float64("volume", envOrFloat(env, envVolume, podcast.DefaultVolume), "playback volume between 0 and 1")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired height in rows (0 uses terminal height)")
	scrollback := fs.Int("scrollback", envOrInt(env, envScrollback, defaultScrollback), "maximum number of output lines kept")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log additional diagnostics")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(*podcastPath) == "" {
		return Config{}, fmt.Errorf("podcast path must not be empty")
	}
	if *volume <= 0 || *volume > 1 {
		return Config{}, fmt.Errorf("volume must be in (0, 1] (got %g)", *volume)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *scrollback < 1 {
		return Config{}, fmt.Errorf("scrollback must be >= 1 (got %d)", *scrollback)
	}

	cfg := Config{
		App: app.Config{
			PodcastPath: *podcastPath,
			Volume:      *volume,
			Width:       *width,
			Height:      *height,
			Scrollback:  *scrollback,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"podcast":    *podcastPath,
			"volume":     strconv.FormatFloat(*volume, 'g', -1, 64),
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"scrollback": strconv.Itoa(*scrollback),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that the configured episode exists. A missing file is not
// fatal for the terminal itself, so callers decide how to report it.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.App.PodcastPath)
	if err != nil {
		return fmt.Errorf("podcast episode: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("podcast episode %s is a directory", cfg.App.PodcastPath)
	}
	return nil
}
