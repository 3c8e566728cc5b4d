// Package podcast owns the single audio resource of the terminal and the
// stopped/playing/paused state machine that controls it.
package podcast

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/breakeven-llc/business-terminal/internal/logging/events"
)

var (
	// ErrNotPlaying is returned when pausing or stopping without an active episode.
	ErrNotPlaying = errors.New("no podcast is playing")
	// ErrAlreadyPlaying is returned when starting an episode that is already playing.
	ErrAlreadyPlaying = errors.New("podcast is already playing")
	// ErrAudioUnavailable is returned by builds without an audio backend.
	ErrAudioUnavailable = errors.New("audio output unavailable in this build")
	// ErrUnsupportedFormat is returned when the episode cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrAudioDevice wraps failures of the output device reported after start.
	ErrAudioDevice = errors.New("audio device failed")
)

// DefaultVolume matches the level the episode is mixed for.
const DefaultVolume = 0.7

// Status is the playback state.
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Backend is an opened audio resource.
type Backend interface {
	Play() error
	Pause() error
	Rewind() error
	Position() time.Duration
	Duration() time.Duration
	Close() error
}

// Opener opens the audio file at path with the given volume (0-1).
type Opener func(path string, volume float64) (Backend, error)

// SystemOpener returns the opener backed by the platform audio device.
func SystemOpener() Opener { return systemOpener }

// Episode describes the single available recording.
type Episode struct {
	Title    string
	Path     string
	Size     int64
	Duration time.Duration
}

// Player drives one Backend through the playback state machine. The backend
// is opened on first play and released on stop or Close.
type Player struct {
	path   string
	volume float64
	open   Opener

	mu      sync.Mutex
	backend Backend
	status  Status
}

// NewPlayer builds a player for the episode at path. A nil opener selects the
// system opener; a volume outside (0, 1] falls back to DefaultVolume.
func NewPlayer(path string, volume float64, open Opener) *Player {
	if open == nil {
		open = systemOpener
	}
	if volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}
	return &Player{path: path, volume: volume, open: open}
}

// Status reports the current playback state.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Position reports the playback position; zero when nothing is open.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.backend == nil {
		return 0
	}
	return p.backend.Position()
}

// Play starts or continues playback. A failure leaves the state unchanged.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playLocked()
}

// Resume continues a paused episode.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.status {
	case Playing:
		return ErrAlreadyPlaying
	case Stopped:
		return ErrNotPlaying
	}
	return p.playLocked()
}

func (p *Player) playLocked() error {
	if p.status == Playing {
		return ErrAlreadyPlaying
	}
	opened := false
	if p.backend == nil {
		events.Podcast.Open(p.path)
		b, err := p.open(p.path, p.volume)
		if err != nil {
			events.Podcast.Error(err)
			return fmt.Errorf("open %s: %w", p.path, err)
		}
		p.backend = b
		opened = true
	}
	if err := p.backend.Play(); err != nil {
		events.Podcast.Error(err)
		if opened {
			_ = p.backend.Close()
			p.backend = nil
		}
		return fmt.Errorf("start playback: %w", err)
	}
	p.transition(Playing)
	return nil
}

// Pause halts a playing episode, keeping its position.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != Playing {
		return ErrNotPlaying
	}
	if err := p.backend.Pause(); err != nil {
		events.Podcast.Error(err)
		return fmt.Errorf("pause playback: %w", err)
	}
	p.transition(Paused)
	return nil
}

// Stop halts playback, rewinds and releases the backend.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == Stopped {
		return ErrNotPlaying
	}
	err := p.releaseLocked()
	p.transition(Stopped)
	return err
}

// Close releases the backend regardless of state.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.releaseLocked()
	if p.status != Stopped {
		p.transition(Stopped)
	}
	return err
}

func (p *Player) releaseLocked() error {
	if p.backend == nil {
		return nil
	}
	b := p.backend
	p.backend = nil
	events.Podcast.Release(p.path)
	return errors.Join(b.Pause(), b.Rewind(), b.Close())
}

func (p *Player) transition(next Status) {
	events.Podcast.Transition(p.status.String(), next.String())
	p.status = next
}

// Episode describes the configured recording. Duration is only known once the
// backend has been opened.
func (p *Player) Episode() (Episode, error) {
	info, err := os.Stat(p.path)
	if err != nil {
		return Episode{}, fmt.Errorf("stat episode: %w", err)
	}
	ep := Episode{
		Title: episodeTitle(p.path),
		Path:  p.path,
		Size:  info.Size(),
	}
	p.mu.Lock()
	if p.backend != nil {
		ep.Duration = p.backend.Duration()
	}
	p.mu.Unlock()
	return ep, nil
}

func episodeTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.TrimSpace(base)
}
