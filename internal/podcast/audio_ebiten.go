//go:build cgo

package podcast

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Ebiten allows a single audio context per process.
var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

var systemOpener Opener = openEbiten

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// streamPlayer is the part of *audio.Player the backend drives.
type streamPlayer interface {
	Play()
	Pause()
	SetPosition(time.Duration) error
	Position() time.Duration
	Close() error
}

// ebitenBackend plays a decoded file through Ebiten's audio package.
// Device start-up failures are recorded on the audio context rather than
// returned from Play, so deviceErr is consulted after every start.
type ebitenBackend struct {
	file      io.Closer
	player    streamPlayer
	length    int64
	deviceErr func() error
}

func openEbiten(path string, volume float64) (Backend, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stream, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	player, err := audioCtx.NewPlayer(stream)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio player: %w", err)
	}
	player.SetVolume(volume)
	return &ebitenBackend{
		file:      f,
		player:    player,
		length:    stream.Length(),
		deviceErr: audioCtx.Err,
	}, nil
}

func decode(path string, r io.ReadSeeker) (decodedStream, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, r)
	case ".ogg", ".oga":
		return vorbis.DecodeWithSampleRate(sampleRate, r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

func (b *ebitenBackend) Play() error {
	b.player.Play()
	if b.deviceErr == nil {
		return nil
	}
	if err := b.deviceErr(); err != nil {
		b.player.Pause()
		return fmt.Errorf("%w: %w", ErrAudioDevice, err)
	}
	return nil
}

func (b *ebitenBackend) Pause() error {
	b.player.Pause()
	return nil
}

func (b *ebitenBackend) Rewind() error {
	return b.player.SetPosition(0)
}

func (b *ebitenBackend) Position() time.Duration {
	return b.player.Position()
}

// Duration derives the length from the decoded 16-bit stereo PCM size.
func (b *ebitenBackend) Duration() time.Duration {
	const bytesPerSecond = sampleRate * 4
	return time.Duration(b.length) * time.Second / bytesPerSecond
}

func (b *ebitenBackend) Close() error {
	perr := b.player.Close()
	ferr := b.file.Close()
	if perr != nil {
		return perr
	}
	return ferr
}
