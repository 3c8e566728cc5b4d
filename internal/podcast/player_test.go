package podcast

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	playErr  error
	plays    int
	pauses   int
	rewinds  int
	closed   bool
	position time.Duration
}

func (f *fakeBackend) Play() error {
	if f.playErr != nil {
		return f.playErr
	}
	f.plays++
	return nil
}

func (f *fakeBackend) Pause() error            { f.pauses++; return nil }
func (f *fakeBackend) Rewind() error           { f.rewinds++; f.position = 0; return nil }
func (f *fakeBackend) Position() time.Duration { return f.position }
func (f *fakeBackend) Duration() time.Duration { return 3 * time.Minute }
func (f *fakeBackend) Close() error            { f.closed = true; return nil }

type fakeOpener struct {
	backends []*fakeBackend
	err      error
	playErr  error
	volume   float64
}

func (o *fakeOpener) open(path string, volume float64) (Backend, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.volume = volume
	b := &fakeBackend{playErr: o.playErr}
	o.backends = append(o.backends, b)
	return b, nil
}

func TestPlayerStateMachine(t *testing.T) {
	op := &fakeOpener{}
	p := NewPlayer("episode.mp3", 0, op.open)
	require.Equal(t, Stopped, p.Status())

	require.NoError(t, p.Play())
	require.Equal(t, Playing, p.Status())
	require.Len(t, op.backends, 1)
	require.Equal(t, DefaultVolume, op.volume)

	require.ErrorIs(t, p.Play(), ErrAlreadyPlaying)

	require.NoError(t, p.Pause())
	require.Equal(t, Paused, p.Status())
	require.ErrorIs(t, p.Pause(), ErrNotPlaying)

	require.NoError(t, p.Resume())
	require.Equal(t, Playing, p.Status())
	require.Len(t, op.backends, 1, "resume must reuse the open backend")

	require.NoError(t, p.Stop())
	require.Equal(t, Stopped, p.Status())
	require.True(t, op.backends[0].closed)
	require.Equal(t, 1, op.backends[0].rewinds)
	require.ErrorIs(t, p.Stop(), ErrNotPlaying)

	require.NoError(t, p.Play())
	require.Len(t, op.backends, 2, "play after stop must reopen")
}

func TestPlayerStopWhilePaused(t *testing.T) {
	op := &fakeOpener{}
	p := NewPlayer("episode.mp3", 0.5, op.open)
	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.Stop())
	require.Equal(t, Stopped, p.Status())
	require.Equal(t, 0.5, op.volume)
}

func TestPlayerResumeRequiresPause(t *testing.T) {
	p := NewPlayer("episode.mp3", 0, (&fakeOpener{}).open)
	require.ErrorIs(t, p.Resume(), ErrNotPlaying)
	require.NoError(t, p.Play())
	require.ErrorIs(t, p.Resume(), ErrAlreadyPlaying)
}

func TestPlayerOpenFailureLeavesStateUnchanged(t *testing.T) {
	op := &fakeOpener{err: ErrUnsupportedFormat}
	p := NewPlayer("episode.m4a", 0, op.open)
	err := p.Play()
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Equal(t, Stopped, p.Status())
	require.Zero(t, p.Position())
}

func TestPlayerStartFailureReleasesFreshBackend(t *testing.T) {
	boom := errors.New("device busy")
	op := &fakeOpener{playErr: boom}
	p := NewPlayer("episode.mp3", 0, op.open)
	require.ErrorIs(t, p.Play(), boom)
	require.Equal(t, Stopped, p.Status())
	require.Len(t, op.backends, 1)
	require.True(t, op.backends[0].closed)
}

func TestPlayerBackendStartFailures(t *testing.T) {
	boom := errors.New("device lost")
	tests := []struct {
		name       string
		prepare    func(p *Player, op *fakeOpener)
		start      func(p *Player) error
		wantStatus Status
		wantClosed bool
	}{
		{
			name:       "play on a freshly opened backend",
			prepare:    func(*Player, *fakeOpener) {},
			start:      (*Player).Play,
			wantStatus: Stopped,
			wantClosed: true,
		},
		{
			name: "resume on a paused backend",
			prepare: func(p *Player, op *fakeOpener) {
				require.NoError(t, p.Play())
				require.NoError(t, p.Pause())
			},
			start:      (*Player).Resume,
			wantStatus: Paused,
		},
		{
			name: "play on a paused backend",
			prepare: func(p *Player, op *fakeOpener) {
				require.NoError(t, p.Play())
				require.NoError(t, p.Pause())
			},
			start:      (*Player).Play,
			wantStatus: Paused,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &fakeOpener{}
			p := NewPlayer("episode.mp3", 0, op.open)
			tt.prepare(p, op)
			op.playErr = boom
			for _, b := range op.backends {
				b.playErr = boom
			}

			err := tt.start(p)
			require.ErrorIs(t, err, boom)
			require.Equal(t, tt.wantStatus, p.Status())
			require.Len(t, op.backends, 1)
			require.Equal(t, tt.wantClosed, op.backends[0].closed)
		})
	}
}

func TestPlayerCloseReleasesBackend(t *testing.T) {
	op := &fakeOpener{}
	p := NewPlayer("episode.mp3", 0, op.open)
	require.NoError(t, p.Close())
	require.NoError(t, p.Play())
	require.NoError(t, p.Close())
	require.True(t, op.backends[0].closed)
	require.Equal(t, Stopped, p.Status())
}

func TestPlayerEpisode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakeven_weekly-01.mp3")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o644))

	op := &fakeOpener{}
	p := NewPlayer(path, 0, op.open)
	ep, err := p.Episode()
	require.NoError(t, err)
	require.Equal(t, "breakeven weekly 01", ep.Title)
	require.EqualValues(t, 2048, ep.Size)
	require.Zero(t, ep.Duration)

	require.NoError(t, p.Play())
	ep, err = p.Episode()
	require.NoError(t, err)
	require.Equal(t, 3*time.Minute, ep.Duration)

	_, err = NewPlayer(filepath.Join(dir, "missing.mp3"), 0, op.open).Episode()
	require.Error(t, err)
}
