package player

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsStopped(t *testing.T) {
	p := New()

	assert.Equal(t, Stopped, p.State())
	assert.False(t, p.IsPlaying())
	assert.Zero(t, p.Position())
	assert.Zero(t, p.Duration())
	assert.Empty(t, p.CurrentFile())
}

func TestControls_WithoutFile(t *testing.T) {
	p := New()

	assert.ErrorIs(t, p.Play(), ErrNoFileLoaded)
	assert.ErrorIs(t, p.Pause(), ErrNoFileLoaded)
	assert.ErrorIs(t, p.Toggle(), ErrNoFileLoaded)
	assert.ErrorIs(t, p.SetVolume(0.5), ErrNoFileLoaded)
	assert.NoError(t, p.Close())
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	p := New()

	err := p.Load(filepath.Join(t.TempDir(), "song.ogg"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, Stopped, p.State())
}

func TestLoad_MissingFile(t *testing.T) {
	p := New()

	err := p.Load(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wave file"), 0644))

	p := New()
	err := p.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode broken.wav")
	assert.Empty(t, p.CurrentFile())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "paused", Paused.String())
}

type nopCloser struct {
	beep.StreamSeeker
}

func (nopCloser) Close() error { return nil }

// endedPlayer returns a player whose in-memory track has played to its end.
func endedPlayer(t *testing.T) *Player {
	t.Helper()
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Silence(format.SampleRate.N(100 * time.Millisecond)))
	stream := buf.Streamer(0, buf.Len())
	require.NoError(t, stream.Seek(stream.Len()))

	p := New()
	p.streamer = nopCloser{stream}
	p.format = format
	p.duration = format.SampleRate.D(stream.Len())
	p.currentFile = "ended.wav"
	p.ctrl = &beep.Ctrl{Streamer: stream}
	p.state = Stopped

	t.Cleanup(func() {
		speaker.Clear()
		p.Close()
	})
	return p
}

func TestPlay_RestartsEndedTrack(t *testing.T) {
	p := endedPlayer(t)
	require.Equal(t, p.Duration(), p.format.SampleRate.D(p.streamer.Position()))

	require.NoError(t, p.Play())

	assert.Equal(t, Playing, p.State())
	assert.Equal(t, Playing, <-p.Events())
	assert.Zero(t, p.Position())
}

func TestToggle_AfterEndOfStream(t *testing.T) {
	p := endedPlayer(t)

	require.NoError(t, p.Toggle())
	assert.True(t, p.IsPlaying())

	require.NoError(t, p.Toggle())
	assert.Equal(t, Paused, p.State())
}
