package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/haryoiro/playingicon/internal/constants"
	"github.com/haryoiro/playingicon/internal/logger"
)

var (
	ErrNoFileLoaded      = errors.New("no file loaded")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// State is the playback state
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// Player plays a single audio file and reports state changes
type Player struct {
	mu                 sync.RWMutex
	streamer           beep.StreamSeekCloser
	ctrl               *beep.Ctrl
	volume             *effects.Volume
	format             beep.Format
	state              State
	currentFile        string
	duration           time.Duration
	speakerInitialized bool
	currentSampleRate  beep.SampleRate
	events             chan State
}

// New creates a new audio player. The speaker is initialized on first load.
func New() *Player {
	return &Player{
		events: make(chan State, 8),
	}
}

// Events delivers every state change. Changes are dropped if nobody reads.
func (p *Player) Events() <-chan State {
	return p.events
}

func (p *Player) setState(s State) {
	p.state = s
	select {
	case p.events <- s:
	default:
		logger.Debug("Player event %s dropped, channel full", s)
	}
}

// decode picks a decoder from the file extension
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// Load loads an audio file, paused at its start
func (p *Player) Load(path string) error {
	streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer != nil {
		speaker.Clear()
		p.streamer.Close()
		p.streamer = nil
		p.ctrl = nil
	}

	p.streamer = streamer
	p.format = format
	p.currentFile = path
	p.duration = format.SampleRate.D(streamer.Len())

	if !p.speakerInitialized || p.currentSampleRate != format.SampleRate {
		if p.speakerInitialized {
			speaker.Close()
			time.Sleep(constants.SpeakerCloseDelay)
		}

		if err := speaker.Init(format.SampleRate, format.SampleRate.N(constants.SpeakerBuffer)); err != nil {
			return fmt.Errorf("failed to initialize speaker for sample rate %d: %w", format.SampleRate, err)
		}
		p.speakerInitialized = true
		p.currentSampleRate = format.SampleRate
		logger.Debug("Speaker initialized with sample rate: %d Hz", format.SampleRate)
	}

	p.enqueue()
	p.setState(Paused)
	logger.Debug("Loaded file: %s, duration: %v", path, p.duration)
	return nil
}

// enqueue hands the stream to the speaker, paused. The volume of the
// previous stream carries over.
func (p *Player) enqueue() {
	volume := &effects.Volume{
		Streamer: p.streamer,
		Base:     2,
	}
	if p.volume != nil {
		volume.Volume = p.volume.Volume
		volume.Silent = p.volume.Silent
	}
	ctrl := &beep.Ctrl{
		Streamer: volume,
		Paused:   true,
	}
	p.volume = volume
	p.ctrl = ctrl

	// The callback runs on the speaker goroutine with the speaker locked.
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		go p.finished(ctrl)
	})))
}

// rewind restarts a stream that played to its end
func (p *Player) rewind() error {
	speaker.Lock()
	err := p.streamer.Seek(0)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("failed to rewind %s: %w", filepath.Base(p.currentFile), err)
	}
	p.enqueue()
	logger.Debug("Rewound %s after end of stream", p.currentFile)
	return nil
}

func (p *Player) finished(ctrl *beep.Ctrl) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A newer Load replaced the stream in the meantime.
	if p.ctrl != ctrl {
		return
	}
	p.setState(Stopped)
	logger.Info("Playback finished: %s", p.currentFile)
}

// Play starts or resumes playback. A track that already ended starts over.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return ErrNoFileLoaded
	}
	if p.state == Stopped {
		if err := p.rewind(); err != nil {
			return err
		}
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()

	p.setState(Playing)
	return nil
}

// Pause pauses playback
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return ErrNoFileLoaded
	}
	if p.state != Playing {
		return nil
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()

	p.setState(Paused)
	return nil
}

// Toggle toggles play/pause
func (p *Player) Toggle() error {
	if p.State() == Playing {
		return p.Pause()
	}
	return p.Play()
}

// State returns the current playback state
func (p *Player) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// IsPlaying returns whether the player is currently playing
func (p *Player) IsPlaying() bool {
	return p.State() == Playing
}

// Position returns the current playback position
func (p *Player) Position() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded file
func (p *Player) Duration() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.duration
}

// CurrentFile returns the path of the loaded file
func (p *Player) CurrentFile() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentFile
}

// SetVolume sets the volume between 0.0 and 1.0
func (p *Player) SetVolume(volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.volume == nil {
		return ErrNoFileLoaded
	}
	volume = min(max(volume, 0), 1)

	speaker.Lock()
	if volume == 0 {
		p.volume.Silent = true
	} else {
		p.volume.Silent = false
		// Map 0..1 onto -5..0 in base-2 steps
		p.volume.Volume = (volume - 1) * 5
	}
	speaker.Unlock()
	return nil
}

// Close releases the stream and the speaker
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.streamer != nil {
		if p.speakerInitialized {
			speaker.Clear()
		}
		err = p.streamer.Close()
		p.streamer = nil
		p.ctrl = nil
		p.volume = nil
	}

	if p.speakerInitialized {
		speaker.Close()
		p.speakerInitialized = false
	}
	if p.state != Stopped {
		p.setState(Stopped)
	}
	return err
}

var _ io.Closer = (*Player)(nil)
