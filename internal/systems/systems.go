package systems

import (
	"fmt"

	"github.com/haryoiro/playingicon/internal/logger"
	"github.com/haryoiro/playingicon/internal/player"
	"github.com/haryoiro/playingicon/internal/structures"
)

// Systems contains all the core systems of the application
type Systems struct {
	Config *structures.Config
	Player *player.Player // nil when no audio file was given
}

// New creates a new Systems instance
func New(cfg *structures.Config) *Systems {
	return &Systems{
		Config: cfg,
	}
}

// Start starts all systems. An empty playPath runs without audio.
func (s *Systems) Start(playPath string) error {
	if playPath == "" {
		logger.Debug("No audio file given, running without player")
		return nil
	}

	p := player.New()
	if err := p.Load(playPath); err != nil {
		p.Close()
		return fmt.Errorf("failed to load %s: %w", playPath, err)
	}
	if err := p.Play(); err != nil {
		p.Close()
		return fmt.Errorf("failed to start playback: %w", err)
	}

	s.Player = p
	logger.Info("Playing %s (%v)", playPath, p.Duration())
	return nil
}

// HasPlayer reports whether audio playback drives the icon
func (s *Systems) HasPlayer() bool {
	return s.Player != nil
}

// Stop stops all systems
func (s *Systems) Stop() error {
	if s.Player == nil {
		return nil
	}
	err := s.Player.Close()
	s.Player = nil
	return err
}
