package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haryoiro/playingicon/internal/structures"
	"github.com/haryoiro/playingicon/pkg/playingicon"
	"github.com/pelletier/go-toml/v2"
)

// Load loads the configuration from a TOML file
func Load(path string) (*structures.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves the configuration to a TOML file
func Save(cfg *structures.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Default returns the default configuration
func Default() *structures.Config {
	return &structures.Config{
		Icon: structures.IconConfig{
			Color:        playingicon.DefaultColor,
			BarCount:     playingicon.DefaultBarCount,
			FrameDelayMs: int(playingicon.DefaultFrameDelay / time.Millisecond),
			SpaceRatio:   playingicon.DefaultSpaceRatio,
			Width:        24,
			Height:       8,
			PaddingLeft:  1,
			PaddingRight: 1,
			Palette: []string{
				"#FF0000", // Red
				"#9ece6a", // Tokyo Night green
				"#7aa2f7", // Tokyo Night blue
				"#e0af68", // Tokyo Night yellow
				"#bb9af7", // Tokyo Night magenta
			},
		},
		Theme: structures.Theme{
			Foreground: "#c0caf5", // Tokyo Night foreground
			Border:     "#3b4261", // Tokyo Night border
			Title:      "#7aa2f7", // Tokyo Night blue
			Playing:    "#9ece6a", // Tokyo Night green
			Stopped:    "#565f89", // Tokyo Night dark gray
		},
		KeyBindings: structures.KeyBindings{
			Quit:      []string{"q", "ctrl+c", "ctrl+d"},
			Toggle:    "space",
			NextColor: "c",
			MoreBars:  []string{"+", "="},
			FewerBars: []string{"-", "_"},
		},
	}
}

// IconOptions converts the icon section into widget options.
// Values are passed through as is; the widget clamps what it cannot use.
func IconOptions(cfg *structures.Config) playingicon.Options {
	return playingicon.Options{
		Color:      cfg.Icon.Color,
		BarCount:   cfg.Icon.BarCount,
		FrameDelay: time.Duration(cfg.Icon.FrameDelayMs) * time.Millisecond,
		SpaceRatio: cfg.Icon.SpaceRatio,
	}
}

// IconPadding converts the icon padding into widget padding.
// Negative values are treated as zero.
func IconPadding(cfg *structures.Config) playingicon.Padding {
	return playingicon.Padding{
		Left:   float64(max(cfg.Icon.PaddingLeft, 0)),
		Top:    float64(max(cfg.Icon.PaddingTop, 0)),
		Right:  float64(max(cfg.Icon.PaddingRight, 0)),
		Bottom: float64(max(cfg.Icon.PaddingBottom, 0)),
	}
}
