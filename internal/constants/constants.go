package constants

import "time"

// Timing constants
const (
	SpeakerBuffer     = time.Second / 10
	SpeakerCloseDelay = 100 * time.Millisecond
)

// UI constants
const (
	MinIconWidth   = 1
	MinIconHeight  = 1
	TitleHeight    = 1 // One title line above the icon box
	StatusHeight   = 1 // One status line under the icon box
	BorderSize     = 2 // Rounded border, one cell per side
	MaxBarCount    = 32
	EllipsisSuffix = "…"
)

// Application file names
const (
	AppName        = "playingicon"
	ConfigFileName = "config.toml"
	LogFileName    = "playingicon.log"
)
