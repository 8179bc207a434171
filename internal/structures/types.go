package structures

// Config represents the application configuration
type Config struct {
	Icon        IconConfig  `toml:"icon"`
	Theme       Theme       `toml:"theme"`
	KeyBindings KeyBindings `toml:"key_bindings"`

	// UI Configuration
	DisableAltScreen bool `toml:"disable_alt_screen"`
}

// IconConfig represents the playing icon configuration
type IconConfig struct {
	Color        string  `toml:"color"`          // Bar fill color
	BarCount     int     `toml:"bar_count"`      // Number of bars
	FrameDelayMs int     `toml:"frame_delay_ms"` // Delay between frames in milliseconds
	SpaceRatio   float64 `toml:"space_ratio"`    // Gap width / bar width

	// Size of the icon box in terminal cells, clamped to the window
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Padding inside the icon box in terminal cells
	PaddingLeft   int `toml:"padding_left"`
	PaddingTop    int `toml:"padding_top"`
	PaddingRight  int `toml:"padding_right"`
	PaddingBottom int `toml:"padding_bottom"`

	// Colors cycled by the next_color key
	Palette []string `toml:"palette"`
}

// Theme represents the UI theme configuration
type Theme struct {
	Foreground string `toml:"foreground"` // Default text color
	Border     string `toml:"border"`     // Border color
	Title      string `toml:"title"`      // Title color
	Playing    string `toml:"playing"`    // Status color while animating
	Stopped    string `toml:"stopped"`    // Status color while stopped
}

// KeyBindings represents configurable keyboard shortcuts
type KeyBindings struct {
	Quit      []string `toml:"quit"`
	Toggle    string   `toml:"toggle"`
	NextColor string   `toml:"next_color"`
	MoreBars  []string `toml:"more_bars"`
	FewerBars []string `toml:"fewer_bars"`
}
