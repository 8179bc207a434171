package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/haryoiro/playingicon/internal/config"
	"github.com/haryoiro/playingicon/internal/constants"
	"github.com/haryoiro/playingicon/internal/logger"
	"github.com/haryoiro/playingicon/internal/structures"
	"github.com/haryoiro/playingicon/internal/systems"
	"github.com/haryoiro/playingicon/internal/ui"
	"github.com/haryoiro/playingicon/internal/version"
)

const banner = `
 ▂ ▆ ▄ █  playingicon
 █ █ █ █  animated equalizer indicator`

func main() {
	// Parse command line flags
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showFiles   = flag.Bool("files", false, "Show file locations")
		showVersion = flag.Bool("version", false, "Show version")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
		playPath    = flag.String("play", "", "Audio file (mp3 or wav) that drives the animation")
		bars        = flag.Int("bars", 0, "Number of bars (overrides config)")
		color       = flag.String("color", "", "Bar color, e.g. #FF0000 (overrides config)")
		delay       = flag.Duration("delay", 0, "Frame delay, e.g. 16ms (overrides config)")
		ratio       = flag.Float64("ratio", 0, "Gap to bar width ratio (overrides config)")
	)

	flag.Parse()

	if *showHelp {
		fmt.Println(banner)
		fmt.Println("\nUsage: playingicon [OPTIONS]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		fmt.Println("\nKeyboard shortcuts:")
		fmt.Println("    Space       - Start/stop (pause audio with --play)")
		fmt.Println("    c           - Next palette color")
		fmt.Println("    + or =      - More bars")
		fmt.Println("    - or _      - Fewer bars")
		fmt.Println("    q/Ctrl+C/D  - Quit application")
		return
	}

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	configDir, dataDir := getDirectories()
	logFile := filepath.Join(dataDir, constants.LogFileName)
	configPath := filepath.Join(configDir, constants.ConfigFileName)

	if *showFiles {
		fmt.Printf("# %s file locations:\n", constants.AppName)
		fmt.Printf("  Config: %s\n", configPath)
		fmt.Printf("  Logs:   %s\n", logFile)
		return
	}

	if err := initLogging(logFile, *debugMode); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseLogger()

	cfg := loadConfiguration(configPath)

	// Only flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bars":
			cfg.Icon.BarCount = *bars
		case "color":
			cfg.Icon.Color = *color
		case "delay":
			cfg.Icon.FrameDelayMs = delayMillis(*delay)
		case "ratio":
			cfg.Icon.SpaceRatio = *ratio
		default:
			return
		}
		logger.Debug("Flag --%s overrides config: %s", f.Name, f.Value)
	})

	appSystems := systems.New(cfg)
	if err := appSystems.Start(*playPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		logger.Fatal("Failed to start systems: %v", err)
	}
	defer func() {
		logger.Debug("Stopping all application systems...")
		if err := appSystems.Stop(); err != nil {
			logger.Warn("Failed to stop systems: %v", err)
		}
	}()

	logger.Debug("Starting UI")
	if err := ui.RunSimple(appSystems, cfg); err != nil {
		logger.Fatal("Application error: %v", err)
	}

	logger.Info("%s shutdown complete", constants.AppName)
}

// delayMillis converts --delay to the config's whole milliseconds, rounding
// to the nearest. Positive delays under a millisecond become 1ms.
func delayMillis(d time.Duration) int {
	if d <= 0 {
		logger.Warn("Frame delay %v is not positive, the default delay is used", d)
		return 0
	}
	ms := int((d + time.Millisecond/2) / time.Millisecond)
	if ms < 1 {
		logger.Warn("Frame delay %v is below 1ms, using 1ms", d)
		return 1
	}
	return ms
}

func getDirectories() (config, data string) {
	// Use XDG Base Directory specification
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		config = filepath.Join(xdgConfig, constants.AppName)
	} else if home, err := os.UserHomeDir(); err == nil {
		config = filepath.Join(home, ".config", constants.AppName)
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		data = filepath.Join(xdgData, constants.AppName)
	} else if home, err := os.UserHomeDir(); err == nil {
		data = filepath.Join(home, ".local", "share", constants.AppName)
	}

	os.MkdirAll(config, 0755)
	os.MkdirAll(data, 0755)

	return
}

func initLogging(logFile string, debugMode bool) error {
	logLevel := logger.INFO
	if debugMode {
		logLevel = logger.DEBUG
	}

	if err := logger.InitLogger(logFile, logLevel, debugMode); err != nil {
		return err
	}

	logger.Info("Logger initialized with debug mode: %v", debugMode)
	return nil
}

func loadConfiguration(configPath string) *structures.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("Failed to load config, using defaults: %v", err)
		cfg = config.Default()

		// Save default config for future use
		if err := config.Save(cfg, configPath); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		} else {
			logger.Info("Created default config at: %s", configPath)
		}
	} else {
		logger.Debug("Configuration loaded successfully from: %s", configPath)
	}
	return cfg
}
