package config

import "flag"

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagPreset         = flag.String("preset", "", "Scene preset to run")
	flagWindowed       = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen     = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth          = flag.Int("width", 0, "Window width")
	flagHeight         = flag.Int("height", 0, "Window height")
	flagWorkers        = flag.Int("workers", -1, "Goroutines per vertex pass (0 = GOMAXPROCS)")
	flagNormalMode     = flag.String("normals", "", "Normal mode override: analytic or recompute")
	flagLegacyRotation = flag.Bool("legacy-rotation", false, "Rotate sphere normals by a full turn")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPreset != "" {
		cfg.Scene.Preset = *flagPreset
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagWorkers >= 0 {
		cfg.Scene.Workers = *flagWorkers
	}
	if *flagNormalMode != "" {
		cfg.Scene.NormalMode = *flagNormalMode
	}
	if *flagLegacyRotation {
		cfg.Scene.LegacyRotation = true
	}
}
