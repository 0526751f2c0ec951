// Package config handles configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/wavemesh/pkg/math"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Sculpt   SculptConfig   `yaml:"sculpt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	MSAA       int    `yaml:"msaa"`
	Background uint32 `yaml:"background"` // 0xRRGGBB

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig selects and tunes the demo scene.
type SceneConfig struct {
	Preset string `yaml:"preset"`

	// Workers per vertex pass; 0 selects GOMAXPROCS.
	Workers int `yaml:"workers"`

	// NormalMode overrides the preset: "analytic" or "recompute".
	// Empty keeps the preset's choice.
	NormalMode string `yaml:"normal_mode"`

	// LegacyRotation applies the full-turn normal rotation on spheres.
	LegacyRotation bool `yaml:"legacy_rotation"`

	Wave WaveConfig `yaml:"wave"`
}

// WaveConfig overrides preset wave parameters. Zero keeps the preset value.
type WaveConfig struct {
	Scale   float64 `yaml:"scale"`
	Damping float64 `yaml:"damping"`
	Divisor float64 `yaml:"divisor"`
}

// SculptConfig holds terrain editing settings.
type SculptConfig struct {
	Radius float32 `yaml:"radius"`
	Axis   string  `yaml:"axis"` // Local elevation axis: x, y or z
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
			Background: 0xa8def0,

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Preset: "sine-wave-plane",
		},
		Sculpt: SculptConfig{
			Radius: 10,
			Axis:   "z",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges that the loader cannot enforce.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.MSAA < 0 {
		return fmt.Errorf("graphics: msaa must not be negative, got %d", c.Graphics.MSAA)
	}
	if c.Scene.Preset == "" {
		return fmt.Errorf("scene: preset is required")
	}
	if c.Scene.Workers < 0 {
		return fmt.Errorf("scene: workers must not be negative, got %d", c.Scene.Workers)
	}
	switch c.Scene.NormalMode {
	case "", "analytic", "recompute":
	default:
		return fmt.Errorf("scene: unknown normal_mode %q", c.Scene.NormalMode)
	}
	if c.Scene.Wave.Divisor < 0 {
		return fmt.Errorf("scene: wave divisor must not be negative, got %v", c.Scene.Wave.Divisor)
	}
	if c.Sculpt.Radius <= 0 {
		return fmt.Errorf("sculpt: radius must be positive, got %v", c.Sculpt.Radius)
	}
	if _, err := math.ParseAxis(c.Sculpt.Axis); err != nil {
		return fmt.Errorf("sculpt: %w", err)
	}
	return nil
}
