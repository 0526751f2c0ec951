// Package main is the entry point for the wavemesh demo.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/app"
	"github.com/Faultbox/wavemesh/internal/config"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/scene"
)

var flagList = flag.Bool("list", false, "List scene presets and exit")

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if *flagList {
		for _, name := range scene.Presets() {
			fmt.Printf("%-20s %s\n", name, scene.Describe(name))
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wavemesh ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("wavemesh failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	opts, err := scene.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	rig, err := scene.Build(cfg.Scene.Preset, opts)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, rig)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run()
}
