// Package app runs the window, the frame loop and input dispatch for one
// scene rig.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/config"
	"github.com/Faultbox/wavemesh/internal/engine/debug"
	"github.com/Faultbox/wavemesh/internal/engine/input"
	"github.com/Faultbox/wavemesh/internal/engine/lighting"
	"github.com/Faultbox/wavemesh/internal/engine/renderer"
	"github.com/Faultbox/wavemesh/internal/engine/window"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/scene"
)

// App is the main application instance.
type App struct {
	cfg      *config.Config
	rig      *scene.Rig
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	handler  *handler
	shots    *debug.Screenshots
	log      *zap.Logger
}

// New opens the window and uploads the rig's mesh.
func New(cfg *config.Config, rig *scene.Rig) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("preset", rig.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg, rig: rig, log: log}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      "wavemesh - " + rig.Name,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: lighting.RGB(cfg.Graphics.Background),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := a.renderer.AddMesh(rig.Mesh, rig.Color); err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.shots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, rig.Name)
	ww, wh := a.window.GetSize()
	a.handler = newHandler(rig, ww, wh, func(int, int) {
		a.renderer.Resize(a.window.DrawableSize())
	}, log)

	log.Info("initialized")
	return a, nil
}

// Run starts the frame loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	skipped := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			break
		}
		for _, event := range a.input.Events() {
			if !a.handler.handle(event) {
				a.running = false
			}
		}

		// 2. Advance the animation. A rejected frame keeps the last good
		// buffers on screen.
		if err := a.rig.Update(); err != nil {
			skipped++
			a.log.Debug("frame skipped", zap.Error(err))
		}

		// 3. Render
		a.renderer.Sync()
		a.renderer.Begin()
		a.renderer.Draw(a.rig.Camera.ViewProjection(), a.rig.Lights)
		a.renderer.End()
		if a.handler.takeScreenshot() {
			a.saveScreenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("skipped", skipped),
				zap.Duration("dt", dt),
				zap.Int("clicks", a.handler.clicks),
				zap.Int("sculpts", a.handler.sculpts),
			)
			a.window.SetTitle(fmt.Sprintf("wavemesh - %s - %d fps", a.rig.Name, frameCount))
			frameCount, skipped = 0, 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.Save(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL and window resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
