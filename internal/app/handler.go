package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/engine/camera"
	"github.com/Faultbox/wavemesh/internal/engine/input"
	"github.com/Faultbox/wavemesh/internal/scene"
	"github.com/Faultbox/wavemesh/internal/sculpt"
)

// handler applies input events to the scene. It holds no GL state so it can
// run without a window.
type handler struct {
	rig      *scene.Rig
	orbit    *camera.OrbitCamera
	viewport sculpt.Viewport // Window size in pointer coordinates
	onResize func(width, height int)
	log      *zap.Logger

	clicks     int
	sculpts    int
	screenshot bool
}

func newHandler(rig *scene.Rig, width, height int, onResize func(int, int), log *zap.Logger) *handler {
	rig.Camera.SetViewport(width, height)
	return &handler{
		rig:      rig,
		orbit:    camera.NewOrbitCamera(rig.Camera),
		viewport: sculpt.Viewport{Width: float32(width), Height: float32(height)},
		onResize: onResize,
		log:      log,
	}
}

// handle applies one event and reports whether the app should keep running.
func (h *handler) handle(ev input.Event) bool {
	switch ev.Type {
	case input.EventQuit:
		return false

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			return false
		case sdl.SCANCODE_F12:
			h.screenshot = true
		case sdl.SCANCODE_W, sdl.SCANCODE_UP:
			h.orbit.HandleMovement(1, 0, 0)
		case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
			h.orbit.HandleMovement(-1, 0, 0)
		case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
			h.orbit.HandleMovement(0, -1, 0)
		case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
			h.orbit.HandleMovement(0, 1, 0)
		}

	case input.EventWindowResize:
		h.resize(ev.Width, ev.Height)

	case input.EventDrag:
		h.orbit.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))

	case input.EventMouseWheel:
		h.orbit.HandleZoom(float32(ev.DeltaY))

	case input.EventClick:
		if ev.Button == sdl.BUTTON_LEFT {
			h.click(ev.MouseX, ev.MouseY)
		}
	}
	return true
}

func (h *handler) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	h.viewport = sculpt.Viewport{Width: float32(width), Height: float32(height)}
	h.rig.Camera.SetViewport(width, height)
	if h.onResize != nil {
		h.onResize(width, height)
	}
}

func (h *handler) click(x, y int) {
	h.clicks++
	if h.rig.Sculptor == nil {
		return
	}
	hit, err := h.rig.Sculptor.ApplyClick(float32(x), float32(y), h.viewport, h.rig.Camera, h.rig.Candidates())
	if err != nil {
		h.log.Debug("click ignored", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
		return
	}
	if hit {
		h.sculpts++
	}
}

// takeScreenshot reports and clears a pending screenshot request.
func (h *handler) takeScreenshot() bool {
	pending := h.screenshot
	h.screenshot = false
	return pending
}
