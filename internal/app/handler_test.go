package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/engine/input"
	"github.com/Faultbox/wavemesh/internal/scene"
)

func newTestHandler(t *testing.T, preset string) (*handler, *[][2]int) {
	t.Helper()
	rig, err := scene.Build(preset, scene.DefaultOptions())
	require.NoError(t, err)

	var resizes [][2]int
	h := newHandler(rig, 1600, 900, func(w, h int) {
		resizes = append(resizes, [2]int{w, h})
	}, zap.NewNop())
	return h, &resizes
}

func TestHandlerClickSculptsTerrain(t *testing.T) {
	h, _ := newTestHandler(t, "terrain-editor")
	before := append([]float32(nil), h.rig.Mesh.Positions...)

	assert.True(t, h.handle(input.Event{Type: input.EventClick, MouseX: 800, MouseY: 450, Button: sdl.BUTTON_LEFT}))
	assert.Equal(t, 1, h.clicks)
	assert.Equal(t, 1, h.sculpts)
	assert.NotEqual(t, before, h.rig.Mesh.Positions)

	positions, normals := h.rig.Mesh.TakeDirty()
	assert.True(t, positions)
	assert.True(t, normals)
}

func TestHandlerIgnoresOtherButtons(t *testing.T) {
	h, _ := newTestHandler(t, "terrain-editor")
	h.handle(input.Event{Type: input.EventClick, MouseX: 800, MouseY: 450, Button: sdl.BUTTON_RIGHT})
	assert.Zero(t, h.clicks)
	assert.Zero(t, h.sculpts)
}

func TestHandlerClickOnAnimatedScene(t *testing.T) {
	h, _ := newTestHandler(t, "sine-wave-plane")
	before := append([]float32(nil), h.rig.Mesh.Positions...)

	h.handle(input.Event{Type: input.EventClick, MouseX: 800, MouseY: 450, Button: sdl.BUTTON_LEFT})
	assert.Equal(t, 1, h.clicks)
	assert.Zero(t, h.sculpts)
	assert.Equal(t, before, h.rig.Mesh.Positions)
}

func TestHandlerResize(t *testing.T) {
	h, resizes := newTestHandler(t, "terrain-editor")
	before := append([]float32(nil), h.rig.Mesh.Positions...)
	eye := h.rig.Camera.Eye()

	h.handle(input.Event{Type: input.EventWindowResize, Width: 800, Height: 800})
	assert.Equal(t, [][2]int{{800, 800}}, *resizes)
	assert.InDelta(t, 1, h.rig.Camera.Aspect(), 1e-6)
	assert.Equal(t, float32(800), h.viewport.Width)
	assert.Equal(t, eye, h.rig.Camera.Eye())
	assert.Equal(t, before, h.rig.Mesh.Positions)

	// Minimized windows report a zero size.
	h.handle(input.Event{Type: input.EventWindowResize, Width: 800, Height: 0})
	assert.Len(t, *resizes, 1)
	assert.InDelta(t, 1, h.rig.Camera.Aspect(), 1e-6)
}

func TestHandlerOrbit(t *testing.T) {
	h, _ := newTestHandler(t, "sphere-waves")
	eye := h.rig.Camera.Eye()
	target := h.rig.Camera.Target()

	h.handle(input.Event{Type: input.EventDrag, DeltaX: 40, DeltaY: 10})
	assert.NotEqual(t, eye, h.rig.Camera.Eye())
	assert.Equal(t, target, h.rig.Camera.Target())

	d := h.rig.Camera.Eye().Distance(target)
	h.handle(input.Event{Type: input.EventMouseWheel, DeltaY: 1})
	assert.Less(t, h.rig.Camera.Eye().Distance(target), d)

	h.handle(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_D})
	assert.NotEqual(t, target, h.rig.Camera.Target())
}

func TestHandlerScreenshotRequest(t *testing.T) {
	h, _ := newTestHandler(t, "sine-wave-plane")
	assert.False(t, h.takeScreenshot())
	h.handle(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_F12})
	assert.True(t, h.takeScreenshot())
	assert.False(t, h.takeScreenshot())
}

func TestHandlerQuit(t *testing.T) {
	h, _ := newTestHandler(t, "water-wave-plane")
	assert.True(t, h.handle(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_SPACE}))
	assert.False(t, h.handle(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_ESCAPE}))
	assert.False(t, h.handle(input.Event{Type: input.EventQuit}))
}
