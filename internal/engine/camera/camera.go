// Package camera provides the perspective camera and orbit controls.
package camera

import (
	"github.com/Faultbox/wavemesh/internal/engine/picking"
	"github.com/Faultbox/wavemesh/pkg/math"
)

// DegToRad converts degrees to radians.
const DegToRad = 3.14159265358979323846 / 180

// Perspective is a pinhole camera looking from Eye at Target.
type Perspective struct {
	FovY float32 // Vertical field of view, radians
	Near float32
	Far  float32

	aspect float32
	eye    math.Vec3
	target math.Vec3
	up     math.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
// fovDeg is the vertical field of view in degrees.
func NewPerspective(fovDeg, aspect, near, far float32) *Perspective {
	if aspect <= 0 {
		aspect = 1
	}
	return &Perspective{
		FovY:   fovDeg * DegToRad,
		Near:   near,
		Far:    far,
		aspect: aspect,
		target: math.Vec3{Z: -1},
		up:     math.Vec3{Y: 1},
	}
}

// LookFrom places the camera at eye looking at target.
func (c *Perspective) LookFrom(eye, target math.Vec3) {
	c.eye = eye
	c.target = target
}

// Eye returns the camera position.
func (c *Perspective) Eye() math.Vec3 { return c.eye }

// Target returns the point the camera looks at.
func (c *Perspective) Target() math.Vec3 { return c.target }

// Aspect returns width / height.
func (c *Perspective) Aspect() float32 { return c.aspect }

// SetAspect updates the aspect ratio. Non-positive values are ignored.
func (c *Perspective) SetAspect(aspect float32) {
	if aspect > 0 && math.IsFinite(aspect) {
		c.aspect = aspect
	}
}

// SetViewport updates the aspect ratio from a drawable size in pixels.
// A minimized window (zero height) keeps the previous aspect.
func (c *Perspective) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

// Projection returns the projection matrix.
func (c *Perspective) Projection() math.Mat4 {
	return math.Perspective(c.FovY, c.aspect, c.Near, c.Far)
}

// View returns the view matrix.
func (c *Perspective) View() math.Mat4 {
	return math.LookAt(c.eye, c.target, c.up)
}

// ViewProjection returns Projection * View.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.Projection().Mul(c.View())
}

// RayFromNDC returns the world-space ray through normalized device
// coordinates (x, y), starting on the near plane.
func (c *Perspective) RayFromNDC(x, y float32) picking.Ray {
	return picking.RayFromNDC(x, y, c.ViewProjection().Inverse())
}
