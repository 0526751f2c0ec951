package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/wavemesh/pkg/math"
)

// OrbitCamera orbits a Perspective camera around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	cam *Perspective
}

// NewOrbitCamera derives orbit coordinates from the camera's current eye
// and target, so attaching controls does not move the view.
func NewOrbitCamera(cam *Perspective) *OrbitCamera {
	o := &OrbitCamera{
		Center:          cam.Target(),
		MinDistance:     1.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		cam:             cam,
	}

	offset := cam.Eye().Sub(o.Center)
	o.Distance = offset.Length()
	if o.Distance > 0 {
		o.RotationX = math32.Asin(offset.Y / o.Distance)
		o.RotationY = math32.Atan2(offset.X, offset.Z)
	}
	if o.Distance > o.MaxDistance {
		o.MaxDistance = o.Distance
	}
	return o
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * math32.Cos(c.RotationX) * math32.Sin(c.RotationY)
	y := c.Distance * math32.Sin(c.RotationX)
	z := c.Distance * math32.Cos(c.RotationX) * math32.Cos(c.RotationY)

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
	c.apply()
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
	c.apply()
}

// HandleMovement pans the center point on the ground plane.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	dirX := math32.Sin(c.RotationY)
	dirZ := math32.Cos(c.RotationY)
	rightX := math32.Cos(c.RotationY)
	rightZ := -math32.Sin(c.RotationY)

	// Negate forward so it moves "into" the scene
	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
	c.Center.Y += up * speed
	c.apply()
}

func (c *OrbitCamera) apply() {
	c.cam.LookFrom(c.Position(), c.Center)
}
