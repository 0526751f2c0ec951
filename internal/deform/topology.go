package deform

import (
	gomath "math"

	"github.com/Faultbox/wavemesh/pkg/math"
)

// Topology says how a deformation reads and writes vertex data.
type Topology int

const (
	// Planar surfaces sample at live (x, y) and overwrite z with the height.
	Planar Topology = iota
	// Spherical surfaces sample at the vertex UV and displace the rest
	// position along the rest normal.
	Spherical
)

func (t Topology) String() string {
	switch t {
	case Planar:
		return "planar"
	case Spherical:
		return "spherical"
	default:
		return "unknown"
	}
}

// Vertex is everything a Strategy may read about one vertex.
type Vertex struct {
	Live         math.Vec3
	RestPosition math.Vec3
	RestNormal   math.Vec3
	UV           math.Vec2
}

// Strategy computes a deformed position and normal for one vertex.
// Implementations must be pure: equal inputs give equal outputs, and they are
// called concurrently.
type Strategy interface {
	Topology() Topology
	Validate() error
	Deform(v Vertex, phase float64) (position, normal math.Vec3)
}

// PlanarStrategy displaces a plane along its local z axis.
type PlanarStrategy struct {
	Wave Wave
}

// Topology implements Strategy.
func (PlanarStrategy) Topology() Topology { return Planar }

// Validate implements Strategy.
func (s PlanarStrategy) Validate() error { return s.Wave.Validate() }

// Deform implements Strategy.
func (s PlanarStrategy) Deform(v Vertex, phase float64) (math.Vec3, math.Vec3) {
	xangle, yangle := s.Wave.Angles(float64(v.Live.X), float64(v.Live.Y), phase)
	h := s.Wave.heightAt(xangle, yangle)
	pos := math.Vec3{X: v.Live.X, Y: v.Live.Y, Z: float32(h)}
	return pos, s.Wave.normalAt(xangle, yangle)
}

// SphericalStrategy displaces a sphere radially using its UV coordinates.
//
// The stored normal is the rest normal. With LegacyRotation set it is rotated
// by a full turn about the reconstructed tangent vector, which reproduces the
// float rounding of older renderers without changing the direction.
type SphericalStrategy struct {
	Wave           Wave
	LegacyRotation bool
}

// Topology implements Strategy.
func (SphericalStrategy) Topology() Topology { return Spherical }

// Validate implements Strategy.
func (s SphericalStrategy) Validate() error { return s.Wave.Validate() }

// Deform implements Strategy.
func (s SphericalStrategy) Deform(v Vertex, phase float64) (math.Vec3, math.Vec3) {
	xangle, yangle := s.Wave.Angles(float64(v.UV.X), float64(v.UV.Y), phase)
	h := s.Wave.heightAt(xangle, yangle)

	rp, rn := v.RestPosition, v.RestNormal
	pos := vec3(
		float64(rp.X)+float64(rn.X)*h,
		float64(rp.Y)+float64(rn.Y)*h,
		float64(rp.Z)+float64(rn.Z)*h,
	)
	if !s.LegacyRotation {
		return pos, rn
	}
	axis := Combined2D(xangle, yangle, s.Wave.Damping)
	return pos, rn.ApplyAxisAngle(axis, 2*gomath.Pi)
}
