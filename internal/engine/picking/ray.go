// Package picking provides ray casting against triangle meshes.
package picking

import (
	gomath "math"

	"github.com/Faultbox/wavemesh/internal/mesh"
	"github.com/Faultbox/wavemesh/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// PixelToNDC converts pixel coordinates to normalized device coordinates
// (-1..1, Y up).
func PixelToNDC(px, py, viewportW, viewportH float32) (x, y float32) {
	x = (px/viewportW)*2 - 1
	y = -(py/viewportH)*2 + 1
	return x, y
}

// RayFromNDC unprojects a normalized device coordinate into a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func RayFromNDC(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1, 1})

	// Perspective divide
	near := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	if nearWorld[3] != 0 {
		near = near.Scale(1 / nearWorld[3])
	}
	far := math.Vec3{X: farWorld[0], Y: farWorld[1], Z: farWorld[2]}
	if farWorld[3] != 0 {
		far = far.Scale(1 / farWorld[3])
	}

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance along the ray to triangle abc
// (Möller–Trumbore). Both faces count as hits.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (t float32, hit bool) {
	const eps = 1e-7

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -eps && det < eps {
		return 0, false // Ray parallel to triangle
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(q) * inv
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// TransformAABB transforms a local box by m and returns the world-space box
// enclosing its eight corners.
func TransformAABB(local mesh.Bounds, m math.Mat4) AABB {
	out := mesh.Bounds{
		Min: math.Vec3{X: gomath.MaxFloat32, Y: gomath.MaxFloat32, Z: gomath.MaxFloat32},
		Max: math.Vec3{X: -gomath.MaxFloat32, Y: -gomath.MaxFloat32, Z: -gomath.MaxFloat32},
	}
	for i := 0; i < 8; i++ {
		corner := local.Min
		if i&1 != 0 {
			corner.X = local.Max.X
		}
		if i&2 != 0 {
			corner.Y = local.Max.Y
		}
		if i&4 != 0 {
			corner.Z = local.Max.Z
		}
		out.Expand(m.TransformVec3(corner))
	}
	return AABB{Min: out.Min, Max: out.Max}
}
