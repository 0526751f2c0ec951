package picking

import (
	gomath "math"

	"github.com/Faultbox/wavemesh/internal/mesh"
	"github.com/Faultbox/wavemesh/pkg/math"
)

// Target is a pickable triangle mesh.
type Target interface {
	VertexCount() int
	Position(i int) math.Vec3
	TriangleIndices() []uint32
	LocalToWorld() math.Mat4
	LocalBounds() mesh.Bounds
}

// Hit is the nearest intersection of a ray with a set of targets.
type Hit struct {
	Index    int       // Position of the hit target in the candidate slice
	Point    math.Vec3 // World-space hit point
	Distance float32   // Distance along the ray
}

// NearestHit finds the closest triangle hit across all targets.
type NearestHit struct{}

// Nearest returns the closest hit, or false if the ray misses every target.
func (NearestHit) Nearest(r Ray, targets []Target) (Hit, bool) {
	best := Hit{Index: -1, Distance: gomath.MaxFloat32}

	for ti, target := range targets {
		if target == nil {
			continue
		}
		toWorld := target.LocalToWorld()

		// Cheap reject on the world-space box before walking triangles.
		boxT, ok := r.IntersectAABB(TransformAABB(target.LocalBounds(), toWorld))
		if !ok || boxT > best.Distance {
			continue
		}

		idx := target.TriangleIndices()
		for i := 0; i+2 < len(idx); i += 3 {
			a := toWorld.TransformVec3(target.Position(int(idx[i])))
			b := toWorld.TransformVec3(target.Position(int(idx[i+1])))
			c := toWorld.TransformVec3(target.Position(int(idx[i+2])))
			if t, hit := r.IntersectTriangle(a, b, c); hit && t < best.Distance {
				best = Hit{Index: ti, Point: r.At(t), Distance: t}
			}
		}
	}

	return best, best.Index >= 0
}
