package deform

import (
	gomath "math"

	"github.com/Faultbox/wavemesh/pkg/math"
)

// Tangent1D reconstructs the normal of a single-sine surface from the
// derivative slope k = d·cos(xangle). The unit tangent is
// (1, k)/√(1+k²) and the stored normal is (tx, 0, -ty).
func Tangent1D(xangle, damping float64) math.Vec3 {
	k := damping * gomath.Cos(xangle)
	inv := 1 / gomath.Sqrt(1+k*k)
	return vec3(inv, 0, -k*inv)
}

// Combined2D reconstructs the normal of a two-axis surface from the slope
// along each axis: ks = d·cos(xangle), kc = d·sin(yangle). Each slope yields
// a unit tangent (t.x, t.y); the combined vector (tsx, tcx, tcy - tsy) is
// normalized.
func Combined2D(xangle, yangle, damping float64) math.Vec3 {
	tsx, tsy := unitTangent(damping * gomath.Cos(xangle))
	tcx, tcy := unitTangent(damping * gomath.Sin(yangle))

	x, y, z := tsx, tcx, -tsy+tcy
	l := gomath.Sqrt(x*x + y*y + z*z)
	return vec3(x/l, y/l, z/l)
}

// normalAt picks the reconstruction matching the wave variant.
func (w Wave) normalAt(xangle, yangle float64) math.Vec3 {
	if w.Variant == SineOnly {
		return Tangent1D(xangle, w.Damping)
	}
	return Combined2D(xangle, yangle, w.Damping)
}

func unitTangent(k float64) (x, y float64) {
	inv := 1 / gomath.Sqrt(1+k*k)
	return inv, k * inv
}

func vec3(x, y, z float64) math.Vec3 {
	return math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
}
