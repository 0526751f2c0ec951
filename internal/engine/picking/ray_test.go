package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/wavemesh/internal/mesh"
	"github.com/Faultbox/wavemesh/pkg/math"
)

func TestPixelToNDC(t *testing.T) {
	tests := []struct {
		px, py       float32
		wantX, wantY float32
	}{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
	}
	for _, tt := range tests {
		x, y := PixelToNDC(tt.px, tt.py, 800, 600)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("PixelToNDC(%v, %v) = (%v, %v), want (%v, %v)", tt.px, tt.py, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestRayFromNDCCenter(t *testing.T) {
	eye := math.Vec3{X: 0, Y: 10, Z: 0}
	view := math.LookAt(eye, math.Vec3{}, math.Vec3{Z: -1})
	proj := math.Perspective(float32(gomath.Pi/4), 1, 0.1, 100)
	r := RayFromNDC(0, 0, proj.Mul(view).Inverse())

	if r.Direction.Distance(math.Vec3{Y: -1}) > 1e-3 {
		t.Errorf("center ray direction = %v, want (0, -1, 0)", r.Direction)
	}
	if r.Origin.Distance(math.Vec3{Y: 9.9}) > 1e-2 {
		t.Errorf("center ray origin = %v, want near plane at y=9.9", r.Origin)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	hitRay := Ray{Origin: math.Vec3{Z: -5}, Direction: math.Vec3{Z: 1}}
	if tt, ok := hitRay.IntersectAABB(box); !ok || tt != 4 {
		t.Errorf("IntersectAABB hit = (%v, %v), want (4, true)", tt, ok)
	}

	missRay := Ray{Origin: math.Vec3{X: 5, Z: -5}, Direction: math.Vec3{Z: 1}}
	if _, ok := missRay.IntersectAABB(box); ok {
		t.Error("IntersectAABB should miss a parallel offset ray")
	}

	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	if tt, ok := inside.IntersectAABB(box); !ok || tt != 1 {
		t.Errorf("IntersectAABB from inside = (%v, %v), want exit (1, true)", tt, ok)
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{X: -1, Y: 0, Z: -1}
	b := math.Vec3{X: 1, Y: 0, Z: -1}
	c := math.Vec3{X: 0, Y: 0, Z: 1}

	down := Ray{Origin: math.Vec3{Y: 3}, Direction: math.Vec3{Y: -1}}
	if tt, ok := down.IntersectTriangle(a, b, c); !ok || gomath.Abs(float64(tt-3)) > 1e-6 {
		t.Errorf("IntersectTriangle = (%v, %v), want (3, true)", tt, ok)
	}

	up := Ray{Origin: math.Vec3{Y: 3}, Direction: math.Vec3{Y: 1}}
	if _, ok := up.IntersectTriangle(a, b, c); ok {
		t.Error("triangle behind the ray should not hit")
	}

	outside := Ray{Origin: math.Vec3{X: 5, Y: 3}, Direction: math.Vec3{Y: -1}}
	if _, ok := outside.IntersectTriangle(a, b, c); ok {
		t.Error("ray outside the triangle should not hit")
	}
}

func TestNearestHitTransformedPlane(t *testing.T) {
	// Terrain-editor style plane: laid flat and pushed to z=-30.
	near, _ := mesh.NewPlane(10, 10, 10, 10)
	near.Transform = math.Compose(math.Vec3{Z: -30}, math.Vec3{X: -float32(gomath.Pi) / 2}, math.Vec3{X: 1, Y: 1, Z: 1})

	below, _ := mesh.NewPlane(10, 10, 2, 2)
	below.Transform = math.Compose(math.Vec3{Y: -5, Z: -30}, math.Vec3{X: -float32(gomath.Pi) / 2}, math.Vec3{X: 1, Y: 1, Z: 1})

	r := Ray{Origin: math.Vec3{X: 1.5, Y: 20, Z: -32.3}, Direction: math.Vec3{Y: -1}}
	hit, ok := NearestHit{}.Nearest(r, []Target{below, near})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Index != 1 {
		t.Errorf("hit.Index = %d, want 1 (upper plane)", hit.Index)
	}
	if hit.Point.Distance(math.Vec3{X: 1.5, Y: 0, Z: -32.3}) > 1e-3 {
		t.Errorf("hit.Point = %v, want (1.5, 0, -32.3)", hit.Point)
	}
	if gomath.Abs(float64(hit.Distance-20)) > 1e-3 {
		t.Errorf("hit.Distance = %v, want 20", hit.Distance)
	}
}

func TestNearestHitMiss(t *testing.T) {
	p, _ := mesh.NewPlane(10, 10, 4, 4)
	r := Ray{Origin: math.Vec3{X: 50, Z: 5}, Direction: math.Vec3{Z: -1}}
	if _, ok := (NearestHit{}).Nearest(r, []Target{p}); ok {
		t.Error("ray beside the plane should miss")
	}
	if _, ok := (NearestHit{}).Nearest(r, nil); ok {
		t.Error("no targets should miss")
	}
}
