package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestApplyAxisAngleQuarterTurn(t *testing.T) {
	// (1,0,0) around +Z by 90 degrees lands on (0,1,0)
	got := Vec3{1, 0, 0}.ApplyAxisAngle(Vec3{0, 0, 1}, float32(math.Pi/2))
	if abs(got.X) > 0.0001 || abs(got.Y-1) > 0.0001 || abs(got.Z) > 0.0001 {
		t.Errorf("ApplyAxisAngle 90 about Z: got %v, want (0, 1, 0)", got)
	}
}

func TestApplyAxisAngleFullTurn(t *testing.T) {
	v := Vec3{0.3, -0.5, 0.8}.Normalize()
	axis := Vec3{0.7, 0.1, -0.2}.Normalize()
	got := v.ApplyAxisAngle(axis, float32(2*math.Pi))
	if got.Distance(v) > 0.0001 {
		t.Errorf("full turn should be identity: got %v, want %v", got, v)
	}
}

func TestQuatMulComposes(t *testing.T) {
	z := Vec3{0, 0, 1}
	q := QuatFromAxisAngle(z, float32(math.Pi/4))
	got := q.Mul(q).Rotate(Vec3{1, 0, 0})
	if abs(got.X) > 0.0001 || abs(got.Y-1) > 0.0001 {
		t.Errorf("two 45 degree turns: got %v, want (0, 1, 0)", got)
	}
}
