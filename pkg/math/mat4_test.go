package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	got := Translate(10, 20, 30).TransformDirection(Vec3{0, 1, 0})
	if got != (Vec3{0, 1, 0}) {
		t.Errorf("TransformDirection: got %v, want (0, 1, 0)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestComposeLaysPlaneFlat(t *testing.T) {
	// A plane rotated -90 degrees about X, pushed to z=-30: local +Z becomes world +Y.
	m := Compose(Vec3{0, 0, -30}, Vec3{X: -float32(math.Pi) / 2}, Vec3{1, 1, 1})

	up := m.TransformDirection(Vec3{0, 0, 1})
	if abs(up.X) > 0.001 || abs(up.Y-1) > 0.001 || abs(up.Z) > 0.001 {
		t.Errorf("local Z after compose: got %v, want (0, 1, 0)", up)
	}

	p := m.TransformVec3(Vec3{0, 10, 0})
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z+40) > 0.001 {
		t.Errorf("local (0,10,0) after compose: got %v, want (0, 0, -40)", p)
	}
}

func TestInverse(t *testing.T) {
	m := Compose(Vec3{3, -2, 5}, Vec3{0.3, 0.2, -0.1}, Vec3{2, 2, 2})
	got := m.Mul(m.Inverse())
	id := Identity()
	for i := range got {
		if abs(got[i]-id[i]) > 0.0001 {
			t.Fatalf("M * M^-1 element %d: got %f, want %f", i, got[i], id[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	eye := m.TransformVec3(Vec3{0, 0, 5})
	if eye.Length() > 0.0001 {
		t.Errorf("LookAt eye in view space: got %v, want origin", eye)
	}
	// The center sits in front of the camera on -Z.
	c := m.TransformVec3(Vec3{})
	if abs(c.Z+5) > 0.0001 {
		t.Errorf("LookAt center in view space: got %v, want (0, 0, -5)", c)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
