package lighting

import (
	"testing"

	"github.com/Faultbox/wavemesh/pkg/math"
)

func TestRGB(t *testing.T) {
	got := RGB(0xa8def0)
	want := [3]float32{168.0 / 255, 222.0 / 255, 240.0 / 255}
	if got != want {
		t.Errorf("RGB(0xa8def0) = %v, want %v", got, want)
	}
	if RGB(0) != [3]float32{} {
		t.Errorf("RGB(0) = %v, want zero", RGB(0))
	}
}

func TestDirectionalFrom(t *testing.T) {
	d := DirectionalFrom(math.Vec3{Y: 10}, math.Vec3{}, 0xffffff, 1)
	if d.Direction != (math.Vec3{Y: 1}) {
		t.Errorf("Direction = %v, want +Y", d.Direction)
	}
	if d.Color != [3]float32{1, 1, 1} || d.Intensity != 1 {
		t.Errorf("Light = %+v, want white at 1", d.Light)
	}
}

func TestDefaultRig(t *testing.T) {
	r := DefaultRig(math.Vec3{X: 20, Y: 20, Z: -30}, math.Vec3{Z: -20})
	if r.Ambient.Intensity != 0.5 {
		t.Errorf("Ambient.Intensity = %v, want 0.5", r.Ambient.Intensity)
	}
	if l := r.Sun.Direction.Length(); l < 0.9999 || l > 1.0001 {
		t.Errorf("|Sun.Direction| = %v, want 1", l)
	}
}
