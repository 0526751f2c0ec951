package deform

import (
	"fmt"
	gomath "math"
)

// Variant selects the height-field formula.
type Variant int

const (
	// SineOnly: h = d·sin(u·s + t).
	SineOnly Variant = iota
	// SineCosine: h = d·(sin(u·s + t) + cos(v·s + t)), d = 1.
	SineCosine
	// DampedPlanar is SineCosine with d = 0.25.
	DampedPlanar
	// DampedSpherical is SineCosine over UVs with s = 16π and d = 0.2.
	DampedSpherical
)

var variantNames = map[Variant]string{
	SineOnly:        "sine",
	SineCosine:      "sine-cosine",
	DampedPlanar:    "damped-planar",
	DampedSpherical: "damped-spherical",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a variant name back to its value.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown wave variant %q", s)
}

// Reference damping amplitudes and the spherical UV scale.
const (
	DampingPlanar    = 0.25
	DampingSpherical = 0.2
	SphericalScale   = gomath.Pi * 16
)

// Wave is a height-field sampler. Coordinates are multiplied by Scale before
// the phase is added; Damping scales the resulting height. A Wave is a plain
// value: equal inputs always give equal outputs.
type Wave struct {
	Variant Variant
	Scale   float64
	Damping float64
}

// SineOnlyWave returns the single-sine plane wave.
func SineOnlyWave() Wave {
	return Wave{Variant: SineOnly, Scale: 1, Damping: 1}
}

// SineCosineWave returns the undamped two-axis wave.
func SineCosineWave() Wave {
	return Wave{Variant: SineCosine, Scale: 1, Damping: 1}
}

// DampedPlanarWave returns the damped two-axis water wave.
func DampedPlanarWave() Wave {
	return Wave{Variant: DampedPlanar, Scale: 1, Damping: DampingPlanar}
}

// DampedSphericalWave returns the UV-driven sphere wave.
func DampedSphericalWave() Wave {
	return Wave{Variant: DampedSpherical, Scale: SphericalScale, Damping: DampingSpherical}
}

// Validate rejects non-finite parameters.
func (w Wave) Validate() error {
	if !finite(w.Scale) || !finite(w.Damping) {
		return fmt.Errorf("wave %v: scale and damping must be finite (scale=%v, damping=%v)", w.Variant, w.Scale, w.Damping)
	}
	if _, ok := variantNames[w.Variant]; !ok {
		return fmt.Errorf("unknown wave variant %d", int(w.Variant))
	}
	return nil
}

// Angles returns the phase-shifted angles for coordinates (u, v) at phase t.
func (w Wave) Angles(u, v, t float64) (xangle, yangle float64) {
	return u*w.Scale + t, v*w.Scale + t
}

// Height returns the displacement at (u, v) and phase t.
func (w Wave) Height(u, v, t float64) float64 {
	return w.heightAt(w.Angles(u, v, t))
}

func (w Wave) heightAt(xangle, yangle float64) float64 {
	if w.Variant == SineOnly {
		return w.Damping * gomath.Sin(xangle)
	}
	return w.Damping * (gomath.Sin(xangle) + gomath.Cos(yangle))
}

func finite(f float64) bool {
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}
