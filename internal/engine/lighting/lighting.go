// Package lighting holds the ambient and directional light used by the
// mesh shader.
package lighting

import "github.com/Faultbox/wavemesh/pkg/math"

// Light is a colored light with an intensity multiplier.
type Light struct {
	Color     [3]float32 // RGB color (0-1 range)
	Intensity float32
}

// Directional is a light infinitely far away.
type Directional struct {
	Light
	Direction math.Vec3 // Normalized, pointing from the surface towards the light
}

// Rig is the full lighting setup of a scene.
type Rig struct {
	Ambient Light
	Sun     Directional
}

// RGB converts a 0xRRGGBB color to 0-1 components.
func RGB(hex uint32) [3]float32 {
	return [3]float32{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

// DirectionalFrom builds a directional light placed at position and aimed at
// target.
func DirectionalFrom(position, target math.Vec3, color uint32, intensity float32) Directional {
	return Directional{
		Light:     Light{Color: RGB(color), Intensity: intensity},
		Direction: position.Sub(target).Normalize(),
	}
}

// DefaultRig returns a half-strength white ambient plus a full-strength white
// sun at position aimed at target.
func DefaultRig(position, target math.Vec3) Rig {
	return Rig{
		Ambient: Light{Color: RGB(0xffffff), Intensity: 0.5},
		Sun:     DirectionalFrom(position, target, 0xffffff, 1.0),
	}
}
