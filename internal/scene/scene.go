// Package scene builds ready-to-run demo rigs: a mesh, its transform, a
// camera, lights and either a deformer or a sculptor.
package scene

import (
	"fmt"
	gomath "math"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/config"
	"github.com/Faultbox/wavemesh/internal/deform"
	"github.com/Faultbox/wavemesh/internal/engine/camera"
	"github.com/Faultbox/wavemesh/internal/engine/lighting"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/mesh"
	"github.com/Faultbox/wavemesh/internal/sculpt"
	"github.com/Faultbox/wavemesh/pkg/math"
)

// Camera defaults shared by every preset.
const (
	FovDeg = 45
	Near   = 0.1
	Far    = 1000
)

// Surface colors.
const (
	ColorClay  = 0xf2a23a
	ColorWater = 0x3f8fc9
	ColorSoil  = 0x7a6a4f
)

// Options tune a preset without changing what it is.
type Options struct {
	Aspect         float32
	Workers        int
	NormalMode     string // "", "analytic" or "recompute"
	LegacyRotation bool
	Wave           config.WaveConfig
	Sculpt         sculpt.Config
}

// DefaultOptions returns options that keep every preset at its reference
// values.
func DefaultOptions() Options {
	return Options{Aspect: 16.0 / 9.0, Sculpt: sculpt.DefaultConfig()}
}

// OptionsFromConfig maps the scene and sculpt config sections to Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	axis, err := math.ParseAxis(cfg.Sculpt.Axis)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Aspect:         float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		Workers:        cfg.Scene.Workers,
		NormalMode:     cfg.Scene.NormalMode,
		LegacyRotation: cfg.Scene.LegacyRotation,
		Wave:           cfg.Scene.Wave,
		Sculpt: sculpt.Config{
			Radius:  cfg.Sculpt.Radius,
			Axis:    axis,
			Workers: cfg.Scene.Workers,
		},
	}, nil
}

// Rig is a built scene. Exactly one of Deformer and Sculptor is set.
type Rig struct {
	Name     string
	Mesh     *mesh.Mesh
	Color    [3]float32
	Camera   *camera.Perspective
	Lights   lighting.Rig
	Deformer *deform.Deformer
	Sculptor *sculpt.Sculptor
}

// Animated reports whether the rig deforms every frame.
func (r *Rig) Animated() bool {
	return r.Deformer != nil
}

// Update advances the animation to the clock's current phase. Sculpted rigs
// have nothing to do between clicks.
func (r *Rig) Update() error {
	if r.Deformer == nil {
		return nil
	}
	return r.Deformer.Tick()
}

// Candidates returns the meshes a click may sculpt.
func (r *Rig) Candidates() []sculpt.Mesh {
	return []sculpt.Mesh{r.Mesh}
}

type preset struct {
	description string
	build       func(opts Options) (*Rig, error)
}

var presets = map[string]preset{
	"sine-wave-plane": {
		description: "single sine wave with analytic normals",
		build: func(opts Options) (*Rig, error) {
			return animatedPlane("sine-wave-plane", deform.SineOnlyWave(), deform.DivisorSine,
				deform.NormalAnalytic, ColorClay, math.Vec3{Z: -30}, opts)
		},
	},
	"sine-cos-wave-plane": {
		description: "sine plus cosine wave with recomputed normals",
		build: func(opts Options) (*Rig, error) {
			return animatedPlane("sine-cos-wave-plane", deform.SineCosineWave(), deform.DivisorSine,
				deform.NormalRecompute, ColorClay, math.Vec3{Z: -20}, opts)
		},
	},
	"water-wave-plane": {
		description: "damped sine plus cosine water with analytic normals",
		build: func(opts Options) (*Rig, error) {
			return animatedPlane("water-wave-plane", deform.DampedPlanarWave(), deform.DivisorWater,
				deform.NormalAnalytic, ColorWater, math.Vec3{Z: -20}, opts)
		},
	},
	"sphere-waves": {
		description: "UV-driven waves displacing a sphere along its normals",
		build:       sphereWaves,
	},
	"terrain-editor": {
		description: "click to raise terrain",
		build:       terrainEditor,
	},
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a preset.
func Describe(name string) string {
	return presets[name].description
}

// Build constructs the named preset.
func Build(name string, opts Options) (*Rig, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene preset %q (have %v)", name, Presets())
	}
	rig, err := p.build(opts)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}

	logger.Named("scene").Info("scene built",
		zap.String("preset", name),
		zap.Int("vertices", rig.Mesh.VertexCount()),
		zap.Bool("animated", rig.Animated()))
	return rig, nil
}

func animatedPlane(name string, wave deform.Wave, divisor float64, mode deform.NormalMode,
	color uint32, lightTarget math.Vec3, opts Options) (*Rig, error) {
	m, err := mesh.NewPlane(30, 30, 200, 200)
	if err != nil {
		return nil, err
	}
	m.Name = name
	m.Transform = math.Compose(math.Vec3{Z: -30}, math.Vec3{X: -gomath.Pi / 2}, math.Vec3{X: 1, Y: 1, Z: 1})

	wave = applyWave(wave, opts.Wave)
	d, err := newDeformer(m, deform.PlanarStrategy{Wave: wave}, divisor, mode, opts)
	if err != nil {
		return nil, err
	}

	return &Rig{
		Name:     name,
		Mesh:     m,
		Color:    lighting.RGB(color),
		Camera:   waveCamera(opts),
		Lights:   lighting.DefaultRig(math.Vec3{X: 20, Y: 21, Z: -30}, lightTarget),
		Deformer: d,
	}, nil
}

func sphereWaves(opts Options) (*Rig, error) {
	m, err := mesh.NewSphere(6, 128, 128)
	if err != nil {
		return nil, err
	}
	m.Name = "sphere-waves"
	m.Transform = math.Compose(math.Vec3{Z: -30}, math.Vec3{X: -gomath.Pi / 4}, math.Vec3{X: 1, Y: 1, Z: 1})

	strategy := deform.SphericalStrategy{
		Wave:           applyWave(deform.DampedSphericalWave(), opts.Wave),
		LegacyRotation: opts.LegacyRotation,
	}
	d, err := newDeformer(m, strategy, deform.DivisorSphere, deform.NormalRecompute, opts)
	if err != nil {
		return nil, err
	}

	return &Rig{
		Name:     m.Name,
		Mesh:     m,
		Color:    lighting.RGB(ColorWater),
		Camera:   waveCamera(opts),
		Lights:   lighting.DefaultRig(math.Vec3{X: 20, Y: 21, Z: -25}, math.Vec3{Z: -30}),
		Deformer: d,
	}, nil
}

func terrainEditor(opts Options) (*Rig, error) {
	m, err := mesh.NewPlane(100, 100, 300, 300)
	if err != nil {
		return nil, err
	}
	m.Name = "terrain-editor"
	m.Transform = math.Compose(math.Vec3{Z: -30}, math.Vec3{X: -gomath.Pi / 2}, math.Vec3{X: 1, Y: 1, Z: 1})

	s, err := sculpt.New(opts.Sculpt, nil)
	if err != nil {
		return nil, err
	}

	cam := camera.NewPerspective(FovDeg, opts.Aspect, Near, Far)
	cam.LookFrom(math.Vec3{X: -50, Y: 25, Z: 50}, math.Vec3{Z: -25})

	return &Rig{
		Name:     m.Name,
		Mesh:     m,
		Color:    lighting.RGB(ColorSoil),
		Camera:   cam,
		Lights:   lighting.DefaultRig(math.Vec3{X: 40, Y: 61, Z: -40}, math.Vec3{Z: -20}),
		Sculptor: s,
	}, nil
}

func newDeformer(m *mesh.Mesh, s deform.Strategy, divisor float64, mode deform.NormalMode, opts Options) (*deform.Deformer, error) {
	if opts.Wave.Divisor > 0 {
		divisor = opts.Wave.Divisor
	}
	clock, err := deform.NewPhaseClock(divisor)
	if err != nil {
		return nil, err
	}
	switch opts.NormalMode {
	case "":
	case "analytic":
		mode = deform.NormalAnalytic
	case "recompute":
		mode = deform.NormalRecompute
	default:
		return nil, fmt.Errorf("unknown normal mode %q", opts.NormalMode)
	}
	return deform.New(m, s,
		deform.WithClock(clock),
		deform.WithNormalMode(mode),
		deform.WithWorkers(opts.Workers))
}

func applyWave(w deform.Wave, o config.WaveConfig) deform.Wave {
	if o.Scale != 0 {
		w.Scale = o.Scale
	}
	if o.Damping != 0 {
		w.Damping = o.Damping
	}
	return w
}

func waveCamera(opts Options) *camera.Perspective {
	cam := camera.NewPerspective(FovDeg, opts.Aspect, Near, Far)
	cam.LookFrom(math.Vec3{Y: 5}, math.Vec3{Z: -40})
	return cam
}
