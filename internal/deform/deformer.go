// Package deform animates mesh vertices with procedural height fields.
//
// A Deformer owns a Surface and a Strategy. Every Update evaluates the
// strategy for all vertices in parallel into scratch buffers and commits
// them only if every value is finite, so a frame is applied whole or not
// at all. After a commit the position and normal buffers are each marked
// dirty exactly once.
package deform

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/workpool"
	"github.com/Faultbox/wavemesh/pkg/math"
)

var (
	// ErrNonFinitePhase is returned when Update receives NaN or ±Inf.
	ErrNonFinitePhase = errors.New("non-finite phase")
	// ErrNonFiniteOutput is returned when a vertex evaluates to NaN or ±Inf.
	ErrNonFiniteOutput = errors.New("non-finite deformation output")
	// ErrNonFiniteRest is returned when the captured rest pose holds NaN or ±Inf.
	ErrNonFiniteRest = errors.New("non-finite rest pose")
	// ErrLengthMismatch is returned when surface buffers disagree with the rest pose.
	ErrLengthMismatch = errors.New("buffer length mismatch")
)

// Surface is the mutable geometry a Deformer writes to.
type Surface interface {
	VertexCount() int
	NormalCount() int
	UVCount() int
	Position(i int) math.Vec3
	SetPosition(i int, p math.Vec3)
	Normal(i int) math.Vec3
	SetNormal(i int, n math.Vec3)
	UV(i int) math.Vec2
	MarkPositionsDirty()
	MarkNormalsDirty()
	RecomputeNormals()
}

// NormalMode selects how normals are produced after positions change.
type NormalMode int

const (
	// NormalAnalytic stores the strategy's reconstructed normal.
	NormalAnalytic NormalMode = iota
	// NormalRecompute rebuilds normals from the deformed triangles.
	NormalRecompute
)

func (m NormalMode) String() string {
	if m == NormalRecompute {
		return "recompute"
	}
	return "analytic"
}

// RestPose is an immutable snapshot of the undeformed geometry.
type RestPose struct {
	positions []math.Vec3
	normals   []math.Vec3
	uvs       []math.Vec2
}

// CaptureRestPose copies the current positions, normals and UVs of s.
func CaptureRestPose(s Surface) RestPose {
	n := s.VertexCount()
	rp := RestPose{
		positions: make([]math.Vec3, n),
		normals:   make([]math.Vec3, n),
		uvs:       make([]math.Vec2, n),
	}
	for i := 0; i < n; i++ {
		rp.positions[i] = s.Position(i)
		rp.normals[i] = s.Normal(i)
		rp.uvs[i] = s.UV(i)
	}
	return rp
}

// Len returns the number of vertices in the pose.
func (r RestPose) Len() int { return len(r.positions) }

// Position returns the rest position of vertex i.
func (r RestPose) Position(i int) math.Vec3 { return r.positions[i] }

// Normal returns the rest normal of vertex i.
func (r RestPose) Normal(i int) math.Vec3 { return r.normals[i] }

func (r RestPose) firstNonFinite() (int, bool) {
	for i := range r.positions {
		if !r.positions[i].IsFinite() || !r.normals[i].IsFinite() || !r.uvs[i].IsFinite() {
			return i, true
		}
	}
	return -1, false
}

// Option configures a Deformer.
type Option func(*Deformer)

// WithWorkers sets the number of goroutines used per pass. n <= 0 selects
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(d *Deformer) { d.pool = workpool.New(n) }
}

// WithNormalMode selects analytic or recomputed normals.
func WithNormalMode(m NormalMode) Option {
	return func(d *Deformer) { d.mode = m }
}

// WithClock sets the clock used by Tick.
func WithClock(c *PhaseClock) Option {
	return func(d *Deformer) { d.clock = c }
}

// Deformer applies a Strategy to a Surface once per frame.
// It is not safe for concurrent use.
type Deformer struct {
	surface  Surface
	strategy Strategy
	rest     RestPose
	mode     NormalMode
	pool     *workpool.Pool
	clock    *PhaseClock

	scratchPos []math.Vec3
	scratchNrm []math.Vec3
	frames     uint64
	log        *zap.Logger
}

// New captures the rest pose of surface and prepares a deformer for it.
func New(surface Surface, strategy Strategy, opts ...Option) (*Deformer, error) {
	if surface == nil || strategy == nil {
		return nil, errors.New("deformer needs a surface and a strategy")
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	n := surface.VertexCount()
	if surface.NormalCount() != n {
		return nil, fmt.Errorf("%w: %d normals for %d vertices", ErrLengthMismatch, surface.NormalCount(), n)
	}
	if strategy.Topology() == Spherical && surface.UVCount() != n {
		return nil, fmt.Errorf("%w: spherical deformation needs one uv per vertex, have %d for %d", ErrLengthMismatch, surface.UVCount(), n)
	}

	rest := CaptureRestPose(surface)
	if i, ok := rest.firstNonFinite(); ok {
		return nil, fmt.Errorf("%w: vertex %d", ErrNonFiniteRest, i)
	}

	d := &Deformer{
		surface:    surface,
		strategy:   strategy,
		rest:       rest,
		pool:       workpool.New(0),
		scratchPos: make([]math.Vec3, n),
		scratchNrm: make([]math.Vec3, n),
		log:        logger.Named("deform"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		clock, err := NewPhaseClock(DivisorSine)
		if err != nil {
			return nil, err
		}
		d.clock = clock
	}

	d.log.Debug("deformer ready",
		zap.Int("vertices", n),
		zap.Stringer("topology", strategy.Topology()),
		zap.Stringer("normals", d.mode),
		zap.Int("workers", d.pool.Workers()))
	return d, nil
}

// Rest returns the captured rest pose.
func (d *Deformer) Rest() RestPose { return d.rest }

// Frames returns the number of committed updates.
func (d *Deformer) Frames() uint64 { return d.frames }

// NormalMode returns how normals are produced.
func (d *Deformer) NormalMode() NormalMode { return d.mode }

// Strategy returns the per-vertex strategy.
func (d *Deformer) Strategy() Strategy { return d.strategy }

// Clock returns the clock used by Tick.
func (d *Deformer) Clock() *PhaseClock { return d.clock }

// Tick updates the surface at the clock's current phase.
func (d *Deformer) Tick() error {
	return d.Update(d.clock.Phase())
}

// Update deforms every vertex for the given phase. On error the surface is
// left exactly as it was.
func (d *Deformer) Update(phase float64) error {
	if gomath.IsNaN(phase) || gomath.IsInf(phase, 0) {
		return fmt.Errorf("%w: %v", ErrNonFinitePhase, phase)
	}
	n := d.rest.Len()
	if d.surface.VertexCount() != n || d.surface.NormalCount() != n {
		return fmt.Errorf("%w: surface has %d vertices and %d normals, rest pose has %d",
			ErrLengthMismatch, d.surface.VertexCount(), d.surface.NormalCount(), n)
	}

	err := d.pool.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			v := Vertex{
				Live:         d.surface.Position(i),
				RestPosition: d.rest.positions[i],
				RestNormal:   d.rest.normals[i],
				UV:           d.rest.uvs[i],
			}
			p, nrm := d.strategy.Deform(v, phase)
			if !p.IsFinite() || !nrm.IsFinite() {
				return fmt.Errorf("%w: vertex %d at phase %v", ErrNonFiniteOutput, i, phase)
			}
			d.scratchPos[i], d.scratchNrm[i] = p, nrm
		}
		return nil
	})
	if err != nil {
		return err
	}

	analytic := d.mode == NormalAnalytic
	err = d.pool.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			d.surface.SetPosition(i, d.scratchPos[i])
			if analytic {
				d.surface.SetNormal(i, d.scratchNrm[i])
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.surface.MarkPositionsDirty()
	if analytic {
		d.surface.MarkNormalsDirty()
	} else {
		d.surface.RecomputeNormals()
	}
	d.frames++
	return nil
}
