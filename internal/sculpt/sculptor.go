// Package sculpt raises terrain under the pointer.
//
// A click is turned into a world-space ray, the nearest candidate mesh is
// found, and every vertex of that mesh within Radius of the hit point is
// lifted along the local elevation axis by (Radius - d) / 2. Normals are then
// rebuilt from the new triangles.
package sculpt

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/engine/picking"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/internal/workpool"
	"github.com/Faultbox/wavemesh/pkg/math"
)

var (
	// ErrBadPointer is returned for NaN or infinite pointer coordinates.
	ErrBadPointer = errors.New("invalid pointer coordinates")
	// ErrBadViewport is returned for a viewport with no area.
	ErrBadViewport = errors.New("invalid viewport")
	// ErrBadHit is returned when an intersector reports a hit that cannot
	// be applied: a non-finite point or an index outside the candidates.
	ErrBadHit = errors.New("invalid hit")
)

// DefaultRadius is the influence radius in world units.
const DefaultRadius = 10

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width, Height float32
}

// Mesh is a pickable surface the sculptor can edit.
type Mesh interface {
	picking.Target
	SetPosition(i int, p math.Vec3)
	MarkPositionsDirty()
	RecomputeNormals()
}

// RayCaster turns normalized device coordinates into a world-space ray.
type RayCaster interface {
	RayFromNDC(x, y float32) picking.Ray
}

// Intersector finds the nearest target hit by a ray.
type Intersector interface {
	Nearest(r picking.Ray, targets []picking.Target) (picking.Hit, bool)
}

// Config holds sculptor settings.
type Config struct {
	Radius  float32
	Axis    math.Axis
	Workers int
}

// DefaultConfig returns a radius of 10 along local Z.
func DefaultConfig() Config {
	return Config{Radius: DefaultRadius, Axis: math.AxisZ}
}

// Sculptor applies click edits to terrain meshes.
type Sculptor struct {
	cfg         Config
	intersector Intersector
	pool        *workpool.Pool
	log         *zap.Logger
}

// New creates a sculptor. A nil intersector selects picking.NearestHit.
func New(cfg Config, intersector Intersector) (*Sculptor, error) {
	if !math.IsFinite(cfg.Radius) || cfg.Radius <= 0 {
		return nil, fmt.Errorf("sculpt radius must be positive and finite, got %v", cfg.Radius)
	}
	if cfg.Axis < math.AxisX || cfg.Axis > math.AxisZ {
		return nil, fmt.Errorf("invalid sculpt axis %d", int(cfg.Axis))
	}
	if intersector == nil {
		intersector = picking.NearestHit{}
	}
	return &Sculptor{
		cfg:         cfg,
		intersector: intersector,
		pool:        workpool.New(cfg.Workers),
		log:         logger.Named("sculpt"),
	}, nil
}

// Config returns the active settings.
func (s *Sculptor) Config() Config {
	return s.cfg
}

// ApplyClick sculpts the nearest candidate under pixel (px, py). It reports
// whether any mesh was hit. A miss leaves every candidate untouched.
func (s *Sculptor) ApplyClick(px, py float32, vp Viewport, cam RayCaster, candidates []Mesh) (bool, error) {
	if !math.IsFinite(px) || !math.IsFinite(py) {
		return false, fmt.Errorf("%w: (%v, %v)", ErrBadPointer, px, py)
	}
	if !math.IsFinite(vp.Width) || !math.IsFinite(vp.Height) || vp.Width <= 0 || vp.Height <= 0 {
		return false, fmt.Errorf("%w: %vx%v", ErrBadViewport, vp.Width, vp.Height)
	}

	x, y := picking.PixelToNDC(px, py, vp.Width, vp.Height)
	ray := cam.RayFromNDC(x, y)

	targets := make([]picking.Target, len(candidates))
	for i, c := range candidates {
		targets[i] = c
	}
	hit, ok := s.intersector.Nearest(ray, targets)
	if !ok {
		return false, nil
	}

	if hit.Index < 0 || hit.Index >= len(candidates) {
		return false, fmt.Errorf("%w: index %d of %d candidates", ErrBadHit, hit.Index, len(candidates))
	}
	if !hit.Point.IsFinite() {
		return false, fmt.Errorf("%w: point %v", ErrBadHit, hit.Point)
	}

	lifted, err := s.Raise(candidates[hit.Index], hit.Point)
	if err != nil {
		return false, err
	}
	s.log.Debug("sculpted",
		zap.Int("mesh", hit.Index),
		zap.Float32("distance", hit.Distance),
		zap.Int("lifted", lifted))
	return true, nil
}

// Raise lifts every vertex of m within Radius of the world-space point
// center, then rebuilds normals. It returns how many vertices moved. A
// non-finite center is rejected with ErrBadPointer and m is left untouched.
func (s *Sculptor) Raise(m Mesh, center math.Vec3) (int, error) {
	if !center.IsFinite() {
		return 0, fmt.Errorf("%w: center %v", ErrBadPointer, center)
	}

	toWorld := m.LocalToWorld()
	radius, axis := s.cfg.Radius, s.cfg.Axis

	var moved atomic.Int64
	err := s.pool.Range(m.VertexCount(), func(lo, hi int) error {
		var count int64
		for i := lo; i < hi; i++ {
			local := m.Position(i)
			d := center.Distance(toWorld.TransformVec3(local))
			if d >= radius {
				continue
			}
			m.SetPosition(i, local.WithComponent(axis, local.Component(axis)+(radius-d)/2))
			count++
		}
		moved.Add(count)
		return nil
	})
	if err != nil {
		return 0, err
	}
	m.MarkPositionsDirty()
	m.RecomputeNormals()
	return int(moved.Load()), nil
}
