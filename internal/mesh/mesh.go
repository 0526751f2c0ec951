// Package mesh holds indexed triangle meshes as flat GPU-ready buffers.
//
// A Mesh is the object the deformation core mutates and the renderer uploads.
// Positions, normals and texture coordinates are parallel flat arrays; the
// dirty flags tell the renderer which of them changed since the last upload.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wavemesh/pkg/math"
)

// ErrMalformed is returned when buffer lengths or contents are inconsistent.
var ErrMalformed = errors.New("malformed mesh")

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Mesh is an indexed triangle mesh with a local-to-world transform.
type Mesh struct {
	Name      string
	Positions []float32 // x,y,z per vertex
	Normals   []float32 // x,y,z per vertex
	UVs       []float32 // u,v per vertex
	Indices   []uint32

	// Transform maps local coordinates to world space.
	Transform math.Mat4

	positionsDirty bool
	normalsDirty   bool
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// NormalCount returns the number of normals.
func (m *Mesh) NormalCount() int {
	return len(m.Normals) / 3
}

// UVCount returns the number of texture coordinates.
func (m *Mesh) UVCount() int {
	return len(m.UVs) / 2
}

// Position returns the local-space position of vertex i.
func (m *Mesh) Position(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// SetPosition writes the local-space position of vertex i.
func (m *Mesh) SetPosition(i int, p math.Vec3) {
	m.Positions[i*3] = p.X
	m.Positions[i*3+1] = p.Y
	m.Positions[i*3+2] = p.Z
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	return math.Vec3{X: m.Normals[i*3], Y: m.Normals[i*3+1], Z: m.Normals[i*3+2]}
}

// SetNormal writes the normal of vertex i.
func (m *Mesh) SetNormal(i int, n math.Vec3) {
	m.Normals[i*3] = n.X
	m.Normals[i*3+1] = n.Y
	m.Normals[i*3+2] = n.Z
}

// UV returns the texture coordinate of vertex i, or zero if the mesh has none.
func (m *Mesh) UV(i int) math.Vec2 {
	if len(m.UVs) < (i+1)*2 {
		return math.Vec2{}
	}
	return math.Vec2{X: m.UVs[i*2], Y: m.UVs[i*2+1]}
}

// TriangleIndices returns the index buffer.
func (m *Mesh) TriangleIndices() []uint32 {
	return m.Indices
}

// LocalToWorld returns the mesh transform.
func (m *Mesh) LocalToWorld() math.Mat4 {
	return m.Transform
}

// MarkPositionsDirty flags the position buffer for upload.
func (m *Mesh) MarkPositionsDirty() {
	m.positionsDirty = true
}

// MarkNormalsDirty flags the normal buffer for upload.
func (m *Mesh) MarkNormalsDirty() {
	m.normalsDirty = true
}

// TakeDirty reports which buffers changed since the last call and clears the flags.
func (m *Mesh) TakeDirty() (positions, normals bool) {
	positions, normals = m.positionsDirty, m.normalsDirty
	m.positionsDirty, m.normalsDirty = false, false
	return positions, normals
}

// LocalBounds computes the local-space bounding box of the current positions.
func (m *Mesh) LocalBounds() Bounds {
	b := Bounds{
		Min: math.Vec3{X: 1e30, Y: 1e30, Z: 1e30},
		Max: math.Vec3{X: -1e30, Y: -1e30, Z: -1e30},
	}
	for i := 0; i < m.VertexCount(); i++ {
		b.Expand(m.Position(i))
	}
	return b
}

// Expand grows b to contain p.
func (b *Bounds) Expand(p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}

// Validate checks that the buffers agree with each other and hold finite data.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d position floats is not a multiple of 3", ErrMalformed, len(m.Positions))
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normal floats for %d position floats", ErrMalformed, len(m.Normals), len(m.Positions))
	}
	n := m.VertexCount()
	if len(m.UVs) != 0 && len(m.UVs) != n*2 {
		return fmt.Errorf("%w: %d uv floats for %d vertices", ErrMalformed, len(m.UVs), n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformed, len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d out of range (%d vertices)", ErrMalformed, idx, n)
		}
	}
	for i, f := range m.Positions {
		if !math.IsFinite(f) {
			return fmt.Errorf("%w: non-finite position component at %d", ErrMalformed, i)
		}
	}
	return nil
}
