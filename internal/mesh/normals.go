package mesh

import "github.com/Faultbox/wavemesh/pkg/math"

// RecomputeNormals rebuilds every vertex normal from the triangle topology:
// each face adds its area-weighted normal to its three corners, then every
// vertex sum is normalized. A vertex that no face touches keeps its old
// normal. Marks the normal buffer dirty.
func (m *Mesh) RecomputeNormals() {
	n := m.VertexCount()
	sums := make([]math.Vec3, n)

	for t := 0; t+2 < len(m.Indices); t += 3 {
		ia, ib, ic := int(m.Indices[t]), int(m.Indices[t+1]), int(m.Indices[t+2])
		a, b, c := m.Position(ia), m.Position(ib), m.Position(ic)

		// (c - b) x (a - b) is the counter-clockwise face normal scaled by twice the area.
		face := c.Sub(b).Cross(a.Sub(b))
		sums[ia] = sums[ia].Add(face)
		sums[ib] = sums[ib].Add(face)
		sums[ic] = sums[ic].Add(face)
	}

	for i, s := range sums {
		if s.Length() < 1e-12 {
			continue
		}
		m.SetNormal(i, s.Normalize())
	}
	m.MarkNormalsDirty()
}
