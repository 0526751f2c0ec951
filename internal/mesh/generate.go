package mesh

import (
	"fmt"
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/wavemesh/pkg/math"
)

// NewPlane builds a width x height plane in the local XY plane, facing +Z,
// subdivided into widthSegs x heightSegs quads. Vertices are laid out row by
// row from the top-left corner; UVs run 0..1 left to right and 1..0 top to
// bottom.
func NewPlane(width, height float32, widthSegs, heightSegs int) (*Mesh, error) {
	if widthSegs < 1 || heightSegs < 1 {
		return nil, fmt.Errorf("%w: plane needs at least one segment per side, got %dx%d", ErrMalformed, widthSegs, heightSegs)
	}

	cols := widthSegs + 1
	rows := heightSegs + 1
	n := cols * rows

	m := &Mesh{
		Name:      "plane",
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		UVs:       make([]float32, 0, n*2),
		Indices:   make([]uint32, 0, widthSegs*heightSegs*6),
		Transform: math.Identity(),
	}

	halfW := width / 2
	halfH := height / 2
	segW := width / float32(widthSegs)
	segH := height / float32(heightSegs)

	for iy := 0; iy < rows; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - halfW
			m.Positions = append(m.Positions, x, -y, 0)
			m.Normals = append(m.Normals, 0, 0, 1)
			m.UVs = append(m.UVs, float32(ix)/float32(widthSegs), 1-float32(iy)/float32(heightSegs))
		}
	}

	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}

	return m, nil
}

// NewSphere builds a UV sphere of the given radius centered on the origin.
// Vertices run from the north pole (+Y) down to the south pole, one ring of
// widthSegs+1 vertices per latitude; the seam and pole vertices are
// duplicated so every vertex owns a distinct UV.
func NewSphere(radius float32, widthSegs, heightSegs int) (*Mesh, error) {
	if widthSegs < 3 || heightSegs < 2 {
		return nil, fmt.Errorf("%w: sphere needs at least 3x2 segments, got %dx%d", ErrMalformed, widthSegs, heightSegs)
	}

	cols := widthSegs + 1
	rows := heightSegs + 1
	n := cols * rows

	m := &Mesh{
		Name:      "sphere",
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		UVs:       make([]float32, 0, n*2),
		Transform: math.Identity(),
	}

	grid := make([][]uint32, rows)
	var idx uint32
	for iy := 0; iy < rows; iy++ {
		v := float32(iy) / float32(heightSegs)

		// Pole vertices sit half a segment over so their UVs center on the fan.
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegs)
		case heightSegs:
			uOffset = -0.5 / float32(widthSegs)
		}

		sinTheta, cosTheta := math32.Sincos(v * gomath.Pi)
		row := make([]uint32, cols)
		for ix := 0; ix < cols; ix++ {
			u := float32(ix) / float32(widthSegs)
			sinPhi, cosPhi := math32.Sincos(u * 2 * gomath.Pi)

			p := math.Vec3{
				X: -radius * cosPhi * sinTheta,
				Y: radius * cosTheta,
				Z: radius * sinPhi * sinTheta,
			}
			nrm := p.Normalize()

			m.Positions = append(m.Positions, p.X, p.Y, p.Z)
			m.Normals = append(m.Normals, nrm.X, nrm.Y, nrm.Z)
			m.UVs = append(m.UVs, u+uOffset, 1-v)
			row[ix] = idx
			idx++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegs-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m, nil
}
