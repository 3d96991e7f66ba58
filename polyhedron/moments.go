package polyhedron

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Moments integrates the zeroth and first moments of the polyhedron: the
// signed volume and the volume-weighted centroid. Each facet is
// fan-triangulated from its own first vertex and every triangle contributes a
// signed tetrahedron anchored at the first live vertex's position:
//
//	6·volume      = Σ (p0-o)·((p1-o)×(p2-o))
//	24·volume·c'  = Σ dV·(p0+p1+p2-3o),  centroid = c' + o
//
// The anchored sum stays correct when clipping has left several disjoint
// shells in the arena.
//
// An empty polyhedron reports zero volume and a zero centroid. A non-empty
// polyhedron with fewer than 4 vertices, or one whose boundary bounds exactly
// zero volume, cannot have a centroid and is reported as an error: collapse
// degenerate clip output before integrating it.
func (p Polyhedron) Moments() (float64, mgl64.Vec3, error) {
	if len(p) == 0 {
		return 0, mgl64.Vec3{}, nil
	}
	if len(p) < 4 {
		return 0, mgl64.Vec3{}, fmt.Errorf("polyhedron: moments of degenerate polyhedron with %d vertices", len(p))
	}

	origin := p[0].Position
	var m0 float64
	var m1 mgl64.Vec3
	for _, face := range p.Faces() {
		p0 := p[face[0]].Position.Sub(origin)
		for k := 1; k+1 < len(face); k++ {
			p1 := p[face[k]].Position.Sub(origin)
			p2 := p[face[k+1]].Position.Sub(origin)
			dV := p0.Dot(p1.Cross(p2))
			m0 += dV
			m1 = m1.Add(p0.Add(p1).Add(p2).Mul(dV))
		}
	}
	m0 /= 6.0
	if m0 == 0 {
		return 0, mgl64.Vec3{}, fmt.Errorf("polyhedron: moments of zero-volume polyhedron with %d vertices", len(p))
	}
	centroid := m1.Mul(1.0 / (24.0 * m0)).Add(origin)
	return m0, centroid, nil
}
