package polygon

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Moments integrates the zeroth and first moments of the polygon: the signed
// area and the area-weighted centroid. The boundary is decomposed into signed
// triangles fanned from the first vertex's position, one per directed
// boundary edge, which stays correct when clipping has left several disjoint
// loops in the arena.
//
// An empty polygon reports zero area and a zero centroid. A non-empty polygon
// with fewer than 3 vertices, or one whose boundary encloses exactly zero
// area, cannot have a centroid and is reported as an error: collapse
// degenerate clip output before integrating it.
func (p Polygon) Moments() (float64, mgl64.Vec2, error) {
	if len(p) == 0 {
		return 0, mgl64.Vec2{}, nil
	}
	if len(p) < 3 {
		return 0, mgl64.Vec2{}, fmt.Errorf("polygon: moments of degenerate polygon with %d vertices", len(p))
	}

	origin := p[0].Position
	var m0 float64
	var m1 mgl64.Vec2
	for i := range p {
		p1 := p[i].Position.Sub(origin)
		p2 := p[p[i].Neighbors[1]].Position.Sub(origin)
		da := cross2(p1, p2) // twice the signed triangle area
		m0 += da
		m1 = m1.Add(p1.Add(p2).Mul(da))
	}
	m0 *= 0.5
	if m0 == 0 {
		return 0, mgl64.Vec2{}, fmt.Errorf("polygon: moments of zero-area polygon with %d vertices", len(p))
	}
	centroid := m1.Mul(1.0 / (6.0 * m0)).Add(origin)
	return m0, centroid, nil
}

func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
