package polyhedron

// SplitIntoTetrahedra decomposes a convex polyhedron into tetrahedra joined
// to vertex 0: each facet not containing vertex 0 is fan-triangulated from
// its own first vertex and every triangle forms a tetrahedron with vertex 0.
// Index quadruples come out positively oriented (non-negative signed volume);
// tetrahedra with volume at or below tol are dropped, so degenerate slivers
// left by clipping do not appear in the output. Only convex polyhedra are
// supported; fanning a non-convex boundary produces overlapping tetrahedra.
func (p Polyhedron) SplitIntoTetrahedra(tol float64) [][]int {
	if len(p) < 4 {
		return nil
	}
	origin := p[0].Position
	var tets [][]int
	for _, face := range p.Faces() {
		if indexOf(face, 0) >= 0 {
			continue
		}
		p0 := p[face[0]].Position.Sub(origin)
		for k := 1; k+1 < len(face); k++ {
			p1 := p[face[k]].Position.Sub(origin)
			p2 := p[face[k+1]].Position.Sub(origin)
			if p0.Dot(p1.Cross(p2))/6.0 > tol {
				tets = append(tets, []int{0, face[0], face[k], face[k+1]})
			}
		}
	}
	return tets
}
