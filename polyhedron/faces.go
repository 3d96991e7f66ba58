package polyhedron

// Faces recovers the facet loops of the polyhedron by walking the rotation
// system: starting from an unvisited directed edge, repeatedly advance with
// next(u→v) = v.Neighbors[index(u)-1] until the starting edge comes around
// again. Every directed edge belongs to exactly one facet, so each is visited
// exactly once and the loops come out in outward orientation.
//
// Facets are recomputed on demand rather than stored, so they can never
// disagree with the edge graph that clipping mutates.
func (p Polyhedron) Faces() [][]int {
	visited := make(map[[2]int]bool)
	var faces [][]int
	for u := range p {
		for _, v := range p[u].Neighbors {
			if visited[[2]int{u, v}] {
				continue
			}
			face := make([]int, 0, 4)
			a, b := u, v
			for {
				face = append(face, a)
				visited[[2]int{a, b}] = true
				a, b = b, p[b].nextAroundFace(a)
				if a == u && b == v {
					break
				}
			}
			faces = append(faces, face)
		}
	}
	return faces
}
