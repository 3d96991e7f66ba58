package polygon

// SplitIntoTriangles decomposes a convex polygon into triangles fanned from
// vertex 0, returning index triples in counterclockwise order. Triangles with
// signed area at or below tol are dropped, so degenerate slivers left by
// clipping do not appear in the output. Only convex polygons are supported;
// fanning a non-convex boundary produces overlapping triangles.
func (p Polygon) SplitIntoTriangles(tol float64) [][]int {
	if len(p) < 3 {
		return nil
	}
	var tris [][]int
	for i := p[0].Neighbors[1]; ; {
		j := p[i].Neighbors[1]
		if j == 0 {
			break
		}
		a := p[i].Position.Sub(p[0].Position)
		b := p[j].Position.Sub(p[0].Position)
		if 0.5*cross2(a, b) > tol {
			tris = append(tris, []int{0, i, j})
		}
		i = j
	}
	return tris
}
