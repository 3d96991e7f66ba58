// Package polygon clips arbitrary (convex or non-convex) polygons by planes
// and integrates their area and centroid.
//
// A Polygon is a flat slice of vertices, each linked to its previous and next
// neighbor along the counterclockwise boundary. Clipping rewires those links
// in place; after a cut of a non-convex polygon the slice may hold several
// disjoint boundary loops, which the moment integrator handles transparently.
package polygon

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Polygon is an indexed arena of boundary vertices. Destructive operations
// (Clip, CollapseDegenerates) renumber so live vertices stay contiguous. An
// empty polygon is the valid "fully clipped away" terminal state.
type Polygon []Vertex

// NewPolygon builds a polygon from positions and per-vertex [previous, next]
// neighbor indices, copied verbatim. The caller guarantees the neighbor
// relation is symmetric and forms one closed counterclockwise cycle; topology
// is not validated here, only index ranges are. Coincident points are legal
// and produce a degenerate but valid polygon (see CollapseDegenerates).
func NewPolygon(points []mgl64.Vec2, neighbors [][2]int) (Polygon, error) {
	if len(points) != len(neighbors) {
		return nil, fmt.Errorf("polygon: %d points but %d neighbor pairs", len(points), len(neighbors))
	}
	poly := make(Polygon, len(points))
	for i, pos := range points {
		for _, n := range neighbors[i] {
			if n < 0 || n >= len(points) {
				return nil, fmt.Errorf("polygon: vertex %d references neighbor %d, want [0,%d)", i, n, len(points))
			}
		}
		poly[i] = newVertex(pos)
		poly[i].Neighbors = neighbors[i]
	}
	return poly, nil
}

// Clone returns a deep copy: vertex records and clip sets are independent of
// the receiver.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v
		out[i].Clips = cloneClips(v.Clips)
	}
	return out
}

// Faces returns the boundary edges as [from, to] index pairs, one per vertex,
// the 2D analog of a polyhedron's facet loops.
func (p Polygon) Faces() [][]int {
	faces := make([][]int, 0, len(p))
	for i := range p {
		faces = append(faces, []int{i, p[i].Neighbors[1]})
	}
	return faces
}

// CommonFaceClips returns, for each face of Faces, the ids of the clip planes
// shared by every vertex of that face. A face whose vertices share a plane id
// lies on the cut that plane made, which lets downstream consumers tag
// boundary segments with the interface that produced them.
func (p Polygon) CommonFaceClips(faces [][]int) []map[int]bool {
	out := make([]map[int]bool, len(faces))
	for k, face := range faces {
		common := cloneClips(p[face[0]].Clips)
		for _, i := range face[1:] {
			for id := range common {
				if !p[i].Clips[id] {
					delete(common, id)
				}
			}
		}
		out[k] = common
	}
	return out
}

func (p Polygon) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Polygon[%d vertices]:\n", len(p))
	for i, v := range p {
		fmt.Fprintf(&b, "  %d: position=(%g %g) neighbors=(%d %d) clips=%v\n",
			i, v.Position.X(), v.Position.Y(), v.Neighbors[0], v.Neighbors[1], v.ClipIDs())
	}
	return b.String()
}

// boundingChord is the diagonal of the axis-aligned bounding box, the
// characteristic length the clip tolerance scales with.
func (p Polygon) boundingChord() float64 {
	if len(p) == 0 {
		return 0
	}
	lo, hi := p[0].Position, p[0].Position
	for _, v := range p[1:] {
		for i := 0; i < 2; i++ {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return hi.Sub(lo).Len()
}
