// Package polyhedron clips arbitrary (convex or non-convex) polyhedra by
// planes and integrates their volume and centroid.
//
// A Polyhedron is a flat slice of vertices, each holding its adjacent vertex
// indices in rotation order (a planar-graph embedding of the closed boundary
// surface). Facets are recovered on demand by walking directed edges, so the
// edge and facet representations can never fall out of sync while clipping
// rewires the boundary.
package polyhedron

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Polyhedron is an indexed arena of boundary vertices. Destructive operations
// (Clip, CollapseDegenerates) renumber so live vertices stay contiguous. An
// empty polyhedron is the valid "fully clipped away" terminal state.
type Polyhedron []Vertex

// NewPolyhedron builds a polyhedron from positions and per-vertex neighbor
// lists, copied verbatim. The caller guarantees the neighbor relation is
// symmetric, in rotation order, and forms one connected closed 2-manifold;
// topology is not validated here, only index ranges and minimum degree are.
// Coincident points are legal and produce a degenerate but valid polyhedron
// (see CollapseDegenerates).
func NewPolyhedron(points []mgl64.Vec3, neighbors [][]int) (Polyhedron, error) {
	if len(points) != len(neighbors) {
		return nil, fmt.Errorf("polyhedron: %d points but %d neighbor lists", len(points), len(neighbors))
	}
	poly := make(Polyhedron, len(points))
	for i, pos := range points {
		if len(neighbors[i]) < 3 {
			return nil, fmt.Errorf("polyhedron: vertex %d has %d neighbors, want at least 3", i, len(neighbors[i]))
		}
		for _, n := range neighbors[i] {
			if n < 0 || n >= len(points) {
				return nil, fmt.Errorf("polyhedron: vertex %d references neighbor %d, want [0,%d)", i, n, len(points))
			}
		}
		poly[i] = newVertex(pos)
		poly[i].Neighbors = append([]int(nil), neighbors[i]...)
	}
	return poly, nil
}

// NewPolyhedronFromFacets builds a polyhedron from positions and facet loops,
// each a cyclic vertex-index sequence in outward orientation (counterclockwise
// viewed from outside). The per-vertex rotation order is derived from the
// loops, so the manifold invariant holds by construction when the facets
// describe one closed surface; mismatched or open facet sets are rejected.
func NewPolyhedronFromFacets(points []mgl64.Vec3, facets [][]int) (Polyhedron, error) {
	// A facet ... u, v, w ... pins down v's rotation: u follows w in v's
	// cyclic neighbor order (the facet-walk rule read backwards).
	follows := make([]map[int]int, len(points))
	for fi, facet := range facets {
		if len(facet) < 3 {
			return nil, fmt.Errorf("polyhedron: facet %d has %d vertices, want at least 3", fi, len(facet))
		}
		for k, v := range facet {
			if v < 0 || v >= len(points) {
				return nil, fmt.Errorf("polyhedron: facet %d references vertex %d, want [0,%d)", fi, v, len(points))
			}
			u := facet[(k-1+len(facet))%len(facet)]
			w := facet[(k+1)%len(facet)]
			if follows[v] == nil {
				follows[v] = map[int]int{}
			}
			if prev, dup := follows[v][w]; dup && prev != u {
				return nil, fmt.Errorf("polyhedron: facets disagree on the edge order around vertex %d", v)
			}
			follows[v][w] = u
		}
	}

	poly := make(Polyhedron, len(points))
	for i, pos := range points {
		ring := follows[i]
		if len(ring) < 3 {
			return nil, fmt.Errorf("polyhedron: vertex %d appears with degree %d, want at least 3", i, len(ring))
		}
		start := -1
		for w := range ring {
			if start < 0 || w < start {
				start = w
			}
		}
		cycle := []int{start}
		for cur := ring[start]; cur != start; cur = ring[cur] {
			if len(cycle) > len(ring) {
				return nil, fmt.Errorf("polyhedron: facets around vertex %d do not close", i)
			}
			cycle = append(cycle, cur)
		}
		if len(cycle) != len(ring) {
			return nil, fmt.Errorf("polyhedron: facets around vertex %d form more than one fan", i)
		}
		poly[i] = newVertex(pos)
		poly[i].Neighbors = cycle
	}
	return poly, nil
}

// Clone returns a deep copy: vertex records, neighbor lists and clip sets are
// independent of the receiver.
func (p Polyhedron) Clone() Polyhedron {
	out := make(Polyhedron, len(p))
	for i, v := range p {
		out[i] = v
		out[i].Neighbors = append([]int(nil), v.Neighbors...)
		out[i].Clips = cloneClips(v.Clips)
	}
	return out
}

// CommonFaceClips returns, for each facet of Faces, the ids of the clip
// planes shared by every vertex of that facet. A facet whose vertices all
// carry a plane id is the cap that plane cut, which lets downstream consumers
// tag boundary facets with the interface that produced them.
func (p Polyhedron) CommonFaceClips(faces [][]int) []map[int]bool {
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

func (p Polyhedron) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Polyhedron[%d vertices]:\n", len(p))
	for i, v := range p {
		fmt.Fprintf(&b, "  %d: position=(%g %g %g) neighbors=%v clips=%v\n",
			i, v.Position.X(), v.Position.Y(), v.Position.Z(), v.Neighbors, v.ClipIDs())
	}
	return b.String()
}

// boundingChord is the diagonal of the axis-aligned bounding box, the
// characteristic length the clip tolerance scales with.
func (p Polyhedron) boundingChord() float64 {
	if len(p) == 0 {
		return 0
	}
	lo, hi := p[0].Position, p[0].Position
	for _, v := range p[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return hi.Sub(lo).Len()
}
