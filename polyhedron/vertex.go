package polyhedron

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex classification against the current clip plane, kept in the comp
// scratch field between the classify and excise passes.
const (
	compInterior = -1 // strictly below the plane, kept
	compOnPlane  = 0  // within tolerance of the plane, kept
	compExterior = 1  // strictly above the plane, clipped away
)

// Vertex is one corner of a polyhedron boundary.
//
// Neighbors is a rotation system: the adjacent vertex indices in the cyclic
// order that embeds the boundary surface. Facets are not stored; they are
// recovered by walking directed edges with the rule
//
//	next(u→v) = v.Neighbors[index(u)-1]  (cyclically)
//
// which keeps every facet loop in outward orientation. Clipping and collapse
// maintain this order, so facet extraction stays valid after any sequence of
// operations.
type Vertex struct {
	Position mgl64.Vec3
	// Neighbors holds at least 3 adjacent vertex indices in rotation order.
	// The relation is symmetric.
	Neighbors []int
	// Clips is the set of ids of the planes that created or grazed this
	// vertex. Unioned when clipping splits an edge and when collapse merges
	// two vertices.
	Clips map[int]bool

	comp int
}

func newVertex(pos mgl64.Vec3) Vertex {
	return Vertex{Position: pos, Clips: map[int]bool{}}
}

// HasClip reports whether the plane with the given id bounds this vertex.
func (v Vertex) HasClip(id int) bool {
	return v.Clips[id]
}

// ClipIDs returns the vertex's clip plane ids in ascending order.
func (v Vertex) ClipIDs() []int {
	ids := make([]int, 0, len(v.Clips))
	for id := range v.Clips {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// nextAroundFace continues a facet walk that arrived at v along the directed
// edge from→v, returning the facet's next vertex.
func (v Vertex) nextAroundFace(from int) int {
	i := indexOf(v.Neighbors, from)
	d := len(v.Neighbors)
	return v.Neighbors[(i-1+d)%d]
}

func (v *Vertex) addClip(id int) {
	if v.Clips == nil {
		v.Clips = map[int]bool{}
	}
	v.Clips[id] = true
}

func (v *Vertex) unionClips(sets ...map[int]bool) {
	for _, set := range sets {
		for id := range set {
			v.addClip(id)
		}
	}
}

func cloneClips(set map[int]bool) map[int]bool {
	out := make(map[int]bool, len(set))
	for id := range set {
		out[id] = true
	}
	return out
}

func indexOf(list []int, x int) int {
	for i, n := range list {
		if n == x {
			return i
		}
	}
	return -1
}
