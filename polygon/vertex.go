package polygon

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

// Vertex is one corner of a polygon boundary.
type Vertex struct {
	Position mgl64.Vec2
	// Neighbors holds the previous ([0]) and next ([1]) vertex index along
	// the counterclockwise boundary cycle. The relation is symmetric:
	// poly[v.Neighbors[1]].Neighbors[0] == v.
	Neighbors [2]int
	// Clips is the set of ids of the planes that created or grazed this
	// vertex. Unioned when clipping splits an edge and when collapse merges
	// two vertices.
	Clips map[int]bool

	comp int
}

func newVertex(pos mgl64.Vec2) Vertex {
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
