package polyhedron

import (
	"github.com/akmonengine/polyclip"
)

// DefaultClipTolerance is the relative tolerance Clip classifies vertices
// with. It is scaled by the polyhedron's bounding-box diagonal, so on-plane
// detection tracks the polyhedron's own length scale.
const DefaultClipTolerance = 1.0e-10

// Clip intersects the polyhedron, in place, with the half-space intersection
// of the given planes: each plane keeps the region where its signed distance
// is non-positive. Planes apply in order; an empty plane list is a no-op. If
// every vertex falls outside some plane the polyhedron becomes empty and the
// remaining planes are moot.
//
// Vertices created by a cut (or lying on one within tolerance) record the
// plane's id in their clip sets. Clipping exactly through existing features
// can leave coincident vertices behind; run CollapseDegenerates before
// integrating moments of such output.
func (p *Polyhedron) Clip(planes []Plane) {
	p.ClipWithTolerance(planes, DefaultClipTolerance)
}

// ClipWithTolerance is Clip with an explicit relative tolerance, applied to
// the bounding-box diagonal measured once at entry. A vertex within the
// resulting absolute tolerance of a plane counts as on-plane and is retained,
// which keeps clipping with a coincident plane idempotent.
func (p *Polyhedron) ClipWithTolerance(planes []Plane, relTol float64) {
	if len(*p) == 0 || len(planes) == 0 {
		return
	}
	tol := relTol * p.boundingChord()
	for _, plane := range planes {
		if len(*p) == 0 {
			return
		}
		p.clipPlane(plane, tol)
	}
}

// capRef addresses one slot of one vertex's rotation during a clip pass.
type capRef struct{ v, slot int }

func (p *Polyhedron) clipPlane(plane Plane, tol float64) {
	poly := *p
	n0 := len(poly)

	// Classify every vertex. On-plane vertices are retained and labeled.
	sd := make([]float64, n0)
	nExterior, nKept := 0, 0
	for i := range poly {
		sd[i] = plane.SignedDistance(poly[i].Position)
		switch {
		case sd[i] > tol:
			poly[i].comp = compExterior
			nExterior++
		case sd[i] < -tol:
			poly[i].comp = compInterior
			nKept++
		default:
			poly[i].comp = compOnPlane
			poly[i].addClip(plane.ID)
			nKept++
		}
	}
	if nExterior == 0 {
		return
	}
	if nKept == 0 {
		*p = poly[:0]
		return
	}

	// Split every edge joining a strictly-interior vertex to an exterior one.
	// The new vertex takes the doomed endpoint's slot in the interior
	// vertex's rotation, so interior rotations stay correct as-is; the new
	// vertex's own rotation is [interior, capIn, capOut], completed below.
	// Exterior rotations are left untouched: they are the map the cap walks
	// navigate by.
	split := make(map[[2]int]int) // [exterior, interior] edge -> new vertex
	for j := 0; j < n0; j++ {
		if poly[j].comp != compExterior {
			continue
		}
		for _, i := range poly[j].Neighbors {
			if poly[i].comp != compInterior {
				continue
			}
			x := splitVertex(poly[i], poly[j], sd[i], sd[j], plane.ID)
			x.Neighbors = []int{i, j}
			xi := len(poly)
			poly = append(poly, x)
			split[[2]int{j, i}] = xi
			poly[i].Neighbors[indexOf(poly[i].Neighbors, j)] = xi
		}
	}

	// Walk a cut facet's doomed chain along the old rotation system, starting
	// just past the boundary vertex that owns the walk. The first retained
	// vertex reached is the far end of the facet's cap edge: either a split
	// vertex (reported with its capIn slot) or an on-plane vertex (reported
	// with the slot its last exterior neighbor occupies).
	walk := func(prev, cur int) (int, capRef) {
		for {
			nxt := poly[cur].nextAroundFace(prev)
			switch poly[nxt].comp {
			case compExterior:
				prev, cur = cur, nxt
			case compInterior:
				xi, ok := split[[2]int{cur, nxt}]
				if !ok {
					panic("polyhedron: clip crossed an unsplit edge; the boundary graph is not a closed manifold")
				}
				return xi, capRef{xi, 1}
			default:
				return nxt, capRef{nxt, indexOf(poly[nxt].Neighbors, cur)}
			}
		}
	}

	// Each slot of a retained vertex that still points into the exterior gets
	// two cap links: the facet entered through that slot contributes the
	// outgoing cap (found by walking it), and the facet on the other side
	// arrives with the incoming cap. Replacing the slot with the pair
	// [capIn, capOut] keeps the rotation order consistent for the surviving
	// facets and for the new cap facet on the clip plane.
	capIn := make(map[capRef]int)
	capOut := make(map[capRef]int)
	for xi := n0; xi < len(poly); xi++ {
		partner, at := walk(poly[xi].Neighbors[0], poly[xi].Neighbors[1])
		capOut[capRef{xi, 1}] = partner
		capIn[at] = xi
	}
	for v := 0; v < n0; v++ {
		if poly[v].comp != compOnPlane {
			continue
		}
		for s, e := range poly[v].Neighbors {
			if poly[e].comp != compExterior {
				continue
			}
			partner, at := walk(v, e)
			capOut[capRef{v, s}] = partner
			capIn[at] = v
		}
	}

	// Rewire the boundary vertices.
	for v := range poly {
		if poly[v].comp == compExterior {
			continue
		}
		dirty := false
		for _, nb := range poly[v].Neighbors {
			if nb < n0 && poly[nb].comp == compExterior {
				dirty = true
				break
			}
		}
		if !dirty {
			continue
		}
		rewired := make([]int, 0, len(poly[v].Neighbors)+2)
		for s, nb := range poly[v].Neighbors {
			if nb >= n0 || poly[nb].comp != compExterior {
				rewired = append(rewired, nb)
				continue
			}
			in, okIn := capIn[capRef{v, s}]
			out, okOut := capOut[capRef{v, s}]
			if !okIn || !okOut {
				panic("polyhedron: clip lost a cap link; the boundary graph is not a closed manifold")
			}
			rewired = append(rewired, in, out)
		}
		// A cut running exactly along an existing edge caps onto that edge and
		// duplicates it in the rotation; the duplicates are cyclically adjacent
		// (they bound a facet squeezed to two vertices) and fuse into one edge.
		poly[v].Neighbors = cleanRotation(rewired, v)
	}

	// Excise exterior vertices and renumber the survivors.
	remap := make([]int, len(poly))
	live := 0
	for i := range poly {
		if poly[i].comp == compExterior {
			remap[i] = -1
		} else {
			remap[i] = live
			live++
		}
	}
	out := make(Polyhedron, 0, live)
	for i := range poly {
		if remap[i] < 0 {
			continue
		}
		v := poly[i]
		for s, nb := range v.Neighbors {
			v.Neighbors[s] = remap[nb]
		}
		out = append(out, v)
	}
	*p = out

	polyclip.Logger().Debug("clipped polyhedron against plane",
		"plane", plane.String(), "id", plane.ID,
		"removed", nExterior, "inserted", live-(n0-nExterior))
}

// splitVertex builds the intersection vertex on the edge joining a retained
// vertex a to an exterior vertex b, by linear interpolation on the signed
// distances.
func splitVertex(a, b Vertex, sda, sdb float64, planeID int) Vertex {
	t := sda / (sda - sdb)
	x := newVertex(a.Position.Add(b.Position.Sub(a.Position).Mul(t)))
	x.comp = compOnPlane
	x.addClip(planeID)
	x.unionClips(a.Clips, b.Clips)
	return x
}
