package polygon

import (
	"github.com/akmonengine/polyclip"
)

// DefaultClipTolerance is the relative tolerance Clip classifies vertices
// with. It is scaled by the polygon's bounding-box diagonal, so on-plane
// detection tracks the polygon's own length scale.
const DefaultClipTolerance = 1.0e-10

// Clip intersects the polygon, in place, with the half-space intersection of
// the given planes: each plane keeps the region where its signed distance is
// non-positive. Planes apply in order; an empty plane list is a no-op. If
// every vertex falls outside some plane the polygon becomes empty and the
// remaining planes are moot.
//
// Vertices created by a cut (or lying on one within tolerance) record the
// plane's id in their clip sets. Clipping exactly through existing features
// can leave coincident vertices behind; run CollapseDegenerates before
// integrating moments of such output.
func (p *Polygon) Clip(planes []Plane) {
	p.ClipWithTolerance(planes, DefaultClipTolerance)
}

// ClipWithTolerance is Clip with an explicit relative tolerance, applied to
// the bounding-box diagonal measured once at entry. A vertex within the
// resulting absolute tolerance of a plane counts as on-plane and is retained,
// which keeps clipping with a coincident plane idempotent.
func (p *Polygon) ClipWithTolerance(planes []Plane, relTol float64) {
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

func (p *Polygon) clipPlane(plane Plane, tol float64) {
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
	// The new vertex sits on the plane, inherits the provenance of both
	// endpoints, and takes the exterior endpoint's place in the surviving
	// vertex's links. Entry splits also reroute the doomed vertex's next link
	// so the reconnection walk below terminates on the new vertex.
	for j := 0; j < n0; j++ {
		if poly[j].comp != compExterior {
			continue
		}
		if i := poly[j].Neighbors[0]; poly[i].comp == compInterior {
			x := splitVertex(poly[i], poly[j], sd[i], sd[j], plane.ID)
			x.Neighbors = [2]int{i, j}
			poly = append(poly, x)
			poly[i].Neighbors[1] = len(poly) - 1
		}
		if k := poly[j].Neighbors[1]; poly[k].comp == compInterior {
			x := splitVertex(poly[k], poly[j], sd[k], sd[j], plane.ID)
			x.Neighbors = [2]int{j, k}
			poly = append(poly, x)
			poly[k].Neighbors[0] = len(poly) - 1
			poly[j].Neighbors[1] = len(poly) - 1
		}
	}

	// Reconnect: each retained vertex whose next link still points into the
	// exterior walks the doomed chain along the old boundary; the first
	// retained vertex it reaches is its partner across the cut. This pairs
	// every exit point with the matching entry point even when a non-convex
	// polygon falls apart into several loops.
	for e := range poly {
		if poly[e].comp == compExterior {
			continue
		}
		cur := poly[e].Neighbors[1]
		if poly[cur].comp != compExterior {
			continue
		}
		for poly[cur].comp == compExterior {
			cur = poly[cur].Neighbors[1]
		}
		poly[e].Neighbors[1] = cur
		poly[cur].Neighbors[0] = e
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
	out := make(Polygon, 0, live)
	for i := range poly {
		if remap[i] < 0 {
			continue
		}
		v := poly[i]
		v.Neighbors[0] = remap[v.Neighbors[0]]
		v.Neighbors[1] = remap[v.Neighbors[1]]
		out = append(out, v)
	}
	*p = out

	polyclip.Logger().Debug("clipped polygon against plane",
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
