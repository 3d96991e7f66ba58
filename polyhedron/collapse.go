package polyhedron

import (
	"github.com/akmonengine/polyclip"
)

// CollapseDegenerates merges, in place, every pair of neighboring vertices
// closer than tol, until no such pair remains. The surviving vertex keeps its
// position, absorbs the other's clip set, and splices the other's rotation
// fan into its own at the contracted slot, so the rotation system (and with
// it facet extraction) stays valid. Facets reduced below 3 distinct vertices
// disappear as a side effect of the contraction cleanup: duplicate adjacent
// rotation entries are removed and vertices left with fewer than 3 neighbors
// are spliced out of the surface. A polyhedron left with fewer than 4 live
// vertices cannot bound volume and collapses to empty.
//
// Clipping exactly through an existing vertex, edge or facet leaves
// coincident vertices behind; collapsing them restores the clean boundary
// the moment integrator and downstream consumers expect.
func (p *Polyhedron) CollapseDegenerates(tol float64) {
	poly := *p
	if len(poly) == 0 {
		return
	}

	alive := make([]bool, len(poly))
	for i := range alive {
		alive[i] = true
	}
	nMerged := 0

	// Contraction strictly decreases the live count, so the fixed-point loop
	// terminates.
	for changed := true; changed; {
		changed = false
		for u := range poly {
			if !alive[u] {
				continue
			}
			for merged := true; merged; {
				merged = false
				for _, v := range poly[u].Neighbors {
					if v == u || !alive[v] {
						continue
					}
					if poly[u].Position.Sub(poly[v].Position).Len() > tol {
						continue
					}
					poly.contract(u, v)
					alive[v] = false
					nMerged++
					merged = true
					changed = true
					break
				}
			}
		}

		// Splice out vertices the contractions left unable to anchor a facet
		// corner: a degree-2 vertex sits in the middle of what is now a
		// single edge, anything smaller is disconnected debris.
		for w := range poly {
			if !alive[w] || len(poly[w].Neighbors) > 2 {
				continue
			}
			switch len(poly[w].Neighbors) {
			case 2:
				a, b := poly[w].Neighbors[0], poly[w].Neighbors[1]
				if a != b {
					poly[a].Neighbors[indexOf(poly[a].Neighbors, w)] = b
					poly[b].Neighbors[indexOf(poly[b].Neighbors, w)] = a
					poly[a].Neighbors = cleanRotation(poly[a].Neighbors, a)
					poly[b].Neighbors = cleanRotation(poly[b].Neighbors, b)
				} else {
					poly[a].Neighbors = removeAll(poly[a].Neighbors, w)
					poly[a].Neighbors = cleanRotation(poly[a].Neighbors, a)
				}
			case 1:
				a := poly[w].Neighbors[0]
				poly[a].Neighbors = removeAll(poly[a].Neighbors, w)
				poly[a].Neighbors = cleanRotation(poly[a].Neighbors, a)
			}
			alive[w] = false
			changed = true
		}
	}

	live := 0
	for i := range poly {
		if alive[i] {
			live++
		}
	}
	if live < 4 {
		*p = poly[:0]
		return
	}

	// Renumber the survivors.
	remap := make([]int, len(poly))
	next := 0
	for i := range poly {
		if alive[i] {
			remap[i] = next
			next++
		} else {
			remap[i] = -1
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

	if nMerged > 0 {
		polyclip.Logger().Debug("collapsed degenerate polyhedron vertices",
			"merged", nMerged, "remaining", live)
	}
}

// contract absorbs neighbor v into u: v's rotation fan (everything but the
// contracted edge) replaces v's slot in u's rotation, preserving the cyclic
// order on the merged vertex, and v's other neighbors are redirected to u.
func (p Polyhedron) contract(u, v int) {
	p[u].unionClips(p[v].Clips)

	vi := indexOf(p[v].Neighbors, u)
	d := len(p[v].Neighbors)
	fan := make([]int, 0, d-1)
	for k := 1; k < d; k++ {
		if w := p[v].Neighbors[(vi+k)%d]; w != u {
			fan = append(fan, w)
		}
	}

	merged := make([]int, 0, len(p[u].Neighbors)+len(fan))
	spliced := false
	for _, nb := range p[u].Neighbors {
		switch {
		case nb == v && !spliced:
			merged = append(merged, fan...)
			spliced = true
		case nb == v:
			// parallel edge to the absorbed vertex, now a loop: drop it
		default:
			merged = append(merged, nb)
		}
	}
	p[u].Neighbors = merged

	for _, w := range fan {
		for s, nb := range p[w].Neighbors {
			if nb == v {
				p[w].Neighbors[s] = u
			}
		}
		p[w].Neighbors = cleanRotation(p[w].Neighbors, w)
	}
	p[u].Neighbors = cleanRotation(p[u].Neighbors, u)
}

// cleanRotation drops self references and cyclically-adjacent duplicates from
// a rotation list. An adjacent duplicate is a facet squeezed down to two
// vertices: the two parallel edges fuse into one.
func cleanRotation(list []int, self int) []int {
	out := make([]int, 0, len(list))
	for _, n := range list {
		if n != self {
			out = append(out, n)
		}
	}
	for {
		removed := false
		for k := 0; k < len(out) && len(out) > 1; k++ {
			if out[k] == out[(k+1)%len(out)] {
				out = append(out[:k], out[k+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return out
}

func removeAll(list []int, x int) []int {
	out := list[:0]
	for _, n := range list {
		if n != x {
			out = append(out, n)
		}
	}
	return out
}
