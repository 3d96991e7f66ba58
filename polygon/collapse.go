package polygon

import (
	"github.com/akmonengine/polyclip"
)

// CollapseDegenerates merges, in place, every pair of neighboring vertices
// closer than tol, until no such pair remains. The surviving vertex keeps its
// position and absorbs the other's clip set. Boundary loops reduced below 3
// vertices enclose no area and are removed entirely; a fully degenerate
// polygon collapses to empty.
//
// Clipping exactly through an existing vertex or edge leaves coincident
// vertices behind; collapsing them restores the clean boundary the moment
// integrator and downstream consumers expect.
func (p *Polygon) CollapseDegenerates(tol float64) {
	poly := *p
	if len(poly) == 0 {
		return
	}

	alive := make([]bool, len(poly))
	for i := range alive {
		alive[i] = true
	}
	nMerged := 0

	// Merge forward along each vertex's next link until the fixed point. Each
	// merge strictly decreases the live count, so this terminates.
	changed := true
	for changed {
		changed = false
		for i := range poly {
			if !alive[i] {
				continue
			}
			for {
				j := poly[i].Neighbors[1]
				if j == i || poly[i].Position.Sub(poly[j].Position).Len() > tol {
					break
				}
				poly[i].unionClips(poly[j].Clips)
				k := poly[j].Neighbors[1]
				poly[i].Neighbors[1] = k
				poly[k].Neighbors[0] = i
				alive[j] = false
				nMerged++
				changed = true
			}
		}
	}

	// Cull loops that can no longer bound area.
	visited := make([]bool, len(poly))
	for i := range poly {
		if !alive[i] || visited[i] {
			continue
		}
		loop := []int{}
		for j := i; !visited[j]; j = poly[j].Neighbors[1] {
			visited[j] = true
			loop = append(loop, j)
		}
		if len(loop) < 3 {
			for _, j := range loop {
				alive[j] = false
			}
		}
	}

	// Renumber the survivors.
	remap := make([]int, len(poly))
	live := 0
	for i := range poly {
		if alive[i] {
			remap[i] = live
			live++
		} else {
			remap[i] = -1
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

	if nMerged > 0 {
		polyclip.Logger().Debug("collapsed degenerate polygon vertices",
			"merged", nMerged, "remaining", live)
	}
}
