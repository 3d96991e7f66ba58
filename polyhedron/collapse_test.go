package polyhedron

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestCollapseDegenerates(t *testing.T) {
	t.Run("squeezed top face becomes a pyramid apex", func(t *testing.T) {
		poly, err := NewPolyhedron(degenerateCubePoints1(), cubeNeighbors())
		require.NoError(t, err)
		before, centroidBefore, err := poly.Moments()
		require.NoError(t, err)

		poly.CollapseDegenerates(1e-10)
		checkManifold(t, poly)
		require.Len(t, poly, 5)

		after, centroidAfter, err := poly.Moments()
		require.NoError(t, err)
		require.InDelta(t, before, after, 1e-12)
		require.InDelta(t, centroidBefore.X(), centroidAfter.X(), 1e-12)
		require.InDelta(t, centroidBefore.Y(), centroidAfter.Y(), 1e-12)
		require.InDelta(t, centroidBefore.Z(), centroidAfter.Z(), 1e-12)

		// The apex absorbed four vertices, so it anchors all four slant edges.
		apex := -1
		for i, v := range poly {
			if v.Position.Z() == 1 {
				apex = i
			}
		}
		require.GreaterOrEqual(t, apex, 0)
		require.Len(t, poly[apex].Neighbors, 4)
	})

	t.Run("coincident corner pairs merge", func(t *testing.T) {
		poly, err := NewPolyhedron(degenerateCubePoints2(), cubeNeighbors())
		require.NoError(t, err)
		before, _, err := poly.Moments()
		require.NoError(t, err)

		poly.CollapseDegenerates(1e-10)
		checkManifold(t, poly)
		require.Len(t, poly, 5)
		require.InDelta(t, before, volume(t, poly), 1e-9)
	})

	t.Run("clip sets survive the merge", func(t *testing.T) {
		poly, err := NewPolyhedron(degenerateCubePoints1(), cubeNeighbors())
		require.NoError(t, err)
		poly[4].addClip(1)
		poly[6].addClip(2)

		poly.CollapseDegenerates(1e-10)
		merged := 0
		for _, v := range poly {
			if v.HasClip(1) {
				require.Equal(t, []int{1, 2}, v.ClipIDs())
				merged++
			}
		}
		require.Equal(t, 1, merged)
	})

	t.Run("clean polyhedron is untouched", func(t *testing.T) {
		poly := newNotched(t)
		poly.CollapseDegenerates(1e-10)
		checkManifold(t, poly)
		require.Len(t, poly, 14)
		require.InDelta(t, 7.0, volume(t, poly), 1e-12)
	})

	t.Run("fully degenerate polyhedron collapses to empty", func(t *testing.T) {
		points := make([]mgl64.Vec3, 8)
		for i := range points {
			points[i] = mgl64.Vec3{1, 2, 3}
		}
		poly, err := NewPolyhedron(points, cubeNeighbors())
		require.NoError(t, err)
		poly.CollapseDegenerates(1e-10)
		require.Empty(t, poly)
	})

	t.Run("empty polyhedron is a no-op", func(t *testing.T) {
		poly := Polyhedron{}
		poly.CollapseDegenerates(1e-10)
		require.Empty(t, poly)
	})
}

// TestCollapseAfterClip clips the cube with random planes and collapses the
// result with a coarse tolerance; the volume may only move by what the merged
// edges could sweep, and the boundary graph must stay closed.
func TestCollapseAfterClip(t *testing.T) {
	base := newCube(t)
	rng := rand.New(rand.NewSource(99))

	for iter := 0; iter < 200; iter++ {
		point := mgl64.Vec3{rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10}
		normal := randomUnitVec3(rng)

		poly := base.Clone()
		poly.Clip([]Plane{NewPlaneFromPoint(point, normal)})
		before := volume(t, poly)

		poly.CollapseDegenerates(1e-9 * poly.boundingChord())
		if len(poly) == 0 {
			continue
		}
		checkManifold(t, poly)
		after := volume(t, poly)
		if diff := after - before; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("iteration %d: volume moved from %g to %g", iter, before, after)
		}
	}
}
