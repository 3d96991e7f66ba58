package polygon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func randomUnitVec2(rng *rand.Rand) mgl64.Vec2 {
	for {
		v := mgl64.Vec2{rng.Float64()*2 - 1, rng.Float64()*2 - 1}
		if l := v.Len(); l > 1e-3 {
			return v.Mul(1 / l)
		}
	}
}

func area(t *testing.T, poly Polygon) float64 {
	t.Helper()
	if len(poly) == 0 {
		return 0
	}
	a, _, err := poly.Moments()
	if err != nil {
		t.Fatalf("moments: %v", err)
	}
	return a
}

func TestClip(t *testing.T) {
	t.Run("empty plane list is a no-op", func(t *testing.T) {
		poly := newSquare(t)
		poly.Clip(nil)
		require.Len(t, poly, 4)
		require.InDelta(t, 100.0, area(t, poly), 1e-12)
	})

	t.Run("clipping an empty polygon stays empty", func(t *testing.T) {
		poly := Polygon{}
		poly.Clip([]Plane{NewPlane(0, mgl64.Vec2{1, 0})})
		require.Empty(t, poly)
	})

	t.Run("plane outside the polygon keeps everything", func(t *testing.T) {
		poly := newSquare(t)
		poly.Clip([]Plane{NewPlaneFromPoint(mgl64.Vec2{20, 0}, mgl64.Vec2{1, 0})})
		require.Len(t, poly, 4)
		require.InDelta(t, 100.0, area(t, poly), 1e-12)
	})

	t.Run("plane below the polygon clips everything", func(t *testing.T) {
		poly := newSquare(t)
		poly.Clip([]Plane{NewPlaneFromPoint(mgl64.Vec2{-1, 0}, mgl64.Vec2{1, 0})})
		require.Empty(t, poly)

		// Planes after the one that emptied the polygon are moot.
		poly = newSquare(t)
		poly.Clip([]Plane{
			NewPlaneFromPoint(mgl64.Vec2{-1, 0}, mgl64.Vec2{1, 0}),
			NewPlaneFromPoint(mgl64.Vec2{5, 5}, mgl64.Vec2{0, 1}),
		})
		require.Empty(t, poly)
	})

	t.Run("half clip", func(t *testing.T) {
		poly := newSquare(t)
		poly.Clip([]Plane{NewPlaneFromPointID(mgl64.Vec2{5, 5}, mgl64.Vec2{1, 0}, 1)})
		checkLinks(t, poly)
		require.Len(t, poly, 4)

		a, centroid, err := poly.Moments()
		require.NoError(t, err)
		require.InDelta(t, 50.0, a, 1e-10)
		require.InDelta(t, 2.5, centroid.X(), 1e-10)
		require.InDelta(t, 5.0, centroid.Y(), 1e-10)

		// The two vertices on the cut carry the plane id, the others none.
		nCut := 0
		for _, v := range poly {
			if v.HasClip(1) {
				nCut++
				require.InDelta(t, 5.0, v.Position.X(), 1e-10)
			} else {
				require.Empty(t, v.ClipIDs())
			}
		}
		require.Equal(t, 2, nCut)
	})

	t.Run("successive planes intersect", func(t *testing.T) {
		poly := newSquare(t)
		poly.Clip([]Plane{
			NewPlaneFromPointID(mgl64.Vec2{4, 0}, mgl64.Vec2{1, 0}, 1),
			NewPlaneFromPointID(mgl64.Vec2{0, 3}, mgl64.Vec2{0, 1}, 2),
		})
		checkLinks(t, poly)

		a, centroid, err := poly.Moments()
		require.NoError(t, err)
		require.InDelta(t, 12.0, a, 1e-10)
		require.InDelta(t, 2.0, centroid.X(), 1e-10)
		require.InDelta(t, 1.5, centroid.Y(), 1e-10)

		// The corner vertex at (4,3) was cut by both planes.
		both := 0
		for _, v := range poly {
			if v.HasClip(1) && v.HasClip(2) {
				both++
				require.Equal(t, []int{1, 2}, v.ClipIDs())
			}
		}
		require.Equal(t, 1, both)
	})

	t.Run("clip through existing vertices retains them", func(t *testing.T) {
		// The main diagonal passes exactly through (0,0) and (10,10); both
		// survive and are labeled, no new vertices appear.
		poly := newSquare(t)
		diag := mgl64.Vec2{1, -1}.Normalize()
		poly.Clip([]Plane{NewPlaneFromPointID(mgl64.Vec2{0, 0}, diag, 5)})
		checkLinks(t, poly)
		require.Len(t, poly, 3)
		require.InDelta(t, 50.0, area(t, poly), 1e-9)

		labeled := 0
		for _, v := range poly {
			if v.HasClip(5) {
				labeled++
			}
		}
		require.Equal(t, 2, labeled)
	})

	t.Run("non-convex cut splits into two loops", func(t *testing.T) {
		// Keeping y >= 1.5 severs the notched polygon at the notch: the arena
		// holds two disjoint loops and the moments still add up.
		poly := newNotched(t)
		poly.Clip([]Plane{NewPlaneFromPoint(mgl64.Vec2{0, 1.5}, mgl64.Vec2{0, -1})})
		checkLinks(t, poly)
		require.Len(t, poly, 8)
		require.InDelta(t, 1.25, area(t, poly), 1e-10)
	})

	t.Run("idempotence", func(t *testing.T) {
		planes := []Plane{NewPlaneFromPoint(mgl64.Vec2{3, 1}, mgl64.Vec2{0.6, 0.8})}
		poly := newNotched(t)
		poly.Clip(planes)
		once := area(t, poly)
		poly.Clip(planes)
		checkLinks(t, poly)
		require.InDelta(t, once, area(t, poly), 1e-10)
	})
}

// TestClipConservation cuts each fixture with a random plane and with the same
// plane reversed; the two pieces must account for the whole area.
func TestClipConservation(t *testing.T) {
	fixtures := []struct {
		name      string
		points    []mgl64.Vec2
		neighbors [][2]int
	}{
		{"square", squarePoints(), squareNeighbors()},
		{"notched", notchedPoints(), notchedNeighbors()},
	}

	rng := rand.New(rand.NewSource(4242))
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			base, err := NewPolygon(fx.points, fx.neighbors)
			require.NoError(t, err)
			total := area(t, base)

			for iter := 0; iter < 1000; iter++ {
				point := mgl64.Vec2{rng.Float64() * 4, rng.Float64() * 2}
				normal := randomUnitVec2(rng)

				p1 := base.Clone()
				p1.Clip([]Plane{NewPlaneFromPointID(point, normal, 1)})
				p2 := base.Clone()
				p2.Clip([]Plane{NewPlaneFromPointID(point, normal.Mul(-1), 2)})
				checkLinks(t, p1)
				checkLinks(t, p2)

				a1, a2 := area(t, p1), area(t, p2)
				if diff := math.Abs(a1 + a2 - total); diff > 1e-8 {
					t.Fatalf("iteration %d: pieces %g + %g != whole %g (plane through %v, normal %v)",
						iter, a1, a2, total, point, normal)
				}
			}
		})
	}
}
