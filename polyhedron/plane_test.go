package polyhedron

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestPlane(t *testing.T) {
	t.Run("signed distance", func(t *testing.T) {
		// z = 2, exterior toward +z.
		plane := NewPlaneFromPoint(mgl64.Vec3{0, 0, 2}, mgl64.Vec3{0, 0, 1})
		require.InDelta(t, -2.0, plane.SignedDistance(mgl64.Vec3{4, 5, 0}), 1e-12)
		require.InDelta(t, 0.0, plane.SignedDistance(mgl64.Vec3{-1, 9, 2}), 1e-12)
		require.InDelta(t, 8.0, plane.SignedDistance(mgl64.Vec3{0, 0, 10}), 1e-12)
	})

	t.Run("point and distance constructors agree", func(t *testing.T) {
		normal := mgl64.Vec3{0, 0.6, 0.8}
		a := NewPlaneFromPoint(mgl64.Vec3{3, 4, 5}, normal)
		b := NewPlane(-mgl64.Vec3{3, 4, 5}.Dot(normal), normal)
		require.True(t, a.Equal(b))
		require.Equal(t, NoPlaneID, a.ID)
	})

	t.Run("id does not affect equality", func(t *testing.T) {
		a := NewPlaneFromPointID(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 0}, 4)
		b := NewPlaneFromPoint(mgl64.Vec3{5, 2, -3}, mgl64.Vec3{0, 1, 0})
		require.Equal(t, 4, a.ID)
		require.True(t, a.Equal(b))
	})

	t.Run("ordering", func(t *testing.T) {
		a := NewPlane(-1, mgl64.Vec3{1, 0, 0})
		b := NewPlane(2, mgl64.Vec3{0, 1, 0})
		c := NewPlane(2, mgl64.Vec3{1, 0, 0})
		require.True(t, a.Less(b))
		require.True(t, b.Less(c))
		require.False(t, c.Less(a))
		require.False(t, a.Less(a))
	})
}
