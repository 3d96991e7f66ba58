package polyhedron

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NoPlaneID marks a plane built without a caller-assigned id. Vertices cut by
// such a plane still record the sentinel in their clip sets.
const NoPlaneID = math.MinInt

// Plane is a signed half-space in 3D: the plane of points where
// Normal·p + Dist == 0, with Normal the unit outward direction. Points with a
// negative signed distance are below the plane (interior, retained by
// clipping); points with a positive signed distance are above it (exterior,
// clipped away).
//
// Normal must have unit magnitude; the constructors never normalize, and a
// non-unit normal simply scales distances. Planes are immutable value types.
type Plane struct {
	// Dist is the signed distance of the origin to the plane, -p0·Normal for
	// any point p0 on the plane.
	Dist float64
	// Normal is the unit normal pointing toward the exterior half-space.
	Normal mgl64.Vec3
	// ID labels vertices created by this plane during clipping.
	ID int
}

// NewPlane builds a plane from its origin distance and unit normal.
func NewPlane(dist float64, normal mgl64.Vec3) Plane {
	return Plane{Dist: dist, Normal: normal, ID: NoPlaneID}
}

// NewPlaneFromPoint builds the plane through point with the given unit normal.
func NewPlaneFromPoint(point, normal mgl64.Vec3) Plane {
	return Plane{Dist: -point.Dot(normal), Normal: normal, ID: NoPlaneID}
}

// NewPlaneFromPointID builds the plane through point with the given unit
// normal and an id used to label the vertices it cuts.
func NewPlaneFromPointID(point, normal mgl64.Vec3, id int) Plane {
	return Plane{Dist: -point.Dot(normal), Normal: normal, ID: id}
}

// SignedDistance returns point·Normal + Dist: negative below (interior),
// positive above (exterior), zero on the plane.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return point.Dot(p.Normal) + p.Dist
}

// Equal reports whether two planes describe the same half-space. The id is
// ignored, it is provenance metadata rather than geometry.
func (p Plane) Equal(rhs Plane) bool {
	return p.Dist == rhs.Dist && p.Normal == rhs.Normal
}

// Less orders planes lexicographically on (Dist, Normal). The order carries no
// geometric meaning; it exists so plane collections sort deterministically.
func (p Plane) Less(rhs Plane) bool {
	if p.Dist != rhs.Dist {
		return p.Dist < rhs.Dist
	}
	return compareVec3(p.Normal, rhs.Normal) < 0
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane(dist=%g, normal=(%g %g %g))", p.Dist, p.Normal.X(), p.Normal.Y(), p.Normal.Z())
}

// compareVec3 orders vectors lexicographically (x, then y, then z).
func compareVec3(a, b mgl64.Vec3) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
