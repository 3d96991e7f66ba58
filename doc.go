// Package polyclip clips faceted volumes (polygons and polyhedra) by sets of
// planes, in place, and integrates the moments (area/volume and centroid) of
// the results.
//
// A polytope is stored as a flat arena of vertices, each holding a position
// and an ordered list of neighbor indices: a single cycle in 2D, a
// rotation-system (planar graph embedding) in 3D from which facets are
// recovered on demand. Clipping a plane classifies every vertex against the
// plane's signed distance, splits crossing edges by linear interpolation,
// rewires the boundary along the cut, and excises everything on the positive
// (exterior) side. Vertices created or grazed by a cut record the clipping
// plane's id, so downstream consumers can reconstruct which plane produced
// each boundary feature.
//
// The clipping scheme follows R3D as described in:
//
//	Powell, D., & Abel, T. (2015). An exact general remeshing scheme applied
//	to physically conservative voxelization. Journal of Computational
//	Physics, 297, 340-356.
//
// The 2D kernel lives in polygon, the 3D kernel in polyhedron. This package
// only carries the shared logger configuration.
package polyclip
