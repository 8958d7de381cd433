// Package polygon implements the data model and derived-attribute
// queries for closed polygonal boundaries: area, bounds, centroid,
// perimeter, containment, and rectangle detection. Vertices are deep
// copied on construction and the vertex sequence is logically immutable
// afterward; derived attributes are computed lazily and cached on the
// polygon, exactly as spec.md's Polygon invariants describe.
package polygon
