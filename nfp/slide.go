package nfp

import (
	"github.com/nestcore/geomcore/segment"
	"github.com/nestcore/geomcore/vector"
)

// PolygonSlideDistance computes the smallest non-negative multiple d of
// v such that translating every vertex of B by d*v brings some edge of
// B into contact with some edge of A, without penetration: for each
// pair of edges it evaluates segment.SegmentDistance(edgeB, edgeA, v)
// and keeps the minimum feasible candidate across all pairs. When
// ignoreNegative is true, a pair reporting a negative distance
// (existing overlap) contributes 0 rather than being rejected.
func PolygonSlideDistance(a, b []vector.Point, v vector.Vector, ignoreNegative bool, tol float64) (float64, bool) {
	na, nb := len(a), len(b)
	found := false
	best := 0.0

	for i := 0; i < na; i++ {
		a0, a1 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			b0, b1 := b[j], b[(j+1)%nb]
			d, ok := segment.SegmentDistance(b0, b1, a0, a1, v, tol)
			if !ok {
				continue
			}
			if d < 0 {
				if !ignoreNegative {
					continue
				}
				d = 0
			}
			if !found || d < best {
				best = d
				found = true
			}
		}
	}
	return best, found
}

// PolygonProjectionDistance returns, for each vertex of B, the smallest
// travel along dir that lands it on some edge of A, then returns the
// largest such per-vertex value: the distance the whole of B can
// advance along dir before its first vertex reaches A's boundary.
func PolygonProjectionDistance(a, b []vector.Point, dir vector.Vector, tol float64) (float64, bool) {
	na := len(a)
	found := false
	worst := 0.0

	for _, bv := range b {
		vertexFound := false
		vertexBest := 0.0
		for i := 0; i < na; i++ {
			a0, a1 := a[i], a[(i+1)%na]
			d, ok := segment.PointDistance(bv, a0, a1, dir, false, tol)
			if !ok {
				continue
			}
			if !vertexFound || d < vertexBest {
				vertexBest = d
				vertexFound = true
			}
		}
		if !vertexFound {
			continue
		}
		if !found || vertexBest > worst {
			worst = vertexBest
			found = true
		}
	}
	return worst, found
}
