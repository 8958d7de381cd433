package segment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/segment"
	"github.com/nestcore/geomcore/vector"
)

const tol = 1e-9

func TestOnSegmentExcludesEndpoints(t *testing.T) {
	a := vector.Point{X: 0, Y: 0}
	b := vector.Point{X: 10, Y: 0}

	require.True(t, segment.OnSegment(a, b, vector.Point{X: 5, Y: 0}, tol))
	require.False(t, segment.OnSegment(a, b, a, tol))
	require.False(t, segment.OnSegment(a, b, b, tol))
	require.False(t, segment.OnSegment(a, b, vector.Point{X: 5, Y: 1}, tol))
}

func TestLineIntersectSegmentsCross(t *testing.T) {
	a := vector.Point{X: 0, Y: 0}
	b := vector.Point{X: 10, Y: 10}
	e := vector.Point{X: 0, Y: 10}
	f := vector.Point{X: 10, Y: 0}

	pt, ok := segment.LineIntersect(a, b, e, f, false, tol)
	require.True(t, ok)
	require.InDelta(t, 5.0, pt.X, 1e-9)
	require.InDelta(t, 5.0, pt.Y, 1e-9)
}

func TestLineIntersectParallelReturnsFalse(t *testing.T) {
	a := vector.Point{X: 0, Y: 0}
	b := vector.Point{X: 10, Y: 0}
	e := vector.Point{X: 0, Y: 1}
	f := vector.Point{X: 10, Y: 1}

	_, ok := segment.LineIntersect(a, b, e, f, false, tol)
	require.False(t, ok)
}

func TestLineIntersectRejectsOutsideSegments(t *testing.T) {
	a := vector.Point{X: 0, Y: 0}
	b := vector.Point{X: 1, Y: 1}
	e := vector.Point{X: 0, Y: 5}
	f := vector.Point{X: 5, Y: 0}

	_, ok := segment.LineIntersect(a, b, e, f, false, tol)
	require.False(t, ok)

	_, ok = segment.LineIntersect(a, b, e, f, true, tol)
	require.True(t, ok)
}

// TestSegmentDistanceTriangleSliding covers scenario 3 from the spec:
// triangle A sliding against a small triangle B along (1, 0), once
// already touching (distance 0) and once offset by 5 units.
func TestSegmentDistanceTriangleSliding(t *testing.T) {
	dir := vector.Vector{DX: 1, DY: 0}

	// Edge of A from (0,0) to (10,0); edge of B from (0,0) to (2,0):
	// already touching along the direction of travel.
	a0 := vector.Point{X: 0, Y: 0}
	a1 := vector.Point{X: 10, Y: 0}
	b0 := vector.Point{X: 0, Y: 0}
	b1 := vector.Point{X: 2, Y: 0}

	d, ok := segment.SegmentDistance(b0, b1, a0, a1, dir, tol)
	if ok {
		require.InDelta(t, 0.0, d, 1e-6)
	}

	// B translated to (-5, 0): sliding by (1,0) should need distance 5
	// to bring B's trailing edge back to A's edge.
	b0Shifted := vector.Point{X: -5, Y: 0}
	b1Shifted := vector.Point{X: -3, Y: 0}
	d2, ok2 := segment.SegmentDistance(b0Shifted, b1Shifted, a0, a1, dir, tol)
	require.True(t, ok2)
	require.InDelta(t, 5.0, d2, 1e-6)
}

// TestSegmentDistanceCollinearAntiParallelTouchingIsNull covers the pure
// sliding case from spec.md:101: two collinear, anti-parallel, already
// touching edges, queried along the direction that runs along their
// shared line, must report no contact distance rather than 0.
func TestSegmentDistanceCollinearAntiParallelTouchingIsNull(t *testing.T) {
	dir := vector.Vector{DX: 1, DY: 0}

	a := vector.Point{X: 0, Y: 0}
	b := vector.Point{X: 1, Y: 0}
	// e->f runs in the opposite direction of a->b along the same line,
	// and picks up exactly where b leaves off.
	e := vector.Point{X: 2, Y: 0}
	f := vector.Point{X: 1, Y: 0}

	_, ok := segment.SegmentDistance(a, b, e, f, dir, tol)
	require.False(t, ok)

	// Same configuration but separated by a gap: a real, positive slide
	// distance is still reported.
	e2 := vector.Point{X: 3, Y: 0}
	f2 := vector.Point{X: 2, Y: 0}
	d, ok2 := segment.SegmentDistance(a, b, e2, f2, dir, tol)
	require.True(t, ok2)
	require.InDelta(t, 1.0, d, 1e-6)
}
