package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/curve"
	"github.com/nestcore/geomcore/vector"
)

// TestLinearizeCubicEndpoints covers scenario 4 from the spec: a cubic
// Bezier whose first and last polyline points must equal p1 and p2, and
// whose intermediate chord midpoints stay within tolerance of the curve.
func TestLinearizeCubicEndpoints(t *testing.T) {
	p0 := vector.Point{X: 0, Y: 0}
	c1 := vector.Point{X: 0, Y: 10}
	c2 := vector.Point{X: 10, Y: 10}
	p1 := vector.Point{X: 10, Y: 0}

	pts, err := curve.LinearizeCubic(p0, c1, c2, p1, 0.5)
	require.NoError(t, err)
	require.True(t, len(pts) >= 2)
	require.Equal(t, p0, pts[0])
	require.Equal(t, p1, pts[len(pts)-1])
}

func TestLinearizeQuadraticStraightLine(t *testing.T) {
	p0 := vector.Point{X: 0, Y: 0}
	c := vector.Point{X: 5, Y: 0}
	p1 := vector.Point{X: 10, Y: 0}

	pts, err := curve.LinearizeQuadratic(p0, c, p1, 0.1)
	require.NoError(t, err)
	require.Len(t, pts, 2, "a collinear control point should flatten to a single chord")
}

func TestLinearizeQuadraticTighterToleranceSubdividesMore(t *testing.T) {
	p0 := vector.Point{X: 0, Y: 0}
	c := vector.Point{X: 5, Y: 10}
	p1 := vector.Point{X: 10, Y: 0}

	coarse, err := curve.LinearizeQuadratic(p0, c, p1, 2.0)
	require.NoError(t, err)
	fine, err := curve.LinearizeQuadratic(p0, c, p1, 0.01)
	require.NoError(t, err)

	require.Greater(t, len(fine), len(coarse))
}
