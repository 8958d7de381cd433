package polygon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/vector"
)

func unitSquare(t *testing.T) *polygon.Polygon {
	t.Helper()
	p, err := polygon.New([]vector.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	require.NoError(t, err)
	return p
}

func TestAreaInvariantUnderRotation(t *testing.T) {
	p := unitSquare(t)
	want := math.Abs(p.Area())

	for _, theta := range []float64{0.1, 1.0, math.Pi / 3, 5.0} {
		rotated := p.Rotate(theta, 0.5, 0.5)
		require.InDelta(t, want, math.Abs(rotated.Area()), 1e-9)
	}
}

func TestAreaInvariantUnderTranslation(t *testing.T) {
	p := unitSquare(t)
	want := p.Area()
	translated := p.Translate(3.5, -2.25)
	require.Equal(t, want, translated.Area())
}

func TestContainsThreeValued(t *testing.T) {
	p := unitSquare(t)

	require.Equal(t, polygon.Inside, p.Contains(vector.Point{X: 0.5, Y: 0.5}, 1e-9))
	require.Equal(t, polygon.Outside, p.Contains(vector.Point{X: 2, Y: 2}, 1e-9))
	require.Equal(t, polygon.OnBoundary, p.Contains(vector.Point{X: 0, Y: 0}, 1e-9))
	require.Equal(t, polygon.OnBoundary, p.Contains(vector.Point{X: 0.5, Y: 0}, 1e-9))
}

func TestIsRectangle(t *testing.T) {
	p := unitSquare(t)
	require.True(t, p.IsRectangle(1e-9))

	tri, err := polygon.New([]vector.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}})
	require.NoError(t, err)
	require.False(t, tri.IsRectangle(1e-9))
}

func TestSVGRectArea(t *testing.T) {
	// Scenario 5: <rect x=1 y=2 width=3 height=4> -> area 12, bounds (1,2,3,4).
	p, err := polygon.New([]vector.Point{
		{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6},
	})
	require.NoError(t, err)
	require.InDelta(t, 12.0, math.Abs(p.Area()), 1e-9)
	b := p.Bounds()
	require.Equal(t, polygon.Bounds{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}, b)
	require.InDelta(t, 3.0, b.Width(), 1e-9)
	require.InDelta(t, 4.0, b.Height(), 1e-9)
}

func TestTooFewVertices(t *testing.T) {
	_, err := polygon.New([]vector.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.ErrorIs(t, err, polygon.ErrTooFewVertices)
}
