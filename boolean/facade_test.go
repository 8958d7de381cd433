package boolean_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/boolean"
)

func TestSoftwareProviderUnionMergesOverlapping(t *testing.T) {
	p := boolean.NewSoftwareProvider(tol)
	a := boolean.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	b := boolean.Path{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}

	out, err := p.Union([]boolean.Path{a}, []boolean.Path{b})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.GreaterOrEqual(t, len(out[0]), 6)
}

func TestSoftwareProviderUnionLeavesDisjointApart(t *testing.T) {
	p := boolean.NewSoftwareProvider(tol)
	a := boolean.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	b := boolean.Path{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}

	out, err := p.Union([]boolean.Path{a}, []boolean.Path{b})
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestSoftwareProviderMinkowskiSumRejectsConcave(t *testing.T) {
	p := boolean.NewSoftwareProvider(tol)
	concave := boolean.Path{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4}}
	square := boolean.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	_, err := p.MinkowskiSum(concave, square)
	require.ErrorIs(t, err, boolean.ErrNotConvex)
}

func TestSoftwareProviderMinkowskiSumConvex(t *testing.T) {
	p := boolean.NewSoftwareProvider(tol)
	a := boolean.Path{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	b := boolean.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	out, err := p.MinkowskiSum(a, b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.GreaterOrEqual(t, len(out[0]), 4)
}

func TestSoftwareProviderCleanRemovesDuplicates(t *testing.T) {
	p := boolean.NewSoftwareProvider(tol)
	dirty := boolean.Path{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	out, err := p.Clean([]boolean.Path{dirty}, tol)
	require.NoError(t, err)
	require.Len(t, out[0], 4)
}

func TestClipperProviderUnionMergesOverlapping(t *testing.T) {
	p := boolean.NewClipperProvider()
	a := boolean.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	b := boolean.Path{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}

	out, err := p.Union([]boolean.Path{a}, []boolean.Path{b})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.GreaterOrEqual(t, len(out[0]), 6)
}

func TestClipperProviderMinkowskiSumHandlesConcave(t *testing.T) {
	p := boolean.NewClipperProvider()
	// Concave: SoftwareProvider rejects this shape with ErrNotConvex, but
	// ClipperProvider's underlying Minkowski sum has no such restriction.
	concave := boolean.Path{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4}}
	square := boolean.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	out, err := p.MinkowskiSum(concave, square)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestClipperProviderOffsetExpandsSquare(t *testing.T) {
	p := boolean.NewClipperProvider()
	square := boolean.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	out, err := p.Offset([]boolean.Path{square}, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)

	minX, minY, maxX, maxY := out[0][0].X, out[0][0].Y, out[0][0].X, out[0][0].Y
	for _, pt := range out[0] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	require.InDelta(t, -1.0, minX, 1e-3)
	require.InDelta(t, -1.0, minY, 1e-3)
	require.InDelta(t, 11.0, maxX, 1e-3)
	require.InDelta(t, 11.0, maxY, 1e-3)
}

func TestClipperProviderCleanRemovesDuplicates(t *testing.T) {
	p := boolean.NewClipperProvider()
	dirty := boolean.Path{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	out, err := p.Clean([]boolean.Path{dirty}, tol)
	require.NoError(t, err)
	require.Len(t, out[0], 4)
}
