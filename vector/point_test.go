package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/vector"
)

func TestNewPointRejectsNaN(t *testing.T) {
	_, err := vector.NewPoint(1, math.NaN())
	require.ErrorIs(t, err, vector.ErrNaNCoordinate)
}

func TestPointSubAndAddRoundtrip(t *testing.T) {
	p := vector.Point{X: 3, Y: 4}
	q := vector.Point{X: 1, Y: 1}
	v := p.Sub(q)
	require.Equal(t, vector.Vector{DX: 2, DY: 3}, v)
	require.Equal(t, p, q.Add(v))
}

func TestPointDistance(t *testing.T) {
	p := vector.Point{X: 0, Y: 0}
	q := vector.Point{X: 3, Y: 4}
	require.InDelta(t, 5, p.Distance(q), 1e-9)
}

func TestVectorDotAndCross(t *testing.T) {
	a := vector.Vector{DX: 1, DY: 0}
	b := vector.Vector{DX: 0, DY: 1}
	require.InDelta(t, 0, a.Dot(b), 1e-9)
	require.InDelta(t, 1, a.Cross(b), 1e-9)
}

func TestVectorNormalized(t *testing.T) {
	v := vector.Vector{DX: 3, DY: 4}
	n := v.Normalized(1e-9)
	require.InDelta(t, 1, n.Length(), 1e-9)
}

func TestVectorNormalizedZeroVectorUnchanged(t *testing.T) {
	v := vector.Vector{}
	require.Equal(t, v, v.Normalized(1e-9))
}
