package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/vector"
)

func TestIdentityIsIdentity(t *testing.T) {
	require.True(t, vector.Identity().IsIdentity(1e-9))
}

func TestTranslateAppliesOffset(t *testing.T) {
	m := vector.Identity().Translate(5, 7)
	p := m.Apply(vector.Point{X: 1, Y: 1})
	require.InDelta(t, 6, p.X, 1e-9)
	require.InDelta(t, 8, p.Y, 1e-9)
}

func TestScaleAppliesFactor(t *testing.T) {
	m := vector.Identity().Scale(2, 3)
	p := m.Apply(vector.Point{X: 1, Y: 1})
	require.InDelta(t, 2, p.X, 1e-9)
	require.InDelta(t, 3, p.Y, 1e-9)
}

func TestRotateAboutOrigin(t *testing.T) {
	m := vector.Identity().Rotate(math.Pi/2, 0, 0)
	p := m.Apply(vector.Point{X: 1, Y: 0})
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 1, p.Y, 1e-9)
}

func TestMulComposesInnerThenOuter(t *testing.T) {
	inner := vector.Identity().Translate(1, 0)
	outer := vector.Identity().Scale(2, 2)
	combined := outer.Mul(inner)
	p := combined.Apply(vector.Point{X: 0, Y: 0})
	// inner translates to (1,0), outer then scales by 2 -> (2,0)
	require.InDelta(t, 2, p.X, 1e-9)
	require.InDelta(t, 0, p.Y, 1e-9)
}

func TestParseTransformStringTranslate(t *testing.T) {
	m := vector.ParseTransformString("translate(10,20)")
	p := m.Apply(vector.Point{X: 0, Y: 0})
	require.InDelta(t, 10, p.X, 1e-9)
	require.InDelta(t, 20, p.Y, 1e-9)
}

func TestParseTransformStringEmptyIsIdentity(t *testing.T) {
	m := vector.ParseTransformString("")
	require.True(t, m.IsIdentity(1e-9))
}
