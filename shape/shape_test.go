package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/shape"
	"github.com/nestcore/geomcore/vector"
)

func rect(x, y, w, h float64) *polygon.Polygon {
	p, err := polygon.New([]vector.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewRejectsEmptyOuter(t *testing.T) {
	_, err := shape.New(nil, nil, shape.Provenance{})
	require.ErrorIs(t, err, shape.ErrNoOuterPolygons)
}

func TestNewCopiesSlices(t *testing.T) {
	outer := []*polygon.Polygon{rect(0, 0, 1, 1)}
	s, err := shape.New(outer, nil, shape.Provenance{SourceElement: "rect1"})
	require.NoError(t, err)
	require.Len(t, s.Outer, 1)
	require.Equal(t, "rect1", s.Provenance.SourceElement)

	outer[0] = rect(5, 5, 1, 1)
	require.NotEqual(t, outer[0], s.Outer[0])
}

func TestMapAppliesToEveryPolygon(t *testing.T) {
	s, err := shape.New(
		[]*polygon.Polygon{rect(0, 0, 2, 2)},
		[]*polygon.Polygon{rect(0.5, 0.5, 1, 1)},
		shape.Provenance{Filename: "part.svg"},
	)
	require.NoError(t, err)

	moved := s.Map(func(p *polygon.Polygon) *polygon.Polygon {
		return p.Translate(10, 0)
	})

	require.Equal(t, "part.svg", moved.Provenance.Filename)
	require.InDelta(t, 10, moved.Outer[0].Bounds().MinX, 1e-9)
	require.InDelta(t, 10.5, moved.Inner[0].Bounds().MinX, 1e-9)

	// original is untouched
	require.InDelta(t, 0, s.Outer[0].Bounds().MinX, 1e-9)
}

func TestBoundsMergesOuterAndInner(t *testing.T) {
	s, err := shape.New(
		[]*polygon.Polygon{rect(0, 0, 10, 10)},
		[]*polygon.Polygon{rect(20, 20, 1, 1)},
		shape.Provenance{},
	)
	require.NoError(t, err)

	b := s.Bounds()
	require.InDelta(t, 0, b.MinX, 1e-9)
	require.InDelta(t, 0, b.MinY, 1e-9)
	require.InDelta(t, 21, b.MaxX, 1e-9)
	require.InDelta(t, 21, b.MaxY, 1e-9)
}

func TestModelsToPlaceAddPartAndSheet(t *testing.T) {
	m := shape.NewModelsToPlace("layout.svg")
	part, err := shape.New([]*polygon.Polygon{rect(0, 0, 1, 1)}, nil, shape.Provenance{})
	require.NoError(t, err)
	sheet, err := shape.New([]*polygon.Polygon{rect(0, 0, 100, 100)}, nil, shape.Provenance{})
	require.NoError(t, err)

	m.AddPart(part, 3)
	m.AddPart(part, 2)
	m.AddSheet(sheet, 1)

	require.Equal(t, 5, m.Parts[part])
	require.Equal(t, 1, m.Sheets[sheet])
	require.Equal(t, "layout.svg", m.Filename)
}
