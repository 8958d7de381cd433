package svgconv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestcore/geomcore/svgconv"
)

func TestConvertRectProducesFourVertexPolygon(t *testing.T) {
	doc := `<svg viewBox="0 0 100 100"><rect x="1" y="2" width="3" height="4"/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, diags, err := svgconv.Convert(root, "part.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, models.Parts, 1)

	for s := range models.Parts {
		require.Len(t, s.Outer, 1)
		require.InDelta(t, 12, s.Outer[0].Area(), 1e-9)
		b := s.Bounds()
		require.InDelta(t, 1, b.MinX, 1e-9)
		require.InDelta(t, 2, b.MinY, 1e-9)
		require.InDelta(t, 4, b.MaxX, 1e-9)
		require.InDelta(t, 6, b.MaxY, 1e-9)
	}
}

func TestConvertDropsZeroOriginRect(t *testing.T) {
	doc := `<svg><rect x="0" y="0" width="10" height="10"/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, diags, err := svgconv.Convert(root, "part.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, models.Parts)
	require.Len(t, diags, 1)
	require.Equal(t, svgconv.DegenerateGeometry, diags[0].Kind)
}

func TestConvertRejectsNonSVGRoot(t *testing.T) {
	doc := `<html></html>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	_, _, err = svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.ErrorIs(t, err, svgconv.ErrNotSVG)
}

func TestConvertSheetAttributeRoutesToSheetMap(t *testing.T) {
	doc := `<svg><rect x="1" y="1" width="100" height="50" sheet="true"/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, _, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, models.Parts)
	require.Len(t, models.Sheets, 1)
}

func TestConvertQuantitiesDefaultToOne(t *testing.T) {
	doc := `<svg><rect x="1" y="1" width="5" height="5"/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, _, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	for _, count := range models.Parts {
		require.Equal(t, 1, count)
	}
}

func TestConvertDesiredQuantityAttribute(t *testing.T) {
	doc := `<svg><rect x="1" y="1" width="5" height="5" desiredQuantity="7"/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, _, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	for _, count := range models.Parts {
		require.Equal(t, 7, count)
	}
}

func TestConvertGroupTransformIsApplied(t *testing.T) {
	doc := `<svg><g transform="translate(10,20)"><rect x="1" y="1" width="2" height="2"/></g></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, diags, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, diags)
	for s := range models.Parts {
		b := s.Bounds()
		require.InDelta(t, 11, b.MinX, 1e-9)
		require.InDelta(t, 21, b.MinY, 1e-9)
	}
}

func TestConvertNestedRectBecomesHole(t *testing.T) {
	doc := `<svg>
		<g>
			<rect x="1" y="1" width="20" height="20"/>
			<rect x="5" y="5" width="3" height="3"/>
		</g>
	</svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, _, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, models.Parts, 1)
	for s := range models.Parts {
		require.Len(t, s.Outer, 1)
		require.Len(t, s.Inner, 1)
	}
}

func TestConvertPathTriangle(t *testing.T) {
	doc := `<svg><path x="1" d="M 1 1 L 10 1 L 5 10 Z"/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	models, diags, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, models.Parts, 1)
}

func TestConvertUnsupportedElementDiagnostic(t *testing.T) {
	doc := `<svg><unknownthing/></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	_, diags, err := svgconv.Convert(root, "x.svg", svgconv.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, diags, 1)
	require.Equal(t, svgconv.UnsupportedElement, diags[0].Kind)
}

func TestConvertTextWithGlyphProvider(t *testing.T) {
	doc := `<svg><text x="0" y="0" font-size="10">AB</text></svg>`
	root, err := svgconv.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	cfg := svgconv.DefaultConfig()
	cfg.Glyphs = svgconv.BoxGlyphProvider{}
	models, diags, err := svgconv.Convert(root, "x.svg", cfg)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, models.Parts, 1)
	for s := range models.Parts {
		require.Len(t, s.Outer, 2)
	}
}
