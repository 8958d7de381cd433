package svgconv

import "github.com/nestcore/geomcore/vector"

// GlyphPathProvider resolves one character, set in a given font family
// at a given size (SVG user units), to the outline polygons that
// render it. Implementations may rasterize nothing; they only need to
// return closed polygon boundaries. A provider that does not know a
// face or rune returns a nil slice, not an error — the caller treats
// an empty result as "this glyph contributes no geometry" rather than
// a hard failure.
type GlyphPathProvider interface {
	GlyphPaths(r rune, fontFamily string, size float64) [][]vector.Point
}

// BoxGlyphProvider is a trivial GlyphPathProvider useful for tests and
// for pipelines that only need placeholder geometry for text: every
// non-space glyph becomes a size*0.6 wide, size tall rectangle advancing
// left to right.
type BoxGlyphProvider struct{}

func (BoxGlyphProvider) GlyphPaths(r rune, _ string, size float64) [][]vector.Point {
	if r == ' ' {
		return nil
	}
	w := size * 0.6
	return [][]vector.Point{{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: size},
		{X: 0, Y: size},
	}}
}
