package nfp

import (
	"github.com/nestcore/geomcore/polygon"
	"github.com/nestcore/geomcore/vector"
)

// RectangleInterior returns the axis-aligned interior NFP when both A
// and B are axis-aligned rectangles and B fits inside A. The reference
// vertex is B's own first vertex (its bounding-box min corner, by
// construction of IsRectangle's corner set). ok is false when either
// polygon is not a rectangle, or B does not fit inside A.
func RectangleInterior(a, b *polygon.Polygon, tol float64) (loop []vector.Point, ok bool) {
	if !a.IsRectangle(tol) || !b.IsRectangle(tol) {
		return nil, false
	}
	ab, bb := a.Bounds(), b.Bounds()
	if bb.Width() > ab.Width()+tol || bb.Height() > ab.Height()+tol {
		return nil, false
	}

	minX := ab.MinX - bb.MinX
	minY := ab.MinY - bb.MinY
	maxX := minX + (ab.Width() - bb.Width())
	maxY := minY + (ab.Height() - bb.Height())

	return []vector.Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}, true
}
