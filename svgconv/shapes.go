package svgconv

import (
	"errors"
	"math"

	"github.com/nestcore/geomcore/curve"
	"github.com/nestcore/geomcore/vector"
)

var errDegenerate = errors.New("svgconv: degenerate geometry")

// rectPoints builds a four-vertex rectangle. A zero-origin rectangle
// is rejected: OnShape's SVG export emits one as a page-bounds
// artifact, never as real part geometry.
func rectPoints(x, y, w, h float64) ([]vector.Point, error) {
	if x == 0 && y == 0 {
		return nil, errDegenerate
	}
	if w <= 0 || h <= 0 {
		return nil, errDegenerate
	}
	return []vector.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}, nil
}

// circleTolerance tightens cfg's chord tolerance, if necessary, so
// that an adaptively-linearized circle of radius r never falls below
// cfg.CircleSegments segments.
func circleTolerance(r float64, cfg Config) float64 {
	if r <= 0 || cfg.CircleSegments < 3 {
		return cfg.Tolerance
	}
	minSegTol := r * (1 - math.Cos(math.Pi/float64(cfg.CircleSegments)))
	if minSegTol < cfg.Tolerance {
		return minSegTol
	}
	return cfg.Tolerance
}

// ellipsePoints builds a polygon approximating the ellipse as two
// opposing half-arcs, each linearized by the curve package.
func ellipsePoints(cx, cy, rx, ry float64, cfg Config) ([]vector.Point, error) {
	if rx <= cfg.Tolerance || ry <= cfg.Tolerance {
		return nil, errDegenerate
	}
	tol := circleTolerance(math.Min(rx, ry), cfg)

	p0 := vector.Point{X: cx + rx, Y: cy}
	pHalf := vector.Point{X: cx - rx, Y: cy}

	first, _ := curve.LinearizeArc(p0, pHalf, rx, ry, 0, false, true, tol)
	second, _ := curve.LinearizeArc(pHalf, p0, rx, ry, 0, false, true, tol)
	if len(first) < 2 || len(second) < 2 {
		return nil, errDegenerate
	}

	pts := make([]vector.Point, 0, len(first)+len(second)-2)
	pts = append(pts, first[:len(first)-1]...)
	pts = append(pts, second[:len(second)-1]...)
	return pts, nil
}
