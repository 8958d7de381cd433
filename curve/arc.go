package curve

import (
	"math"

	"github.com/nestcore/geomcore/vector"
)

// arcParams is the center parameterization of an SVG elliptical arc,
// derived from its endpoint form by the standard SVG 1.1 Appendix F.6.5
// correction and conversion rules.
type arcParams struct {
	cx, cy float64
	rx, ry float64
	phi    float64 // x-axis rotation, radians
	theta1 float64 // start angle, radians
	dtheta float64 // signed angular extent, radians
}

// endpointToCenter converts an SVG endpoint-form arc to center form,
// scaling up rx/ry per the standard correction rule when the given radii
// cannot reach both endpoints.
func endpointToCenter(p0, p1 vector.Point, rx, ry, phi float64, largeArc, sweep bool) arcParams {
	rx, ry = math.Abs(rx), math.Abs(ry)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if num < 0 {
		num = 0
	}
	denom := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if denom > 0 {
		co = sign * math.Sqrt(num/denom)
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	return arcParams{cx: cx, cy: cy, rx: rx, ry: ry, phi: phi, theta1: theta1, dtheta: dtheta}
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lenU := math.Hypot(ux, uy)
	lenV := math.Hypot(vx, vy)
	cosAngle := dot / (lenU * lenV)
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	angle := math.Acos(cosAngle)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}

func (a arcParams) pointAt(t float64) vector.Point {
	theta := a.theta1 + t*a.dtheta
	cosPhi, sinPhi := math.Cos(a.phi), math.Sin(a.phi)
	ct, st := math.Cos(theta), math.Sin(theta)
	return vector.Point{
		X: a.cx + a.rx*ct*cosPhi - a.ry*st*sinPhi,
		Y: a.cy + a.rx*ct*sinPhi + a.ry*st*cosPhi,
	}
}

type arcSegment struct {
	t0, t1 float64
}

// LinearizeArc flattens the SVG elliptical arc from p0 to p1 (endpoint
// form: rx, ry, x-axis rotation in radians, large-arc and sweep flags)
// into a polyline within tol of the analytic curve. Radii at or below
// tol collapse the arc into its endpoint chord.
func LinearizeArc(p0, p1 vector.Point, rx, ry, phi float64, largeArc, sweep bool, tol float64) ([]vector.Point, error) {
	if rx <= tol || ry <= tol {
		return []vector.Point{p0, p1}, nil
	}
	if p0.Equal(p1, tol) {
		return []vector.Point{p0, p1}, nil
	}

	params := endpointToCenter(p0, p1, rx, ry, phi, largeArc, sweep)

	out := []vector.Point{p0}
	stack := []arcSegment{{0, 1}}
	iterations := 0
	for len(stack) > 0 {
		iterations++
		if iterations > maxIterations {
			out = append(out, p1)
			return out, ErrIterationCap
		}
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if arcFlat(params, seg, tol) {
			out = append(out, params.pointAt(seg.t1))
			continue
		}
		tm := (seg.t0 + seg.t1) / 2
		left := arcSegment{seg.t0, tm}
		right := arcSegment{tm, seg.t1}
		stack = append(stack, right, left)
	}
	return out, nil
}

func arcFlat(params arcParams, seg arcSegment, tol float64) bool {
	p0 := params.pointAt(seg.t0)
	p1 := params.pointAt(seg.t1)
	chordMid := vector.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
	onArcMid := params.pointAt((seg.t0 + seg.t1) / 2)
	dx := chordMid.X - onArcMid.X
	dy := chordMid.Y - onArcMid.Y
	return dx*dx+dy*dy <= tol*tol
}
