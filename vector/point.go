package vector

import (
	"math"

	"github.com/nestcore/geomcore/tolerance"
)

// Point is an ordered pair of finite coordinates. Marked is a transient
// flag that never participates in equality or geometric computation;
// the nfp package keeps its per-run vertex marks in a separate slice
// and does not read it.
type Point struct {
	X, Y   float64
	Marked bool
}

// NewPoint validates that x and y are finite before returning a Point.
func NewPoint(x, y float64) (Point, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Point{}, ErrNaNCoordinate
	}
	return Point{X: x, Y: y}, nil
}

// Equal reports whether p and q are within tol of each other on both axes.
func (p Point) Equal(q Point, tol float64) bool {
	return tolerance.Equal(p.X, q.X, tol) && tolerance.Equal(p.Y, q.Y, tol)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Translate returns p shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Vector is an ordered pair (dx, dy) representing a direction and magnitude.
type Vector struct {
	DX, DY float64
}

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) float64 {
	return v.DX*u.DX + v.DY*u.DY
}

// Cross returns the z-component of the 3D cross product of v and u.
func (v Vector) Cross(u Vector) float64 {
	return v.DX*u.DY - v.DY*u.DX
}

// LengthSquared returns the squared length of v, avoiding a sqrt.
func (v Vector) LengthSquared() float64 {
	return v.DX*v.DX + v.DY*v.DY
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{DX: v.DX * s, DY: v.DY * s}
}

// Normalized returns v scaled to unit length. If v is already within
// tol² of unit length the input is returned unchanged (idempotent on
// near-unit inputs). The zero vector normalizes to itself.
func (v Vector) Normalized(tol float64) Vector {
	lenSq := v.LengthSquared()
	if tolerance.Equal(lenSq, 1, tol*tol) {
		return v
	}
	if lenSq <= tol*tol {
		return v
	}
	l := math.Sqrt(lenSq)
	return Vector{DX: v.DX / l, DY: v.DY / l}
}
