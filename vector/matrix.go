package vector

import (
	"math"

	"github.com/nestcore/geomcore/tolerance"
)

// Matrix is a 2x3 affine transform, stored as the composition of a
// sequence of primitive transforms (translate, scale, rotate-around-point,
// skew, raw matrix). The flattened 6-tuple [a b c d e f] (mapping
// (x, y) -> (a*x + c*y + e, b*x + d*y + f)) is computed lazily on first
// query and cached on the node; appending another primitive transform
// produces a new node with no cache, so the cache is naturally
// invalidated by "mutation" (Matrix values are immutable — every
// transform method returns a new Matrix).
type Matrix struct {
	node *matrixNode
}

type matrixNode struct {
	parent *matrixNode
	step   [6]float64 // the primitive transform applied at this node, pre-composed with parent
	flat   *[6]float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{}
}

// IsIdentity reports whether m maps every point to itself within tol.
func (m Matrix) IsIdentity(tol float64) bool {
	f := m.Flatten()
	return tolerance.Equal(f[0], 1, tol) && tolerance.Equal(f[1], 0, tol) &&
		tolerance.Equal(f[2], 0, tol) && tolerance.Equal(f[3], 1, tol) &&
		tolerance.Equal(f[4], 0, tol) && tolerance.Equal(f[5], 0, tol)
}

// Flatten folds the pending primitive-transform sequence into a single
// 6-tuple [a b c d e f], caching the result on the node.
func (m Matrix) Flatten() [6]float64 {
	if m.node == nil {
		return [6]float64{1, 0, 0, 1, 0, 0}
	}
	if m.node.flat != nil {
		return *m.node.flat
	}
	parentFlat := [6]float64{1, 0, 0, 1, 0, 0}
	if m.node.parent != nil {
		parentFlat = (Matrix{node: m.node.parent}).Flatten()
	}
	flat := mulMat(parentFlat, m.node.step)
	m.node.flat = &flat
	return flat
}

// Apply maps p through the flattened transform.
func (m Matrix) Apply(p Point) Point {
	f := m.Flatten()
	return Point{
		X: f[0]*p.X + f[2]*p.Y + f[4],
		Y: f[1]*p.X + f[3]*p.Y + f[5],
	}
}

func (m Matrix) push(step [6]float64) Matrix {
	return Matrix{node: &matrixNode{parent: m.node, step: step}}
}

// Translate appends a translation by (dx, dy).
func (m Matrix) Translate(dx, dy float64) Matrix {
	return m.push([6]float64{1, 0, 0, 1, dx, dy})
}

// Scale appends a scale by (sx, sy) about the origin.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.push([6]float64{sx, 0, 0, sy, 0, 0})
}

// Rotate appends a rotation of angle radians about (cx, cy). Rotation
// about the origin is Rotate(angle, 0, 0).
func (m Matrix) Rotate(angle, cx, cy float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	if cx == 0 && cy == 0 {
		return m.push([6]float64{c, s, -s, c, 0, 0})
	}
	return m.Translate(cx, cy).push([6]float64{c, s, -s, c, 0, 0}).Translate(-cx, -cy)
}

// SkewX appends a horizontal skew by angle radians.
func (m Matrix) SkewX(angle float64) Matrix {
	return m.push([6]float64{1, 0, math.Tan(angle), 1, 0, 0})
}

// SkewY appends a vertical skew by angle radians.
func (m Matrix) SkewY(angle float64) Matrix {
	return m.push([6]float64{1, math.Tan(angle), 0, 1, 0, 0})
}

// MatrixRaw appends a raw 2x3 transform given as [a b c d e f].
func (m Matrix) MatrixRaw(raw [6]float64) Matrix {
	return m.push(raw)
}

// Mul composes m with u so the result applies u first, then m: the same
// "apply the inner transform, then the outer one" convention used
// throughout the SVG transform grammar.
func (m Matrix) Mul(u Matrix) Matrix {
	return m.push(u.Flatten())
}

// mulMat composes two flattened transforms: applying b then a.
func mulMat(a, b [6]float64) [6]float64 {
	return [6]float64{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}
