package boolean

import (
	clipper "github.com/go-clipper/clipper2"

	"github.com/nestcore/geomcore/vector"
)

// ClipperProvider adapts github.com/go-clipper/clipper2's integer-
// coordinate Paths64 API to the Provider interface's float64 Path type.
// Float coordinates are scaled by Scale (DefaultClipperScale if zero)
// into int64 space before calling clipper2, and scaled back down on the
// way out.
type ClipperProvider struct {
	Scale        float64
	MiterLimit   float64
	ArcTolerance float64
}

// NewClipperProvider returns a ClipperProvider using DefaultClipperScale
// and clipper2's conventional offset defaults.
func NewClipperProvider() *ClipperProvider {
	return &ClipperProvider{
		Scale:        DefaultClipperScale,
		MiterLimit:   2.0,
		ArcTolerance: 0.25,
	}
}

func (c *ClipperProvider) scale() float64 {
	if c.Scale == 0 {
		return DefaultClipperScale
	}
	return c.Scale
}

func (c *ClipperProvider) toClipper(paths []Path) clipper.Paths64 {
	s := c.scale()
	out := make(clipper.Paths64, len(paths))
	for i, p := range paths {
		cp := make(clipper.Path64, len(p))
		for j, v := range p {
			cp[j] = clipper.Point64{X: int64(v.X * s), Y: int64(v.Y * s)}
		}
		out[i] = cp
	}
	return out
}

func (c *ClipperProvider) fromClipper(paths clipper.Paths64) []Path {
	s := c.scale()
	out := make([]Path, len(paths))
	for i, p := range paths {
		path := make(Path, len(p))
		for j, v := range p {
			path[j] = vector.Point{X: float64(v.X) / s, Y: float64(v.Y) / s}
		}
		out[i] = path
	}
	return out
}

func (c *ClipperProvider) Union(subject, clip []Path) ([]Path, error) {
	return c.booleanOp(clipper.Union, subject, clip)
}

func (c *ClipperProvider) Intersection(subject, clip []Path) ([]Path, error) {
	return c.booleanOp(clipper.Intersection, subject, clip)
}

func (c *ClipperProvider) Difference(subject, clip []Path) ([]Path, error) {
	return c.booleanOp(clipper.Difference, subject, clip)
}

func (c *ClipperProvider) Xor(subject, clip []Path) ([]Path, error) {
	return c.booleanOp(clipper.Xor, subject, clip)
}

func (c *ClipperProvider) booleanOp(op clipper.ClipType, subject, clip []Path) ([]Path, error) {
	if len(subject) == 0 {
		return nil, ErrEmptyPath
	}
	result, err := clipper.BooleanOp64(op, clipper.NonZero, c.toClipper(subject), c.toClipper(clip))
	if err != nil {
		return nil, err
	}
	return c.fromClipper(result), nil
}

// MinkowskiSum delegates to clipper2's own Minkowski sum, which (unlike
// SoftwareProvider's) handles non-convex operands.
func (c *ClipperProvider) MinkowskiSum(a, b Path) ([]Path, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyPath
	}
	result := clipper.MinkowskiSum64(c.toClipper([]Path{a})[0], c.toClipper([]Path{b})[0], true)
	return c.fromClipper(result), nil
}

func (c *ClipperProvider) Simplify(paths []Path, tol float64) ([]Path, error) {
	result := clipper.SimplifyPaths64(c.toClipper(paths), tol*c.scale(), false)
	return c.fromClipper(result), nil
}

func (c *ClipperProvider) Clean(paths []Path, tol float64) ([]Path, error) {
	input := c.toClipper(paths)
	out := make(clipper.Paths64, len(input))
	for i, p := range input {
		out[i] = clipper.StripNearDuplicates(p, tol*c.scale(), true)
	}
	return c.fromClipper(out), nil
}

func (c *ClipperProvider) Offset(paths []Path, delta float64) ([]Path, error) {
	result, err := clipper.InflatePaths64(c.toClipper(paths), delta*c.scale(), clipper.JoinRound, clipper.EndPolygon, clipper.OffsetOptions{
		MiterLimit:   c.MiterLimit,
		ArcTolerance: c.ArcTolerance,
	})
	if err != nil {
		return nil, err
	}
	return c.fromClipper(result), nil
}
