package curve

import "errors"

// ErrIterationCap indicates adaptive subdivision exceeded its iteration
// bound before every chord satisfied the requested tolerance. The curve's
// endpoint is still appended to the returned polyline.
var ErrIterationCap = errors.New("curve: linearization iteration cap exceeded")

// maxIterations bounds the adaptive-subdivision work queue so a
// pathological (near-zero tolerance, or degenerate control points) curve
// cannot consume unbounded memory or CPU.
const maxIterations = 4096
