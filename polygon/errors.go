package polygon

import "errors"

// ErrTooFewVertices indicates a polygon was constructed with fewer than
// the 3 vertices a closed boundary requires.
var ErrTooFewVertices = errors.New("polygon: at least 3 vertices are required")
