package nfp

import "errors"

// ErrTooFewVertices indicates one of the input polygons has fewer than
// the 3 vertices the orbiting algorithm requires.
var ErrTooFewVertices = errors.New("nfp: both polygons must have at least 3 vertices")
