package shape

import "errors"

// ErrNoOuterPolygons indicates a Shape was constructed with no item
// polygons at all; a Shape's item must be non-empty.
var ErrNoOuterPolygons = errors.New("shape: at least one outer polygon is required")
