package vector

import "errors"

var (
	// ErrNaNCoordinate indicates a Point constructor was given a NaN coordinate.
	ErrNaNCoordinate = errors.New("vector: coordinate must be finite, got NaN")
)
