package boolean

import "errors"

var (
	// ErrNotConvex indicates the software Provider's minkowski_sum
	// fallback was asked to sum a non-convex operand; only convex
	// operands are supported without a native provider.
	ErrNotConvex = errors.New("boolean: software minkowski_sum requires convex operands")
	// ErrEmptyPath indicates an operation was given zero input paths.
	ErrEmptyPath = errors.New("boolean: at least one path is required")
)
