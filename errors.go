package ncarray

import "errors"

// Error taxonomy. Every failure returned by the package wraps one of these
// sentinels, so callers can match categories with errors.Is. No operation
// retries, logs or truncates; mutating operations validate fully before any
// write, so a returned error always leaves the array unchanged.
var (
	// ErrShape reports an invalid axis-length vector at construction, or
	// initial data whose length does not match the shape product.
	ErrShape = errors.New("ncarray: invalid shape")

	// ErrSelection reports an axis, index or range outside array bounds, or
	// a selection whose arity differs from the array dimensionality.
	ErrSelection = errors.New("ncarray: selection out of bounds")

	// ErrLengthMismatch reports an insertion payload whose length is not
	// the exact multiple required by the targeted axis.
	ErrLengthMismatch = errors.New("ncarray: element length mismatch")

	// ErrOutOfRange reports a shift count exceeding the axis length.
	ErrOutOfRange = errors.New("ncarray: shift out of range")
)
