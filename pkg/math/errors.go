package math

import "errors"

var (
	// ErrSingularMatrix is returned by TryInvert when the determinant is zero.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrZeroLength is returned by TryNormalize for a zero-length value.
	ErrZeroLength = errors.New("zero length")
)
