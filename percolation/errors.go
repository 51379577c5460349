package percolation

import "errors"

var (
	// ErrInvalidSize indicates New was called with n ≤ 0.
	ErrInvalidSize = errors.New("percolation: grid size must be > 0")

	// ErrOutOfBounds indicates a row or column outside [1, n].
	ErrOutOfBounds = errors.New("percolation: site out of bounds")
)
