package unionfind

import "errors"

var (
	// ErrInvalidSize indicates New was called with a non-positive universe size.
	ErrInvalidSize = errors.New("unionfind: size must be > 0")

	// ErrIndexOutOfRange indicates an element id outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)
