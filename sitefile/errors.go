package sitefile

import "errors"

var (
	// ErrMalformed indicates input that does not follow the scenario format.
	ErrMalformed = errors.New("sitefile: malformed input")

	// ErrEmpty indicates input without a size header.
	ErrEmpty = errors.New("sitefile: empty input")
)
