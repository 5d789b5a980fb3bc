package plot

import (
	"errors"
	"fmt"
)

// Recoverable user-input errors. Each is reported and the corresponding
// prompt re-issued; none terminates a run.
var (
	// ErrInvalidDomain indicates domain bounds that do not parse or are
	// not ordered low < high.
	ErrInvalidDomain = errors.New("plot: invalid domain")

	// ErrInvalidOption indicates an empty required presentation field.
	ErrInvalidOption = errors.New("plot: invalid option")

	// ErrMalformedPoint indicates a coordinate segment that is not two
	// real numbers separated by a comma.
	ErrMalformedPoint = errors.New("plot: malformed point")

	// ErrNoPoints indicates an empty coordinate list.
	ErrNoPoints = errors.New("plot: coordinate list needs at least one point")
)

// PointError names the offending segment of a coordinate list. The whole
// list is rejected together; there is no partial acceptance.
type PointError struct {
	Segment string
}

func (e *PointError) Error() string {
	return fmt.Sprintf("plot: malformed point %q (want x,y)", e.Segment)
}

func (e *PointError) Unwrap() error {
	return ErrMalformedPoint
}
