package kmpp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a call's arguments violate its
	// preconditions (bad shape, mismatched lengths, bad k or threshold).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidK is returned when k is not positive or exceeds the number of points.
	ErrInvalidK = fmt.Errorf("%w: invalid k", ErrInvalidArgument)

	// ErrDegenerateInput is returned when every point coincides with an
	// already chosen centroid, so the sampling weights sum to zero.
	ErrDegenerateInput = errors.New("degenerate input")
)

// ErrDimensionMismatch indicates a point/centroid dimensionality mismatch.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at index %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrLengthMismatch indicates two centroid sets of different lengths were compared.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrLengthMismatch struct {
	New int
	Old int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("centroid count mismatch: new has %d, old has %d", e.New, e.Old)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }
