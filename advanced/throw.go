package advanced

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through the ear clipper, the merge loop and the DP
// backtracking would add a lot of noise. Instead, we use panics, and the public
// API recovers to convert to an error.

type PartitionError error

var (
	ErrTooFewVertices   = errors.New("polygon has fewer than 3 vertices")
	ErrInvalidIndex     = errors.New("contour index out of range")
	ErrRepeatedIndex    = errors.New("contour repeats a vertex")
	ErrNotSimple        = errors.New("contour is not simple")
	ErrOrientation      = errors.New("contour has the wrong orientation")
	ErrUnresolvableHole = errors.New("hole cannot be bridged to an outer contour")
	ErrDegenerate       = errors.New("degenerate geometry")
)

// Panic with a PartitionError.
func fatalf(format string, args ...interface{}) {
	panic(PartitionError(errors.Errorf(format, args...)))
}

// Panic with a PartitionError wrapping one of the sentinel errors above, so
// callers can still match it with errors.Is.
func fatalWrapf(cause error, format string, args ...interface{}) {
	panic(PartitionError(errors.Wrapf(cause, format, args...)))
}

func HandlePartitionPanicRecover(r interface{}) error {
	if r != nil {
		// Runtime errors are bugs, not bad input, so they keep unwinding.
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if partitionError, ok := r.(PartitionError); ok {
			return partitionError
		}
		panic(r)
	}
	return nil
}
