package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the containers in this package.
var (
	// ErrUnsupportedOperation is returned by every mutator of an
	// unmodifiable view or of a cast immutable container.
	ErrUnsupportedOperation = errors.New("collections: unsupported operation")

	// ErrIndexOutOfRange is returned when an index is outside [0, Size()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNegativeOccurrences is returned when a bag is asked to add or
	// remove a negative number of occurrences.
	ErrNegativeOccurrences = errors.New("collections: occurrences must not be negative")

	// ErrMismatchedLengths is returned by MapFromKeysValues when the key and
	// value slices have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the container is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")
)

func unsupported(op string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}
