package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked accessors (At, First, Last, ...)
	// when the requested element does not exist.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer is returned when an element is removed from a
	// sequence that holds none.
	ErrEmptyContainer = errors.New("empty container")

	// ErrCapacityExceeded is returned when an insertion would grow a
	// sequence beyond its capacity.  Fixed size sequences always return it.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidIterator is returned when an iterator is not dereferenceable
	// or does not belong to the receiver.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrFixedSize is returned when an element is removed from a sequence
	// whose length cannot change.
	ErrFixedSize = errors.New("sequence has a fixed size")

	// ErrSizeMismatch is returned by whole-sequence operations (swap, copy)
	// between sequences of different lengths.
	ErrSizeMismatch = errors.New("size mismatch")
)

// OpError records the operation that failed along with the underlying
// sentinel error.  Use errors.Is to test for the sentinel.
type OpError struct {
	Op  string
	Err error
}

// NewOpError returns an error for a failed operation op.
func NewOpError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

// NewIndexError returns an error for a failed operation on index i.
func NewIndexError(op string, i int, err error) *OpError {
	return &OpError{Op: fmt.Sprintf("%s(%d)", op, i), Err: err}
}

func (e *OpError) Error() string {
	return "seq: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
