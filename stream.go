package seq

import (
	"context"
)

// Stream is a pull iterator for one-directional, possibly cancellable
// traversal of a sequence or of any other source of elements.  Array
// construction can consume a Stream, and the iter/cursor package produces
// one from any Sequence.
type Stream[T any] interface {
	// Next advances the stream to the next element.
	// Returns true if the stream advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns the current element, or the zero value of T before the
	// first call to Next
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Sizer can be implemented by a stream that knows the number of elements
// it will produce when it is initialized
type Sizer interface {
	Size() uint
}
