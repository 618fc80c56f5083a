// Package cursor implements a stream that traverses the elements of a
// seq.Sequence, front to back or back to front.
//
// Iterator supports the seq.Sizer interface.
package cursor

import (
	"context"

	seq "github.com/jake-scott/go-seq"
)

type options struct {
	reverse bool
}

// Option customizes the traversal of an Iterator.
type Option func(o *options)

// Reverse makes the iterator start from the last element and walk towards
// the first.
func Reverse(enable bool) Option {
	return func(o *options) {
		o.reverse = enable
	}
}

// Iterator traverses the elements of a sequence of type T.
//
// The sequence must not change length while it is being traversed.
type Iterator[T comparable] struct {
	s    seq.Sequence[T]
	c    seq.ConstIterator[T]
	opts options
	done bool
	err  error
}

var _ seq.Stream[int] = (*Iterator[int])(nil)

// New returns an implementation of seq.Stream that traverses the
// provided sequence.  The iterator returned supports the seq.Sizer
// interface.
func New[T comparable](s seq.Sequence[T], opts ...Option) Iterator[T] {
	it := Iterator[T]{
		s: s,
	}
	for _, f := range opts {
		f(&it.opts)
	}
	return it
}

// Size returns the size of the underlying sequence, implementing the
// seq.Sizer interface.
func (r *Iterator[T]) Size() uint {
	return uint(r.s.Size())
}

// Next advances the iterator to the next element of the underlying
// sequence.  It returns false when the traversal has reached a sentinel
// or the context is cancelled.
func (r *Iterator[T]) Next(ctx context.Context) bool {
	if r.done {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	switch {
	case r.c == nil && r.opts.reverse:
		r.c = r.s.RBegin().Const()
	case r.c == nil:
		r.c = r.s.CBegin()
	case r.opts.reverse:
		r.c.Prev()
	default:
		r.c.Next()
	}

	if !r.c.Valid() {
		r.done = true
		return false
	}
	return true
}

// Get returns the element of the underlying sequence that the iterator
// refers to, or the zero value of T before the first call to Next and
// after the traversal has finished.
func (r *Iterator[T]) Get() T {
	if r.c == nil {
		var zero T
		return zero
	}

	v, _ := r.c.Get()
	return v
}

// Error returns the context's error if the context is cancelled
// during a call to Next()
func (r *Iterator[T]) Error() error {
	return r.err
}
