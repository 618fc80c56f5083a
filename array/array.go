// Package array implements a fixed length sequence backed by a single
// contiguous buffer.
//
// The length of an Array is chosen when it is constructed and never changes
// afterwards: the operations of seq.Sequence that would grow or shrink it
// fail with seq.ErrCapacityExceeded or seq.ErrFixedSize, leaving the
// contents untouched.
package array

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	seq "github.com/jake-scott/go-seq"
)

var arrayCounter atomic.Uint32

// Array is a fixed length sequence of elements of type T.  Its buffer is
// owned exclusively by the Array; Clone and Rest copy it.
//
// An Array is not safe for concurrent use.
type Array[T comparable] struct {
	data   []T
	opts   options
	tracer seq.Tracer
}

var _ seq.Sequence[int] = (*Array[int])(nil)

type options struct {
	tracing   bool
	traceFunc seq.TraceFunc
}

// Option customizes an Array at construction time.  Arrays derived from
// another Array by Clone or Rest inherit its options.
type Option func(o *options)

// WithTraceFunc sets the trace function for the array.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f seq.TraceFunc) Option {
	return func(o *options) {
		o.traceFunc = f
	}
}

// WithTracing enables tracing for the array.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to stderr
// by seq.DefaultTracer.
//
// A traced array reports its construction, values dropped by construction,
// and every operation it rejects.
func WithTracing(enable bool) Option {
	return func(o *options) {
		o.tracing = enable
	}
}

func (o *options) processOptions(opts ...Option) {
	for _, f := range opts {
		f(o)
	}
}

func newArray[T comparable](n int, opts []Option, description string, v ...any) *Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("array: negative length %d", n))
	}

	a := &Array[T]{
		data:   make([]T, n),
		tracer: seq.NullTracer{},
	}
	a.opts.processOptions(opts...)

	if a.opts.tracing {
		var t T
		description = fmt.Sprintf("(%T) %s", t, description)
		a.tracer = seq.NewTracer("array", arrayCounter.Add(1), description, a.opts.traceFunc, v...)
	}

	return a
}

// New returns an array of n zero valued elements.  It panics if n is
// negative.
func New[T comparable](n int, opts ...Option) *Array[T] {
	return newArray[T](n, opts, "New(%d)", n)
}

// FromSlice returns an array of n elements whose leading elements are copied
// from values, in order.  If values is shorter than n the remaining elements
// are zero valued; if it is longer, the trailing values are ignored.
//
// Example:
//
//	a := FromSlice(5, []int{1, 2, 3}) // [1 2 3 0 0]
func FromSlice[T comparable](n int, values []T, opts ...Option) *Array[T] {
	a := newArray[T](n, opts, "FromSlice(%d, len=%d)", n, len(values))
	copy(a.data, values)
	if dropped := len(values) - n; dropped > 0 {
		a.tracer.Msg("ignored %d trailing values", dropped)
	}
	return a
}

// Of returns an array holding exactly values.
func Of[T comparable](values ...T) *Array[T] {
	return FromSlice(len(values), values)
}

// Filled returns an array of n elements all set to v.
func Filled[T comparable](n int, v T, opts ...Option) *Array[T] {
	a := newArray[T](n, opts, "Filled(%d)", n)
	a.Fill(v)
	return a
}

// FromStream returns an array of n elements whose leading elements are read
// from s, in order.  At most n elements are read; if s ends early the
// remaining elements are zero valued.  An error from s, or the
// cancellation of ctx, is returned instead of the array.
func FromStream[T comparable](ctx context.Context, n int, s seq.Stream[T], opts ...Option) (*Array[T], error) {
	a := newArray[T](n, opts, "FromStream(%d)", n)

	i := 0
	for i < n && s.Next(ctx) {
		a.data[i] = s.Get()
		i++
	}
	if err := s.Error(); err != nil {
		a.tracer.Msg("stream failed after %d values: %v", i, err)
		return nil, err
	}

	return a, nil
}

func (a *Array[T]) derive(data []T, description string, v ...any) *Array[T] {
	return &Array[T]{
		data:   data,
		opts:   a.opts,
		tracer: a.tracer.SubTracer(description, v...),
	}
}

func (a *Array[T]) fail(err *seq.OpError) error {
	a.tracer.Msg("%v", err)
	return err
}

// Data returns the buffer owned by the array.  Writes through the returned
// slice are visible in the array.  The slice must not be used after the
// array's contents are swapped away by Swap.
func (a *Array[T]) Data() []T {
	return a.data
}

// Fill sets every element of the array to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a new array with a copy of the receiver's buffer.
func (a *Array[T]) Clone() *Array[T] {
	return a.derive(slices.Clone(a.data), "Clone")
}

// Swap exchanges the contents of a and other, which must have the same
// length.
func (a *Array[T]) Swap(other *Array[T]) error {
	if other == nil || len(a.data) != len(other.data) {
		return a.fail(seq.NewOpError("swap", seq.ErrSizeMismatch))
	}
	a.data, other.data = other.data, a.data
	return nil
}

// CopyFrom overwrites the elements of a with the elements of s, in
// iteration order.  s must have the same size as a.
func (a *Array[T]) CopyFrom(s seq.Sequence[T]) error {
	if o, ok := s.(*Array[T]); ok {
		if o == nil || len(o.data) != len(a.data) {
			return a.fail(seq.NewOpError("copy", seq.ErrSizeMismatch))
		}
		copy(a.data, o.data)
		return nil
	}
	if s == nil || s.Size() != len(a.data) {
		return a.fail(seq.NewOpError("copy", seq.ErrSizeMismatch))
	}

	i := 0
	for it := s.CBegin(); it.Valid(); it.Next() {
		a.data[i], _ = it.Get()
		i++
	}
	return nil
}

func (a *Array[T]) String() string {
	return "Array" + fmt.Sprint(a.data)
}
