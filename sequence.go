// Package seq defines a generic contract for ordered, index addressable
// containers and the cursors used to traverse them.
//
// A Sequence is the capability set shared by fixed arrays, growable vectors,
// linked lists, stacks and queues: size queries, checked and unchecked
// indexed access, forward and backward traversal, insertion and removal by
// position and structural equality.  Concrete containers implement the
// Sequence interface; the package level helpers (First, Find, PopBack,
// Equal, ...) implement the operations that can be derived from the
// primitive ones, and containers may delegate to them.
//
// Sequences and their cursors are not safe for concurrent use.  A cursor is
// invalidated by any operation that changes the length of its sequence or
// relocates its elements.
package seq

import "iter"

// Sequence is an ordered collection of elements of type T.
type Sequence[T comparable] interface {
	// Size returns the number of elements held.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool

	// MaxSize returns the largest number of elements the sequence can hold.
	MaxSize() int

	// Peek returns the element a Pop would remove.  Indexed sequences
	// return the first element.
	Peek() (T, error)

	// First returns the element at index 0, or ErrOutOfRange.
	First() (T, error)

	// Last returns the element at index Size()-1, or ErrOutOfRange.
	Last() (T, error)

	// Rest returns a new sequence holding every element but the first.
	// The receiver is not modified.
	Rest() (Sequence[T], error)

	// Index returns the element at i without bounds checking beyond the
	// runtime's own; the caller guarantees 0 <= i < Size().
	Index(i int) T

	// At returns the element at i, or ErrOutOfRange.
	At(i int) (T, error)

	// SetAt overwrites the element at i, or returns ErrOutOfRange.
	SetAt(i int, v T) error

	// Find returns a cursor on the first element equal to v, or CEnd().
	Find(v T) ConstIterator[T]

	PushFront(v T) error
	PushBack(v T) error

	// Push inserts v at the position defined by the kind of sequence.
	Push(v T) error

	// Insert inserts v immediately before pos.
	Insert(pos Iterator[T], v T) error

	PopFront() (T, error)
	PopBack() (T, error)

	// Pop removes the element defined by the kind of sequence, pairing
	// with Push.
	Pop() (T, error)

	// Remove removes and returns the element at pos.
	Remove(pos Iterator[T]) (T, error)

	// Equal reports whether both sequences have the same size and equal
	// elements in iteration order.
	Equal(other Sequence[T]) bool

	Begin() Iterator[T]
	End() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]

	// RBegin returns a cursor on the last element and REnd the sentinel
	// before the first element.  Traverse them with Prev.
	RBegin() Iterator[T]
	REnd() Iterator[T]

	// All yields index, element pairs front to back.
	All() iter.Seq2[int, T]

	// Backward yields index, element pairs back to front.
	Backward() iter.Seq2[int, T]
}

// Empty reports whether s holds no elements.
func Empty[T comparable](s Sequence[T]) bool {
	return s.Size() == 0
}

// First returns the first element of s.
func First[T comparable](s Sequence[T]) (T, error) {
	if s.Size() == 0 {
		var zero T
		return zero, NewOpError("first", ErrOutOfRange)
	}
	return s.At(0)
}

// Last returns the last element of s.
func Last[T comparable](s Sequence[T]) (T, error) {
	if s.Size() == 0 {
		var zero T
		return zero, NewOpError("last", ErrOutOfRange)
	}
	return s.At(s.Size() - 1)
}

// Find scans s from CBegin to CEnd and returns a cursor on the first
// element equal to v, or CEnd if there is none.
func Find[T comparable](s Sequence[T], v T) ConstIterator[T] {
	for it := s.CBegin(); it.Valid(); it.Next() {
		if x, err := it.Get(); err == nil && x == v {
			return it
		}
	}
	return s.CEnd()
}

// PushFront inserts v before the first element of s.
func PushFront[T comparable](s Sequence[T], v T) error {
	return s.Insert(s.Begin(), v)
}

// PushBack inserts v after the last element of s.
func PushBack[T comparable](s Sequence[T], v T) error {
	return s.Insert(s.End(), v)
}

// PopFront removes and returns the first element of s.
func PopFront[T comparable](s Sequence[T]) (T, error) {
	if s.Size() == 0 {
		var zero T
		return zero, NewOpError("pop_front", ErrEmptyContainer)
	}
	return s.Remove(s.Begin())
}

// PopBack removes and returns the last element of s.
func PopBack[T comparable](s Sequence[T]) (T, error) {
	if s.Size() == 0 {
		var zero T
		return zero, NewOpError("pop_back", ErrEmptyContainer)
	}
	return s.Remove(Retreat(s.End(), 1))
}

// Equal reports whether a and b have the same size and pairwise equal
// elements in iteration order.
func Equal[T comparable](a, b Sequence[T]) bool {
	if a.Size() != b.Size() {
		return false
	}

	i1, i2 := a.CBegin(), b.CBegin()
	for i1.Valid() && i2.Valid() {
		x1, _ := i1.Get()
		x2, _ := i2.Get()
		if x1 != x2 {
			return false
		}
		i1.Next()
		i2.Next()
	}

	return i1.Valid() == i2.Valid()
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b Sequence[T]) bool {
	return !Equal(a, b)
}

// All returns an iterator over the index, element pairs of s, front to
// back.  It is suitable for range-over-func loops.
func All[T comparable](s Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for it := s.CBegin(); it.Valid(); it.Next() {
			v, _ := it.Get()
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over the index, element pairs of s, back
// to front.
func Backward[T comparable](s Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := s.Size() - 1
		for it := s.RBegin(); it.Valid(); it.Prev() {
			v, _ := it.Get()
			if !yield(i, v) {
				return
			}
			i--
		}
	}
}
