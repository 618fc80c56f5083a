package array

import (
	"iter"
	"slices"

	seq "github.com/jake-scott/go-seq"
)

// Size returns the length of the array, which never changes.
func (a *Array[T]) Size() int {
	return len(a.data)
}

func (a *Array[T]) Empty() bool {
	return len(a.data) == 0
}

// MaxSize returns the capacity of the array, which is its length.
func (a *Array[T]) MaxSize() int {
	return len(a.data)
}

// Peek is the same as First.
func (a *Array[T]) Peek() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, a.fail(seq.NewOpError("peek", seq.ErrOutOfRange))
	}
	return a.data[0], nil
}

func (a *Array[T]) First() (T, error) {
	v, err := seq.First[T](a)
	if err != nil {
		a.tracer.Msg("%v", err)
	}
	return v, err
}

func (a *Array[T]) Last() (T, error) {
	v, err := seq.Last[T](a)
	if err != nil {
		a.tracer.Msg("%v", err)
	}
	return v, err
}

// Rest returns a new array, one element shorter, holding every element of
// the receiver except the first.  It returns seq.ErrEmptyContainer for an
// empty array.
func (a *Array[T]) Rest() (seq.Sequence[T], error) {
	if len(a.data) == 0 {
		return nil, a.fail(seq.NewOpError("rest", seq.ErrEmptyContainer))
	}
	return a.derive(slices.Clone(a.data[1:]), "Rest"), nil
}

// Index returns the element at i.  An index outside [0, Size()) is a
// caller error and panics.
func (a *Array[T]) Index(i int) T {
	return a.data[i]
}

func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, a.fail(seq.NewIndexError("at", i, seq.ErrOutOfRange))
	}
	return a.data[i], nil
}

func (a *Array[T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return a.fail(seq.NewIndexError("set_at", i, seq.ErrOutOfRange))
	}
	a.data[i] = v
	return nil
}

func (a *Array[T]) Find(v T) seq.ConstIterator[T] {
	return seq.Find[T](a, v)
}

func (a *Array[T]) PushFront(v T) error {
	return seq.PushFront[T](a, v)
}

func (a *Array[T]) PushBack(v T) error {
	return seq.PushBack[T](a, v)
}

// Push appends at the back, so it always fails with
// seq.ErrCapacityExceeded.
func (a *Array[T]) Push(v T) error {
	return a.Insert(a.End(), v)
}

// Insert rejects every insertion: an array is always at capacity.  A cursor
// that does not belong to a, or that sits before the first element, is
// reported as seq.ErrInvalidIterator, anything else as
// seq.ErrCapacityExceeded.
func (a *Array[T]) Insert(pos seq.Iterator[T], v T) error {
	if it, ok := a.owned(pos); !ok || it.pos < 0 {
		return a.fail(seq.NewOpError("insert", seq.ErrInvalidIterator))
	}
	return a.fail(seq.NewOpError("insert", seq.ErrCapacityExceeded))
}

func (a *Array[T]) PopFront() (T, error) {
	v, err := seq.PopFront[T](a)
	if err != nil && len(a.data) == 0 {
		a.tracer.Msg("%v", err)
	}
	return v, err
}

func (a *Array[T]) PopBack() (T, error) {
	v, err := seq.PopBack[T](a)
	if err != nil && len(a.data) == 0 {
		a.tracer.Msg("%v", err)
	}
	return v, err
}

// Pop removes from the back, pairing with Push.
func (a *Array[T]) Pop() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, a.fail(seq.NewOpError("pop", seq.ErrEmptyContainer))
	}
	return a.Remove(a.RBegin())
}

// Remove rejects every removal.  An invalid or foreign cursor is reported
// as seq.ErrInvalidIterator, anything else as seq.ErrFixedSize.  The array
// is never modified.
func (a *Array[T]) Remove(pos seq.Iterator[T]) (T, error) {
	var zero T
	it, ok := a.owned(pos)
	if !ok || !it.Valid() {
		return zero, a.fail(seq.NewOpError("remove", seq.ErrInvalidIterator))
	}
	return zero, a.fail(seq.NewIndexError("remove", it.pos, seq.ErrFixedSize))
}

func (a *Array[T]) Equal(other seq.Sequence[T]) bool {
	if o, ok := other.(*Array[T]); ok {
		return o != nil && slices.Equal(a.data, o.data)
	}
	if other == nil {
		return false
	}
	return seq.Equal[T](a, other)
}

func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}
