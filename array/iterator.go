package array

import (
	seq "github.com/jake-scott/go-seq"
)

// position is a slot index into an array's buffer.  -1 is the sentinel
// before the first element and len(data) the sentinel after the last;
// both are invalid.
type position[T comparable] struct {
	a   *Array[T]
	pos int
}

func (p *position[T]) Valid() bool {
	return p.pos >= 0 && p.pos < len(p.a.data)
}

func (p *position[T]) Next() bool {
	if p.pos < len(p.a.data) {
		p.pos++
	}
	return p.Valid()
}

func (p *position[T]) Prev() bool {
	if p.pos >= 0 {
		p.pos--
	}
	return p.Valid()
}

func (p *position[T]) Get() (T, error) {
	if !p.Valid() {
		var zero T
		return zero, seq.NewOpError("get", seq.ErrInvalidIterator)
	}
	return p.a.data[p.pos], nil
}

type iterator[T comparable] struct {
	position[T]
}

var _ seq.Iterator[int] = (*iterator[int])(nil)

func (it *iterator[T]) Set(v T) error {
	if !it.Valid() {
		return seq.NewOpError("set", seq.ErrInvalidIterator)
	}
	it.a.data[it.pos] = v
	return nil
}

func (it *iterator[T]) Clone() seq.Iterator[T] {
	return &iterator[T]{it.position}
}

func (it *iterator[T]) Equal(other seq.Iterator[T]) bool {
	o, ok := other.(*iterator[T])
	return ok && o != nil && o.a == it.a && o.pos == it.pos
}

func (it *iterator[T]) Const() seq.ConstIterator[T] {
	return &constIterator[T]{it.position}
}

type constIterator[T comparable] struct {
	position[T]
}

var _ seq.ConstIterator[int] = (*constIterator[int])(nil)

func (it *constIterator[T]) Clone() seq.ConstIterator[T] {
	return &constIterator[T]{it.position}
}

func (it *constIterator[T]) Equal(other seq.ConstIterator[T]) bool {
	o, ok := other.(*constIterator[T])
	return ok && o != nil && o.a == it.a && o.pos == it.pos
}

func (a *Array[T]) cursorAt(pos int) *iterator[T] {
	return &iterator[T]{position[T]{a: a, pos: pos}}
}

func (a *Array[T]) constCursorAt(pos int) *constIterator[T] {
	return &constIterator[T]{position[T]{a: a, pos: pos}}
}

// Begin returns a cursor on the first element, equal to End() when the
// array is empty.
func (a *Array[T]) Begin() seq.Iterator[T] { return a.cursorAt(0) }

// End returns the sentinel cursor after the last element.
func (a *Array[T]) End() seq.Iterator[T] { return a.cursorAt(len(a.data)) }

func (a *Array[T]) CBegin() seq.ConstIterator[T] { return a.constCursorAt(0) }
func (a *Array[T]) CEnd() seq.ConstIterator[T] { return a.constCursorAt(len(a.data)) }

// RBegin returns a cursor on the last element, equal to REnd() when the
// array is empty.
func (a *Array[T]) RBegin() seq.Iterator[T] { return a.cursorAt(len(a.data) - 1) }

// REnd returns the sentinel cursor before the first element.
func (a *Array[T]) REnd() seq.Iterator[T] { return a.cursorAt(-1) }

// owned returns pos as an iterator of a, or false if pos was produced by
// another sequence.
func (a *Array[T]) owned(pos seq.Iterator[T]) (*iterator[T], bool) {
	it, ok := pos.(*iterator[T])
	if !ok || it == nil || it.a != a {
		return nil, false
	}
	return it, true
}
