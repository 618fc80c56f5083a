package array

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// Container is a view of an Array that satisfies containers.Container from
// github.com/emirpasic/gods, so that arrays can be handed to code written
// against the gods container interfaces.  The view shares the array's
// buffer.
type Container[T comparable] struct {
	a *Array[T]
}

var _ containers.Container = (*Container[int])(nil)

// Container returns a gods compatible view of a.
func (a *Array[T]) Container() *Container[T] {
	return &Container[T]{a: a}
}

func (c *Container[T]) Empty() bool {
	return c.a.Empty()
}

func (c *Container[T]) Size() int {
	return c.a.Size()
}

// Clear resets every element to the zero value of T.  The size of the
// array does not change.
func (c *Container[T]) Clear() {
	var zero T
	c.a.Fill(zero)
}

func (c *Container[T]) Values() []interface{} {
	values := make([]interface{}, len(c.a.data))
	for i, v := range c.a.data {
		values[i] = v
	}
	return values
}

func (c *Container[T]) String() string {
	values := make([]string, len(c.a.data))
	for i, v := range c.a.data {
		values[i] = fmt.Sprintf("%v", v)
	}
	return "Array\n" + strings.Join(values, ", ")
}

// Iterator returns a stateful gods iterator positioned before the first
// element.
func (c *Container[T]) Iterator() *ContainerIterator[T] {
	return &ContainerIterator[T]{a: c.a, index: -1}
}

// ContainerIterator implements containers.ReverseIteratorWithIndex over an
// Array.
type ContainerIterator[T comparable] struct {
	a     *Array[T]
	index int
}

var _ containers.ReverseIteratorWithIndex = (*ContainerIterator[int])(nil)

func (it *ContainerIterator[T]) within() bool {
	return it.index >= 0 && it.index < len(it.a.data)
}

func (it *ContainerIterator[T]) Next() bool {
	if it.index < len(it.a.data) {
		it.index++
	}
	return it.within()
}

func (it *ContainerIterator[T]) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.within()
}

// Value returns the current element, or nil when the iterator is not on
// an element.
func (it *ContainerIterator[T]) Value() interface{} {
	if !it.within() {
		return nil
	}
	return it.a.data[it.index]
}

func (it *ContainerIterator[T]) Index() int {
	return it.index
}

func (it *ContainerIterator[T]) Begin() {
	it.index = -1
}

func (it *ContainerIterator[T]) End() {
	it.index = len(it.a.data)
}

func (it *ContainerIterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

func (it *ContainerIterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo moves the iterator forward to the next element satisfying f and
// reports whether one was found.
func (it *ContainerIterator[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for it.Next() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves the iterator backward to the previous element satisfying f
// and reports whether one was found.
func (it *ContainerIterator[T]) PrevTo(f func(index int, value interface{}) bool) bool {
	for it.Prev() {
		if f(it.index, it.Value()) {
			return true
		}
	}
	return false
}
