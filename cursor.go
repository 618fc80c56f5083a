package seq

// Cursor is the movement half of an iterator.  A cursor is either valid,
// positioned on a live element, or invalid, positioned on one of the two
// sentinels: one-past-the-last element (end) or one-before-the-first
// element (rend).
//
// Stepping never wraps and never leaves the sequence: Next from end and
// Prev from rend leave the cursor where it is.  Next from rend moves to
// the first element and Prev from end moves to the last element, so for a
// non-empty sequence Retreat(End(), 1) is the last element.
type Cursor interface {
	// Valid reports whether the cursor can be dereferenced.
	Valid() bool

	// Next moves the cursor one element forward and reports whether the
	// new position is valid.
	Next() bool

	// Prev moves the cursor one element backward and reports whether the
	// new position is valid.
	Prev() bool
}

// ConstIterator is a read-only cursor over the elements of a sequence.
type ConstIterator[T any] interface {
	Cursor

	// Get returns the element under the cursor, or ErrInvalidIterator
	// if the cursor is on a sentinel.
	Get() (T, error)

	// Clone returns an independent cursor at the same position.
	Clone() ConstIterator[T]

	// Equal reports whether both cursors belong to the same sequence and
	// sit at the same position.
	Equal(other ConstIterator[T]) bool
}

// Iterator is a cursor that can also overwrite the element it points at.
type Iterator[T any] interface {
	Cursor

	// Get returns the element under the cursor, or ErrInvalidIterator
	// if the cursor is on a sentinel.
	Get() (T, error)

	// Set overwrites the element under the cursor.  It returns
	// ErrInvalidIterator if the cursor is on a sentinel.
	Set(v T) error

	// Clone returns an independent cursor at the same position.
	Clone() Iterator[T]

	// Equal reports whether both cursors belong to the same sequence and
	// sit at the same position.
	Equal(other Iterator[T]) bool

	// Const returns a read-only cursor at the same position.
	Const() ConstIterator[T]
}

// Stepper is the constraint of the cursor arithmetic helpers.  Both
// Iterator[T] and ConstIterator[T] satisfy Stepper of themselves.
type Stepper[I any] interface {
	Cursor
	Clone() I
	Equal(I) bool
}

// Advance moves c forward n elements in place and returns it.  Movement
// stops at the first invalid position reached.  A negative n retreats.
func Advance[C Cursor](c C, n int) C {
	return move(c, n, true)
}

// Retreat moves c backward n elements in place and returns it.  Movement
// stops at the first invalid position reached.  A negative n advances.
func Retreat[C Cursor](c C, n int) C {
	return move(c, n, false)
}

// move counts n towards zero rather than negating it, so every int,
// math.MinInt included, is a valid step count.
func move[C Cursor](c C, n int, forward bool) C {
	if n < 0 {
		forward = !forward
	}
	for n != 0 {
		var valid bool
		if forward {
			valid = c.Next()
		} else {
			valid = c.Prev()
		}
		if !valid {
			break
		}

		if n > 0 {
			n--
		} else {
			n++
		}
	}
	return c
}

// Next steps it forward in place and returns a cursor at its previous
// position, like a postfix increment.
func Next[I Stepper[I]](it I) I {
	old := it.Clone()
	it.Next()
	return old
}

// Prev steps it backward in place and returns a cursor at its previous
// position, like a postfix decrement.
func Prev[I Stepper[I]](it I) I {
	old := it.Clone()
	it.Prev()
	return old
}

// Add returns a new cursor n elements after it, leaving it untouched.
func Add[I Stepper[I]](it I, n int) I {
	return Advance(it.Clone(), n)
}

// Sub returns a new cursor n elements before it, leaving it untouched.
func Sub[I Stepper[I]](it I, n int) I {
	return Retreat(it.Clone(), n)
}

// Distance returns the number of single steps that take a copy of from
// to the position of to.  The result is negative when to lies before
// from.  The second return value is false if to cannot be reached, which
// happens when the cursors belong to different sequences.
func Distance[I Stepper[I]](from, to I) (int, bool) {
	if n, ok := walk(from, to, true); ok {
		return n, true
	}
	if n, ok := walk(from, to, false); ok {
		return -n, true
	}
	return 0, false
}

func walk[I Stepper[I]](from, to I, forward bool) (int, bool) {
	c := from.Clone()
	for n := 0; ; n++ {
		if c.Equal(to) {
			return n, true
		}

		var valid bool
		if forward {
			valid = c.Next()
		} else {
			valid = c.Prev()
		}

		if !valid {
			// on a sentinel now; one more step would not move
			if c.Equal(to) {
				return n + 1, true
			}
			return 0, false
		}
	}
}

// Less reports whether a is positioned strictly before b.
func Less[I Stepper[I]](a, b I) bool {
	n, ok := Distance(a, b)
	return ok && n > 0
}

// LessEqual reports whether a is positioned before or at b.
func LessEqual[I Stepper[I]](a, b I) bool {
	n, ok := Distance(a, b)
	return ok && n >= 0
}

// Greater reports whether a is positioned strictly after b.
func Greater[I Stepper[I]](a, b I) bool {
	return Less(b, a)
}

// GreaterEqual reports whether a is positioned after or at b.
func GreaterEqual[I Stepper[I]](a, b I) bool {
	return LessEqual(b, a)
}
