package array

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seq "github.com/jake-scott/go-seq"
	"github.com/jake-scott/go-seq/iter/cursor"
)

func TestConstruction(t *testing.T) {
	tests := []struct {
		name string
		a    *Array[int]
		want []int
	}{
		{
			name: "default",
			a:    New[int](4),
			want: []int{0, 0, 0, 0},
		},
		{
			name: "short list is zero filled",
			a:    FromSlice(5, []int{1, 2, 3}),
			want: []int{1, 2, 3, 0, 0},
		},
		{
			name: "exact list",
			a:    FromSlice(3, []int{1, 2, 3}),
			want: []int{1, 2, 3},
		},
		{
			name: "long list is truncated",
			a:    FromSlice(2, []int{1, 2, 3, 4}),
			want: []int{1, 2},
		},
		{
			name: "nil list",
			a:    FromSlice[int](2, nil),
			want: []int{0, 0},
		},
		{
			name: "fill",
			a:    Filled(3, 9),
			want: []int{9, 9, 9},
		},
		{
			name: "of",
			a:    Of(5, 6),
			want: []int{5, 6},
		},
		{
			name: "zero length",
			a:    New[int](0),
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.a.Data()); diff != "" {
				t.Errorf("contents mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want), tt.a.Size())
			assert.Equal(t, tt.a.Size(), tt.a.MaxSize())
			assert.NotNil(t, tt.a.Data())
			for i, v := range tt.want {
				assert.Equal(t, v, tt.a.Index(i))
			}
		})
	}
}

func TestNegativeLengthPanics(t *testing.T) {
	assert.Panics(t, func() { New[int](-1) })
}

func TestFill(t *testing.T) {
	a := FromSlice(5, []int{1, 2, 3})
	a.Fill(9)
	assert.Equal(t, []int{9, 9, 9, 9, 9}, a.Data())

	// the first match is at the front
	assert.True(t, a.Find(9).Equal(a.CBegin()))
	assert.True(t, a.Find(1).Equal(a.CEnd()))
}

func TestCheckedAccess(t *testing.T) {
	a := Of("a", "b", "c")

	for i, want := range []string{"a", "b", "c"} {
		v, err := a.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	for _, i := range []int{-1, 3, 100} {
		_, err := a.At(i)
		assert.ErrorIs(t, err, seq.ErrOutOfRange, "index %d", i)
		assert.ErrorIs(t, a.SetAt(i, "x"), seq.ErrOutOfRange, "index %d", i)
	}
	_, err := a.At(3)
	assert.EqualError(t, err, "seq: at(3): index out of range")

	require.NoError(t, a.SetAt(1, "B"))
	assert.Equal(t, "B", a.Index(1))

	assert.Panics(t, func() { a.Index(3) })
}

func TestFirstLastPeek(t *testing.T) {
	a := Of(3, 4, 5)

	v, err := a.First()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = a.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = a.Last()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	empty := New[int](0)
	assert.True(t, empty.Empty())
	_, err = empty.First()
	assert.ErrorIs(t, err, seq.ErrOutOfRange)
	_, err = empty.Last()
	assert.ErrorIs(t, err, seq.ErrOutOfRange)
	_, err = empty.Peek()
	assert.ErrorIs(t, err, seq.ErrOutOfRange)
}

func TestSizeChangingOperationsAreRejected(t *testing.T) {
	a := Of(1, 2, 3)
	other := Of(1, 2, 3)

	tests := []struct {
		name string
		op   func() error
		want error
	}{
		{"push", func() error { return a.Push(4) }, seq.ErrCapacityExceeded},
		{"push front", func() error { return a.PushFront(4) }, seq.ErrCapacityExceeded},
		{"push back", func() error { return a.PushBack(4) }, seq.ErrCapacityExceeded},
		{"insert middle", func() error { return a.Insert(seq.Add(a.Begin(), 1), 4) }, seq.ErrCapacityExceeded},
		{"insert foreign", func() error { return a.Insert(other.Begin(), 4) }, seq.ErrInvalidIterator},
		{"insert nil", func() error { return a.Insert(nil, 4) }, seq.ErrInvalidIterator},
		{"insert rend", func() error { return a.Insert(a.REnd(), 4) }, seq.ErrInvalidIterator},
		{"insert end", func() error { return a.Insert(a.End(), 4) }, seq.ErrCapacityExceeded},
		{"pop", func() error { _, err := a.Pop(); return err }, seq.ErrFixedSize},
		{"pop front", func() error { _, err := a.PopFront(); return err }, seq.ErrFixedSize},
		{"pop back", func() error { _, err := a.PopBack(); return err }, seq.ErrFixedSize},
		{"remove", func() error { _, err := a.Remove(a.Begin()); return err }, seq.ErrFixedSize},
		{"remove end", func() error { _, err := a.Remove(a.End()); return err }, seq.ErrInvalidIterator},
		{"remove rend", func() error { _, err := a.Remove(a.REnd()); return err }, seq.ErrInvalidIterator},
		{"remove foreign", func() error { _, err := a.Remove(other.Begin()); return err }, seq.ErrInvalidIterator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), tt.want)
			assert.Equal(t, 3, a.Size())
			assert.Equal(t, []int{1, 2, 3}, a.Data())
		})
	}
}

func TestPopEmpty(t *testing.T) {
	a := New[int](0)

	_, err := a.PopFront()
	assert.ErrorIs(t, err, seq.ErrEmptyContainer)
	_, err = a.PopBack()
	assert.ErrorIs(t, err, seq.ErrEmptyContainer)
	_, err = a.Pop()
	assert.ErrorIs(t, err, seq.ErrEmptyContainer)
	assert.ErrorIs(t, a.PushBack(1), seq.ErrCapacityExceeded)
	assert.Equal(t, 0, a.Size())
}

func TestRest(t *testing.T) {
	a := Of(1, 2, 3)

	r, err := a.Rest()
	require.NoError(t, err)
	assert.True(t, r.Equal(Of(2, 3)))
	assert.Equal(t, []int{1, 2, 3}, a.Data())

	// the rest does not share the buffer
	require.NoError(t, r.SetAt(0, 20))
	assert.Equal(t, 2, a.Index(1))

	r, err = Of(1).Rest()
	require.NoError(t, err)
	assert.True(t, r.Empty())

	_, err = r.Rest()
	assert.ErrorIs(t, err, seq.ErrEmptyContainer)
}

func TestEqual(t *testing.T) {
	a := Of(1, 2, 3)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(Of(1, 2, 3)))
	assert.False(t, a.Equal(Of(1, 2, 0)))
	assert.False(t, a.Equal(Of(1, 2)))
	assert.True(t, New[string](0).Equal(Of[string]()))
}

func TestCloneSwapCopy(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Fill(0)
	assert.Equal(t, []int{1, 2, 3}, a.Data())

	c := Of(7, 8, 9)
	require.NoError(t, a.Swap(c))
	assert.Equal(t, []int{7, 8, 9}, a.Data())
	assert.Equal(t, []int{1, 2, 3}, c.Data())
	assert.ErrorIs(t, a.Swap(Of(1)), seq.ErrSizeMismatch)

	require.NoError(t, b.CopyFrom(c))
	assert.Equal(t, []int{1, 2, 3}, b.Data())
	assert.ErrorIs(t, b.CopyFrom(Of(1, 2)), seq.ErrSizeMismatch)

	r, err := Of(0, 4, 5, 6).Rest()
	require.NoError(t, err)
	require.NoError(t, b.CopyFrom(r))
	assert.Equal(t, []int{4, 5, 6}, b.Data())
}

func TestNilArguments(t *testing.T) {
	a := Of(1, 2, 3)
	var nilArray *Array[int]

	assert.ErrorIs(t, a.Swap(nilArray), seq.ErrSizeMismatch)
	assert.ErrorIs(t, a.CopyFrom(nilArray), seq.ErrSizeMismatch)
	assert.ErrorIs(t, a.CopyFrom(nil), seq.ErrSizeMismatch)
	assert.False(t, a.Equal(nilArray))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, []int{1, 2, 3}, a.Data())
}

func TestRangeFuncs(t *testing.T) {
	a := Of("a", "b", "c")

	var fwd []string
	for i, v := range a.All() {
		fwd = append(fwd, fmt.Sprintf("%d=%s", i, v))
	}
	assert.Equal(t, []string{"0=a", "1=b", "2=c"}, fwd)

	var back []string
	for i, v := range a.Backward() {
		back = append(back, fmt.Sprintf("%d=%s", i, v))
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []string{"2=c", "1=b"}, back)
}

func TestIteratorBoundaries(t *testing.T) {
	a := Of(1, 2, 3)

	assert.False(t, a.Begin().Equal(a.End()))
	assert.False(t, a.Begin().Equal(Of(1, 2, 3).Begin()))

	empty := New[int](0)
	assert.True(t, empty.Begin().Equal(empty.End()))
	assert.True(t, empty.CBegin().Equal(empty.CEnd()))
	assert.True(t, empty.RBegin().Equal(empty.REnd()))

	var got []int
	for it := a.RBegin(); it.Valid(); it.Prev() {
		v, err := it.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	d, ok := seq.Distance(a.Begin(), a.End())
	require.True(t, ok)
	assert.Equal(t, a.Size(), d)
}

func TestFromStream(t *testing.T) {
	ctx := context.Background()
	src := Of(1, 2, 3, 4)

	tests := []struct {
		name string
		n    int
		opts []cursor.Option
		want []int
	}{
		{name: "shorter", n: 2, want: []int{1, 2}},
		{name: "longer", n: 6, want: []int{1, 2, 3, 4, 0, 0}},
		{name: "reversed", n: 4, opts: []cursor.Option{cursor.Reverse(true)}, want: []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := cursor.New[int](src, tt.opts...)
			a, err := FromStream[int](ctx, tt.n, &s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Data())
		})
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	s := cursor.New[int](src)
	a, err := FromStream[int](cancelled, 4, &s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, a)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Array[1 2 3]", Of(1, 2, 3).String())
	assert.Equal(t, "Array[]", New[int](0).String())
}

func TestTracing(t *testing.T) {
	assert := assert.New(t)

	var msgs []string
	f := func(format string, v ...any) {
		msgs = append(msgs, fmt.Sprintf(format, v...))
	}

	a := FromSlice(2, []int{1, 2, 3}, WithTracing(true), WithTraceFunc(f))
	require.Len(t, msgs, 2)
	assert.Contains(msgs[0], "START [array #")
	assert.Contains(msgs[0], "(int) FromSlice(2, len=3)")
	assert.Contains(msgs[1], "ignored 1 trailing values")

	msgs = nil
	assert.Error(a.PushBack(3))
	_, err := a.At(2)
	assert.Error(err)
	require.Len(t, msgs, 2)
	assert.Contains(msgs[0], "seq: insert: capacity exceeded")
	assert.Contains(msgs[1], "seq: at(2): index out of range")

	msgs = nil
	b := a.Clone()
	_, err = b.Pop()
	assert.Error(err)
	require.Len(t, msgs, 2)
	assert.Contains(msgs[0], "/ Clone")
	assert.True(strings.Contains(msgs[0], ".1]"), msgs[0])
	assert.Contains(msgs[1], "seq: remove(1): sequence has a fixed size")

	// untraced arrays stay silent
	msgs = nil
	c := FromSlice(1, []int{1, 2}, WithTraceFunc(f))
	assert.Error(c.Push(1))
	assert.Empty(msgs)
}
