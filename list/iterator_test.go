/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Sun Mar 19 09:44:12 2023 mstenber
 * Last modified: Wed Mar 22 16:40:03 2023 mstenber
 * Edit time:     48 min
 *
 */

package list

import (
	"testing"

	"github.com/stvp/assert"
)

func TestIteratorWalk(t *testing.T) {
	t.Parallel()

	l := NewFromSlice([]int{1, 2, 3})
	var got []int
	for it := l.GetFirst(); !it.IsEnd(); it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, got, []int{1, 2, 3})

	got = nil
	for it := l.GetConstLast(); !it.IsEnd(); it.Prev() {
		got = append(got, it.Value())
	}
	assert.Equal(t, got, []int{3, 2, 1})
}

func TestIteratorStateMachine(t *testing.T) {
	t.Parallel()

	l := NewFromSlice([]int{1, 2})
	it := l.GetFirst()
	it.Prev()
	assert.True(t, it.IsBackwardEnd())
	// stays put
	it.Prev()
	assert.True(t, it.IsBackwardEnd())
	it.Next()
	assert.Equal(t, it.Value(), 1)

	it.MoveLast()
	assert.Equal(t, it.Value(), 2)
	it.Next()
	assert.True(t, it.IsForwardEnd())
	it.Next()
	assert.True(t, it.IsForwardEnd())
	it.Prev()
	assert.Equal(t, it.Value(), 2)
	it.MoveFirst()
	assert.Equal(t, it.Value(), 1)
	assert.True(t, it.IsValid())

	expectPanic(t, ErrEndPosition, func() {
		e := l.GetLast()
		e.Next()
		e.Value()
	})

	empty := New[int]()
	e := empty.GetFirst()
	assert.True(t, e.IsForwardEnd())
	e.MoveLast()
	assert.True(t, e.IsForwardEnd())
	e.Prev()
	assert.True(t, e.IsBackwardEnd())
	e.Next()
	assert.True(t, e.IsForwardEnd())
	assert.True(t, e.IsValid())
	assert.True(t, !Iterator[int]{}.IsValid())

	var unbound Iterator[int]
	expectPanic(t, ErrInvalidIterator, func() { unbound.MoveFirst() })
	expectPanic(t, ErrInvalidIterator, func() { unbound.MoveLast() })
	expectPanic(t, ErrInvalidIterator, func() { unbound.Next() })
	var unboundConst ConstIterator[int]
	expectPanic(t, ErrInvalidIterator, func() { unboundConst.MoveFirst() })
}

func TestIteratorSetValue(t *testing.T) {
	t.Parallel()

	l := NewFromSlice([]int{1, 2, 3})
	it := l.GetIterator(1)
	it.SetValue(20)
	*it.Pointer() += 2
	assert.Equal(t, l.ToSlice(), []int{1, 22, 3})
	c := it.ReadOnly()
	assert.Equal(t, c.Value(), 22)
	assert.True(t, c.Equal(it))
	assert.True(t, it.Equal(c))
}

func TestIteratorRelational(t *testing.T) {
	t.Parallel()

	l := NewFromSlice([]int{1, 2, 3})
	a := l.GetFirst()
	b := l.GetIterator(1)
	c := l.GetLast()
	end := l.GetLast()
	end.Next()
	begin := l.GetFirst()
	begin.Prev()

	assert.True(t, a.Less(b))
	assert.True(t, a.Less(c))
	assert.True(t, !c.Less(a))
	assert.True(t, !b.Less(b))
	assert.True(t, b.LessOrEqual(b))
	assert.True(t, c.Greater(a))
	assert.True(t, c.GreaterOrEqual(c))
	assert.True(t, !a.Greater(b))
	assert.True(t, begin.Less(a))
	assert.True(t, begin.Less(end))
	assert.True(t, c.Less(end))
	assert.True(t, end.Greater(begin))
	assert.True(t, !end.Less(c))

	// order is logical, not physical
	l.Remove(a)
	l.InsertAt(0, 0)
	n := l.GetFirst()
	assert.Equal(t, n.Slot(), a.Slot())
	l.Add(4)
	last := l.GetLast()
	assert.True(t, n.Less(last))
	assert.True(t, last.Slot() > n.Slot())
	assert.True(t, b.Greater(n))

	other := NewFromSlice([]int{1})
	assert.True(t, !a.Equal(other.GetFirst()))
	expectPanic(t, ErrForeignIterator, func() { b.Less(other.GetFirst()) })
	expectPanic(t, ErrInvalidIterator, func() { a.Less(b) })
}

func TestIteratorSurvivesGrowth(t *testing.T) {
	t.Parallel()

	l := NewWithCapacity[int](1)
	l.Add(1)
	it := l.GetFirst()
	for i := 2; i < 100; i++ {
		l.Add(i)
	}
	assert.True(t, l.GetCapacity() >= 99)
	assert.True(t, it.IsValid())
	assert.Equal(t, it.Value(), 1)
	it.Next()
	assert.Equal(t, it.Value(), 2)
}
