/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Thu Mar 16 11:40:02 2023 mstenber
 * Last modified: Mon Mar 20 11:35:44 2023 mstenber
 * Edit time:     41 min
 *
 */

package pool

import (
	"errors"
	"testing"

	"github.com/stvp/assert"
)

func expectPanic(t *testing.T, target error, cb func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok, "expected panic")
		assert.True(t, errors.Is(err, target), "unexpected panic ", r)
	}()
	cb()
}

func TestAllocateDeallocate(t *testing.T) {
	t.Parallel()

	p := Pool[int]{}.Init(3)
	assert.Equal(t, p.GetPoolSize(), 3)
	assert.Equal(t, p.GetAllocated(), 0)

	s0, err := p.Allocate()
	assert.Nil(t, err)
	s1, _ := p.Allocate()
	s2, _ := p.Allocate()
	assert.Equal(t, []Slot{s0, s1, s2}, []Slot{0, 1, 2})
	_, err = p.Allocate()
	assert.Equal(t, err, ErrFull)

	*p.Get(s1) = 42
	assert.Equal(t, *p.Get(s1), 42)
	assert.Equal(t, p.GetAllocated(), 3)
	assert.Equal(t, p.GetAllocatedBytes(), 3*p.SlotSize())
	assert.Equal(t, p.GetPoolBytes(), 3*p.SlotSize())

	g := p.GetGeneration(s1)
	p.Deallocate(s1)
	assert.True(t, !p.IsAllocated(s1))
	assert.Equal(t, p.GetGeneration(s1), g+1)
	assert.Equal(t, p.GetAllocated(), 2)

	// freed slot comes back first, and zeroed
	s, err := p.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, s, s1)
	assert.Equal(t, *p.Get(s), 0)
}

func TestFreeOrderIsLIFO(t *testing.T) {
	t.Parallel()

	p := Pool[string]{}.Init(4)
	for i := 0; i < 4; i++ {
		p.Allocate()
	}
	p.Deallocate(0)
	p.Deallocate(2)
	s, _ := p.Allocate()
	assert.Equal(t, s, Slot(2))
	s, _ = p.Allocate()
	assert.Equal(t, s, Slot(0))
}

func TestMisuse(t *testing.T) {
	t.Parallel()

	p := Pool[int]{}.Init(2)
	s, _ := p.Allocate()
	p.Deallocate(s)
	expectPanic(t, ErrNotAllocated, func() { p.Deallocate(s) })
	expectPanic(t, ErrNotAllocated, func() { p.Get(1) })
	expectPanic(t, ErrNotAllocated, func() { p.Get(7) })
}

func TestReallocate(t *testing.T) {
	t.Parallel()

	p := Pool[int]{MaximumSlots: 10}.Init(2)
	a, _ := p.Allocate()
	b, _ := p.Allocate()
	*p.Get(a) = 1
	*p.Get(b) = 2
	assert.Nil(t, p.Reallocate(5))
	assert.Equal(t, p.GetPoolSize(), 5)
	assert.Equal(t, *p.Get(a), 1)
	assert.Equal(t, *p.Get(b), 2)
	c, err := p.Allocate()
	assert.Nil(t, err)
	assert.Equal(t, c, Slot(2))

	// over the limit -> untouched
	assert.Equal(t, p.Reallocate(11), ErrExhausted)
	assert.Equal(t, p.GetPoolSize(), 5)
	assert.Equal(t, p.GetAllocated(), 3)

	expectPanic(t, ErrShrink, func() { p.Reallocate(2) })

	// shrinking down to the used part is fine
	assert.Nil(t, p.Reallocate(3))
	assert.Equal(t, p.GetPoolSize(), 3)
}

func TestCopyTo(t *testing.T) {
	t.Parallel()

	p := Pool[int]{}.Init(4)
	for i := 0; i < 3; i++ {
		s, _ := p.Allocate()
		*p.Get(s) = 10 + i
	}
	p.Deallocate(1)

	small := Pool[int]{}.Init(2)
	assert.Equal(t, p.CopyTo(small), ErrTooSmall)

	o := Pool[int]{}.Init(4)
	s, _ := o.Allocate()
	*o.Get(s) = 99
	assert.Nil(t, p.CopyTo(o))
	assert.Equal(t, o.GetAllocated(), 2)
	assert.Equal(t, *o.Get(0), 10)
	assert.Equal(t, *o.Get(2), 12)
	assert.True(t, !o.IsAllocated(1))
	// same free list too
	s, _ = o.Allocate()
	assert.Equal(t, s, Slot(1))

	l := Pool[int]{}.Init(8)
	assert.Nil(t, p.CopyLayoutTo(l))
	assert.Equal(t, l.GetAllocated(), 2)
	assert.Equal(t, *l.Get(0), 0)
	assert.Equal(t, *l.Get(2), 0)
}

func TestClear(t *testing.T) {
	t.Parallel()

	p := Pool[int]{}.Init(3)
	s, _ := p.Allocate()
	g := p.GetGeneration(s)
	p.Allocate()
	p.Clear()
	assert.Equal(t, p.GetAllocated(), 0)
	assert.True(t, !p.IsAllocated(s))
	assert.Equal(t, p.GetGeneration(s), g+1)
	p.Clear()
	s, _ = p.Allocate()
	assert.Equal(t, s, Slot(0))
	assert.Equal(t, *p.Get(s), 0)
}

func BenchmarkAllocateDeallocate(b *testing.B) {
	p := Pool[int]{}.Init(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := p.Allocate()
		if err != nil {
			b.Fatal(err)
		}
		p.Deallocate(s)
	}
}
