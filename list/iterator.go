/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Sat Mar 18 10:21:33 2023 mstenber
 * Last modified: Wed Mar 22 16:02:51 2023 mstenber
 * Edit time:     118 min
 *
 */

package list

import (
	"fmt"

	"github.com/QThund/Zunderbolt-sub017/mlog"
)

// Position is anything that refers to a position within a List;
// Iterator and ConstIterator both do.
type Position[T any] interface {
	position() cursor[T]
}

// cursor is the shared part of the iterators: the list it is bound
// to, the slot (or end marker) and the generation of the slot when
// the cursor moved there. Slot reuse after removal bumps the
// generation, which makes stale cursors invalid.
type cursor[T any] struct {
	list       *List[T]
	slot       Slot
	generation uint32
}

func (self cursor[T]) position() cursor[T] {
	return self
}

func (self cursor[T]) String() string {
	switch self.slot {
	case ForwardEnd:
		return "Iterator<ForwardEnd>"
	case BackwardEnd:
		return "Iterator<BackwardEnd>"
	}
	return fmt.Sprintf("Iterator<%d/%d>", self.slot, self.generation)
}

func (self *cursor[T]) moveTo(s Slot) {
	self.slot = s
	self.generation = 0
	if !isEnd(s) {
		self.generation = self.list.elements.GetGeneration(s)
	}
}

// Slot returns the physical slot the iterator refers to, or one of
// the end markers.
func (self cursor[T]) Slot() Slot {
	return self.slot
}

func (self cursor[T]) IsForwardEnd() bool {
	return self.slot == ForwardEnd
}

func (self cursor[T]) IsBackwardEnd() bool {
	return self.slot == BackwardEnd
}

// IsEnd returns true at either end.
func (self cursor[T]) IsEnd() bool {
	return isEnd(self.slot)
}

// IsValid returns true if the iterator is at an end, or at an element
// that has not been removed since the iterator moved there.
func (self cursor[T]) IsValid() bool {
	if self.list == nil {
		return false
	}
	if isEnd(self.slot) {
		return true
	}
	elements := self.list.elements
	return int(self.slot) < elements.GetPoolSize() &&
		elements.IsAllocated(self.slot) &&
		elements.GetGeneration(self.slot) == self.generation
}

func (self cursor[T]) mustBeValid() {
	if !self.IsValid() {
		mlog.Panicf("%v: %w", self, ErrInvalidIterator)
	}
}

// Next moves to the logically following element, or ForwardEnd after
// the last one. At ForwardEnd it does nothing.
func (self *cursor[T]) Next() {
	self.mustBeValid()
	if self.slot == ForwardEnd {
		mlog.Printf2("list/iterator", "iterator.Next at ForwardEnd -> ignored")
		return
	}
	self.moveTo(self.list.after(self.slot))
}

// Prev moves to the logically preceding element, or BackwardEnd
// before the first one. At BackwardEnd it does nothing.
func (self *cursor[T]) Prev() {
	self.mustBeValid()
	if self.slot == BackwardEnd {
		mlog.Printf2("list/iterator", "iterator.Prev at BackwardEnd -> ignored")
		return
	}
	self.moveTo(self.list.before(self.slot))
}

func (self cursor[T]) mustBeBound() {
	if self.list == nil {
		mlog.Panicf("%v of no list: %w", self, ErrInvalidIterator)
	}
}

// MoveFirst moves to the first element (ForwardEnd if empty).
func (self *cursor[T]) MoveFirst() {
	self.mustBeBound()
	self.moveTo(self.list.after(BackwardEnd))
}

// MoveLast moves to the last element (ForwardEnd if empty).
func (self *cursor[T]) MoveLast() {
	self.mustBeBound()
	self.moveTo(self.list.last)
}

func (self cursor[T]) same(other Position[T]) cursor[T] {
	o := other.position()
	if o.list != self.list {
		mlog.Panicf("comparing iterators of %p and %p: %w", self.list, o.list, ErrForeignIterator)
	}
	return o
}

// Equal returns true if both refer to the same position of the same
// list.
func (self cursor[T]) Equal(other Position[T]) bool {
	o := other.position()
	return self.list == o.list && self.slot == o.slot
}

// Less returns true if self is logically before other. This walks
// the list and is O(n).
func (self cursor[T]) Less(other Position[T]) bool {
	o := self.same(other)
	self.mustBeValid()
	o.mustBeValid()
	if self.slot == o.slot {
		return false
	}
	for s := self.slot; s != ForwardEnd; {
		s = self.list.after(s)
		if s == o.slot {
			return true
		}
	}
	return false
}

// Greater returns true if self is logically after other. O(n).
func (self cursor[T]) Greater(other Position[T]) bool {
	return self.same(other).Less(self)
}

func (self cursor[T]) LessOrEqual(other Position[T]) bool {
	return self.Equal(other) || self.Less(other)
}

func (self cursor[T]) GreaterOrEqual(other Position[T]) bool {
	return self.Equal(other) || self.Greater(other)
}

func (self cursor[T]) pointer() *T {
	if isEnd(self.slot) {
		mlog.Panicf("dereferencing %v: %w", self, ErrEndPosition)
	}
	self.mustBeValid()
	return self.list.elements.Get(self.slot)
}

// Iterator is a position in a List that allows changing the element
// it refers to.
type Iterator[T any] struct {
	cursor[T]
}

// Value returns the element at the iterator.
func (self Iterator[T]) Value() T {
	return *self.pointer()
}

// Pointer returns pointer to the element at the iterator. It is
// invalidated when the list grows.
func (self Iterator[T]) Pointer() *T {
	return self.pointer()
}

// SetValue replaces the element at the iterator with a copy of v.
func (self Iterator[T]) SetValue(v T) {
	*self.pointer() = self.list.copyValue(v)
}

// ReadOnly returns a ConstIterator at the same position.
func (self Iterator[T]) ReadOnly() ConstIterator[T] {
	return ConstIterator[T]{cursor: self.cursor}
}

// ConstIterator is a position in a List that only allows reading.
type ConstIterator[T any] struct {
	cursor[T]
}

// Value returns the element at the iterator.
func (self ConstIterator[T]) Value() T {
	return *self.pointer()
}
