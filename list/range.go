/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Sun Mar 19 12:40:07 2023 mstenber
 * Last modified: Wed Mar 22 16:58:20 2023 mstenber
 * Edit time:     74 min
 *
 */

package list

import (
	"github.com/QThund/Zunderbolt-sub017/mlog"
)

// rangeSlots returns the slots of the closed range [first, last] in
// logical order. Both have to be valid non-end positions of the same
// list, and first may not be after last.
func rangeSlots[T any](first, last Position[T]) (*List[T], []Slot) {
	f := first.position()
	l := last.position()
	if f.list == nil || f.list != l.list {
		mlog.Panicf("range of %p and %p: %w", f.list, l.list, ErrForeignIterator)
	}
	src := f.list
	src.mustBeValid(f)
	src.mustBeValid(l)
	var slots []Slot
	for s := f.slot; ; s = src.links.Get(s).next {
		if s == ForwardEnd {
			mlog.Panicf("range %v..%v: %w", f, l, ErrInvalidRange)
		}
		slots = append(slots, s)
		if s == l.slot {
			return src, slots
		}
	}
}

func rangeValues[T any](first, last Position[T]) []T {
	src, slots := rangeSlots(first, last)
	values := make([]T, len(slots))
	for i, s := range slots {
		values[i] = *src.elements.Get(s)
	}
	return values
}

// indexRange converts indexes of the closed range [first, last] to
// positions of this list.
func (self *List[T]) indexRange(first, last int) (Iterator[T], Iterator[T]) {
	if first > last {
		mlog.Panicf("range %d..%d: %w", first, last, ErrInvalidRange)
	}
	return self.GetIterator(first), self.GetIterator(last)
}

// GetRange returns new list with copies of the elements in [first,
// last], with the same configuration as this one.
func (self *List[T]) GetRange(first, last Position[T]) *List[T] {
	self.own(first)
	values := rangeValues(first, last)
	r := self.empty(len(values))
	for _, v := range values {
		r.linkBefore(r.allocate(r.copyValue(v)), ForwardEnd)
	}
	return r
}

func (self *List[T]) GetRangeAt(first, last int) *List[T] {
	f, l := self.indexRange(first, last)
	return self.GetRange(f, l)
}

// AddRange appends copies of the elements in [first, last] of some
// list (possibly this one).
func (self *List[T]) AddRange(first, last Position[T]) error {
	return self.insertValues(rangeValues(first, last), ForwardEnd)
}

// InsertRange inserts copies of the elements in [first, last] of some
// list before position, keeping their order. End position appends.
func (self *List[T]) InsertRange(first, last, position Position[T]) error {
	at := self.own(position)
	values := rangeValues(first, last)
	if isEnd(at.slot) {
		mlog.Printf2("list/range", "list.InsertRange at end -> append")
		return self.insertValues(values, ForwardEnd)
	}
	self.mustBeValid(at)
	return self.insertValues(values, at.slot)
}

// InsertRangeAt is InsertRange with index of the position; indexes
// out of range append.
func (self *List[T]) InsertRangeAt(first, last Position[T], index int) error {
	values := rangeValues(first, last)
	if index < 0 || index >= self.GetCount() {
		mlog.Printf2("list/range", "list.InsertRangeAt %d out of range -> append", index)
		return self.insertValues(values, ForwardEnd)
	}
	return self.insertValues(values, self.slotAt(index))
}

// insertValues grows once for all of values, and then links them in
// before at.
func (self *List[T]) insertValues(values []T, at Slot) error {
	if err := self.ensureRoom(len(values)); err != nil {
		return err
	}
	for _, v := range values {
		self.linkBefore(self.allocate(self.copyValue(v)), at)
	}
	return nil
}

// RemoveRange removes the elements in [first, last].
func (self *List[T]) RemoveRange(first, last Position[T]) {
	self.own(first)
	_, slots := rangeSlots(first, last)
	for _, s := range slots {
		self.unlink(s)
	}
}

func (self *List[T]) RemoveRangeAt(first, last int) {
	f, l := self.indexRange(first, last)
	self.RemoveRange(f, l)
}

// Swap exchanges the values stored at the two positions. Links are
// not touched, so iterators keep referring to the same slots.
func (self *List[T]) Swap(a, b Position[T]) {
	ca := self.own(a)
	cb := self.own(b)
	self.mustBeValid(ca)
	self.mustBeValid(cb)
	if ca.slot == cb.slot {
		mlog.Printf2("list/range", "list.Swap of %v with itself -> ignored", ca)
		return
	}
	pa := self.elements.Get(ca.slot)
	pb := self.elements.Get(cb.slot)
	*pa, *pb = *pb, *pa
}

func (self *List[T]) SwapAt(a, b int) {
	self.Swap(self.GetIterator(a), self.GetIterator(b))
}
