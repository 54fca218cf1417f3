/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Fri Mar 17 09:15:40 2023 mstenber
 * Last modified: Wed Mar 22 17:45:12 2023 mstenber
 * Edit time:     341 min
 *
 */

// list provides an ordered container with O(1) insertion and removal
// at known positions, and amortized O(1) append.
//
// Elements live in a pool of fixed slots, and a second pool of the
// same size holds the (previous, next) slot indexes that define the
// logical order. Removing or inserting in the middle therefore does
// not move any other element, and a freed slot is reused by the next
// insertion. Growing the capacity reallocates both pools; slot indexes
// (and so iterators) survive that, pointers to elements do not.
//
// Precondition violations (bad index, end or stale iterator, iterator
// of another list, reversed range) panic with an error wrapping one
// of the Err* values of this package, before anything is modified.
// Calls the API defines as harmless (removing from an empty list,
// inserting past the end, swapping an element with itself) are no-ops
// or fall back to append, and are only visible in the mlog output.
//
// The list is obviously not threadsafe.
package list

import (
	"cmp"
	"fmt"

	"github.com/QThund/Zunderbolt-sub017/comparator"
	"github.com/QThund/Zunderbolt-sub017/mlog"
	"github.com/QThund/Zunderbolt-sub017/pool"
	"github.com/QThund/Zunderbolt-sub017/util"
)

// List must be initialized with Init (or one of the New functions)
// before use.
type List[T any] struct {
	// Compare is used by the searches and Equal. Optional if those
	// are not used.
	Compare comparator.Comparator[T]

	// Copy produces the copy of a value that is stored in the list
	// whenever a value enters it. nil means plain assignment.
	Copy func(T) T

	// MaximumCapacity limits growth; 0 means no limit. Operations
	// that would need more slots return pool.ErrExhausted.
	MaximumCapacity int

	elements *pool.Pool[T]
	links    *pool.Pool[link]

	first, last Slot
}

// Init reserves room for capacity elements (DefaultCapacity if 0).
func (self List[T]) Init(capacity int) *List[T] {
	if capacity < 0 {
		mlog.Panicf("list.Init %d: %w", capacity, ErrInvalidCapacity)
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	self.elements = pool.Pool[T]{MaximumSlots: self.MaximumCapacity}.Init(capacity)
	self.links = pool.Pool[link]{MaximumSlots: self.MaximumCapacity}.Init(capacity)
	self.first = BackwardEnd
	self.last = ForwardEnd
	return &self
}

// New returns an empty list of ordered values.
func New[T cmp.Ordered]() *List[T] {
	return List[T]{Compare: comparator.Ordered[T]()}.Init(DefaultCapacity)
}

// NewWithCapacity returns an empty list of ordered values with room
// for n > 0 elements.
func NewWithCapacity[T cmp.Ordered](n int) *List[T] {
	if n <= 0 {
		mlog.Panicf("list.NewWithCapacity %d: %w", n, ErrInvalidCapacity)
	}
	return List[T]{Compare: comparator.Ordered[T]()}.Init(n)
}

// NewFromSlice returns a list with copies of values, with capacity of
// exactly len(values) (DefaultCapacity for an empty slice).
func NewFromSlice[T cmp.Ordered](values []T) *List[T] {
	if values == nil {
		mlog.Panicf("list.NewFromSlice: %w", ErrNilSource)
	}
	self := List[T]{Compare: comparator.Ordered[T]()}.Init(len(values))
	for _, v := range values {
		// room was reserved above and capacity is unlimited
		if err := self.Add(v); err != nil {
			mlog.Panicf("list.NewFromSlice: %w", err)
		}
	}
	return self
}

// empty returns uninitialized list with same configuration.
func (self *List[T]) empty(capacity int) *List[T] {
	return List[T]{Compare: self.Compare,
		Copy:            self.Copy,
		MaximumCapacity: self.MaximumCapacity}.Init(capacity)
}

func (self *List[T]) String() string {
	return fmt.Sprintf("List<%d entries/%d capacity>", self.GetCount(), self.GetCapacity())
}

func (self *List[T]) GetCount() int {
	return self.elements.GetAllocated()
}

func (self *List[T]) GetCapacity() int {
	return self.elements.GetPoolSize()
}

func (self *List[T]) IsEmpty() bool {
	return self.first == BackwardEnd
}

func (self *List[T]) copyValue(v T) T {
	if self.Copy == nil {
		return v
	}
	return self.Copy(v)
}

func (self *List[T]) compare(a, b T) int {
	if self.Compare == nil {
		mlog.Panicf("list.compare: %w", ErrNoComparator)
	}
	return self.Compare(a, b)
}

// Reserve grows the capacity to at least n. Nothing happens (and no
// element pointers are invalidated) if the capacity is already
// enough.
func (self *List[T]) Reserve(n int) error {
	if n <= self.GetCapacity() {
		return nil
	}
	return self.reallocate(n)
}

func (self *List[T]) reallocate(n int) error {
	old := self.GetCapacity()
	mlog.Printf2("list/list", "list.reallocate %d -> %d", old, n)
	if err := self.elements.Reallocate(n); err != nil {
		return err
	}
	if err := self.links.Reallocate(n); err != nil {
		self.elements.Reallocate(old)
		return err
	}
	return nil
}

// ensureRoom makes sure there is space for extra more elements,
// growing by ReallocationFactor if not.
func (self *List[T]) ensureRoom(extra int) error {
	required := self.GetCount() + extra
	if required <= self.GetCapacity() {
		return nil
	}
	n := util.IMax(required, int(float64(required)*ReallocationFactor))
	if self.MaximumCapacity > 0 && required <= self.MaximumCapacity {
		n = util.IMin(n, self.MaximumCapacity)
	}
	return self.reallocate(n)
}

// allocate takes a slot from both pools; the caller has ensured room.
func (self *List[T]) allocate(v T) Slot {
	s, err := self.elements.Allocate()
	if err != nil {
		mlog.Panicf("list.allocate elements: %w", err)
	}
	ls, err := self.links.Allocate()
	if err != nil {
		mlog.Panicf("list.allocate links: %w", err)
	}
	if s != ls {
		mlog.Panicf("list.allocate: element slot %d != link slot %d", s, ls)
	}
	*self.elements.Get(s) = v
	return s
}

func (self *List[T]) release(s Slot) {
	self.elements.Deallocate(s)
	self.links.Deallocate(s)
}

// linkBefore puts s in the logical order before at (which may be
// ForwardEnd).
func (self *List[T]) linkBefore(s, at Slot) {
	prev := BackwardEnd
	if at != ForwardEnd {
		prev = self.links.Get(at).prev
	} else if !self.IsEmpty() {
		prev = self.last
	}
	l := self.links.Get(s)
	l.prev = prev
	l.next = at
	if prev == BackwardEnd {
		self.first = s
	} else {
		self.links.Get(prev).next = s
	}
	if at == ForwardEnd {
		self.last = s
	} else {
		self.links.Get(at).prev = s
	}
}

// unlink removes s from the logical order and frees it, returning
// whatever followed it.
func (self *List[T]) unlink(s Slot) Slot {
	l := *self.links.Get(s)
	if l.prev == BackwardEnd {
		self.first = l.next
		if l.next == ForwardEnd {
			self.first = BackwardEnd
		}
	} else {
		self.links.Get(l.prev).next = l.next
	}
	if l.next == ForwardEnd {
		self.last = l.prev
		if l.prev == BackwardEnd {
			self.last = ForwardEnd
		}
	} else {
		self.links.Get(l.next).prev = l.prev
	}
	self.release(s)
	return l.next
}

// after returns the slot logically following s; s may be BackwardEnd.
func (self *List[T]) after(s Slot) Slot {
	switch s {
	case BackwardEnd:
		if self.IsEmpty() {
			return ForwardEnd
		}
		return self.first
	case ForwardEnd:
		return ForwardEnd
	}
	return self.links.Get(s).next
}

// before returns the slot logically preceding s; s may be ForwardEnd.
func (self *List[T]) before(s Slot) Slot {
	switch s {
	case ForwardEnd:
		if self.IsEmpty() {
			return BackwardEnd
		}
		return self.last
	case BackwardEnd:
		return BackwardEnd
	}
	return self.links.Get(s).prev
}

// slotAt walks to the index'th element from the closer end.
func (self *List[T]) slotAt(index int) Slot {
	count := self.GetCount()
	if index < 0 || index >= count {
		mlog.Panicf("list index %d (count %d): %w", index, count, ErrOutOfRange)
	}
	if index <= count/2 {
		s := self.first
		for ; index > 0; index-- {
			s = self.links.Get(s).next
		}
		return s
	}
	s := self.last
	for i := count - 1; i > index; i-- {
		s = self.links.Get(s).prev
	}
	return s
}

// Add appends a copy of v.
func (self *List[T]) Add(v T) error {
	if err := self.ensureRoom(1); err != nil {
		return err
	}
	self.linkBefore(self.allocate(self.copyValue(v)), ForwardEnd)
	return nil
}

// Insert puts a copy of v before the given position. Either end
// position appends.
func (self *List[T]) Insert(v T, position Position[T]) error {
	at := self.own(position)
	if isEnd(at.slot) {
		mlog.Printf2("list/list", "list.Insert at end -> append")
		return self.Add(v)
	}
	self.mustBeValid(at)
	if err := self.ensureRoom(1); err != nil {
		return err
	}
	self.linkBefore(self.allocate(self.copyValue(v)), at.slot)
	return nil
}

// InsertAt puts a copy of v so that it ends up at the given index.
// Indexes outside [0, count) append.
func (self *List[T]) InsertAt(v T, index int) error {
	if index < 0 || index >= self.GetCount() {
		mlog.Printf2("list/list", "list.InsertAt %d out of range -> append", index)
		return self.Add(v)
	}
	at := self.slotAt(index)
	if err := self.ensureRoom(1); err != nil {
		return err
	}
	self.linkBefore(self.allocate(self.copyValue(v)), at)
	return nil
}

// Remove removes the element at position, and returns iterator to
// the element that followed it (ForwardEnd if none). Removing from an
// empty list or at an end position does nothing and returns the
// ForwardEnd iterator.
func (self *List[T]) Remove(position Position[T]) Iterator[T] {
	at := self.own(position)
	if self.IsEmpty() || isEnd(at.slot) {
		mlog.Printf2("list/list", "list.Remove on empty list or end -> ignored")
		return self.iteratorAt(ForwardEnd)
	}
	self.mustBeValid(at)
	return self.iteratorAt(self.unlink(at.slot))
}

// RemoveAt removes the element at index; out of range does nothing.
func (self *List[T]) RemoveAt(index int) {
	if index < 0 || index >= self.GetCount() {
		mlog.Printf2("list/list", "list.RemoveAt %d out of range -> ignored", index)
		return
	}
	self.unlink(self.slotAt(index))
}

// Clear removes all elements at once. The capacity is kept.
func (self *List[T]) Clear() {
	self.elements.Clear()
	self.links.Clear()
	self.first = BackwardEnd
	self.last = ForwardEnd
}

// Get returns pointer to the element at index. It is invalidated by
// anything that grows the capacity.
func (self *List[T]) Get(index int) *T {
	return self.elements.Get(self.slotAt(index))
}

func (self *List[T]) GetValue(index int) T {
	return *self.Get(index)
}

func (self *List[T]) SetValue(index int, v T) {
	*self.Get(index) = self.copyValue(v)
}

func (self *List[T]) iteratorAt(s Slot) Iterator[T] {
	it := Iterator[T]{}
	it.list = self
	it.moveTo(s)
	return it
}

// GetFirst returns iterator to the first element, or ForwardEnd if
// the list is empty.
func (self *List[T]) GetFirst() Iterator[T] {
	return self.iteratorAt(self.after(BackwardEnd))
}

// GetLast returns iterator to the last element, or ForwardEnd if the
// list is empty.
func (self *List[T]) GetLast() Iterator[T] {
	return self.iteratorAt(self.last)
}

// GetIterator returns iterator to the index'th element.
func (self *List[T]) GetIterator(index int) Iterator[T] {
	return self.iteratorAt(self.slotAt(index))
}

func (self *List[T]) GetConstFirst() ConstIterator[T] {
	return self.GetFirst().ReadOnly()
}

func (self *List[T]) GetConstLast() ConstIterator[T] {
	return self.GetLast().ReadOnly()
}

// own checks that the position belongs to this list.
func (self *List[T]) own(position Position[T]) cursor[T] {
	c := position.position()
	if c.list != self {
		mlog.Panicf("list %p, iterator of %p: %w", self, c.list, ErrForeignIterator)
	}
	return c
}

// mustBeValid checks that the position refers to a live element.
func (self *List[T]) mustBeValid(c cursor[T]) {
	if isEnd(c.slot) {
		mlog.Panicf("list position: %w", ErrEndPosition)
	}
	if !c.IsValid() {
		mlog.Panicf("list position %d: %w", c.slot, ErrInvalidIterator)
	}
}

// Iterate calls cb with every value in logical order.
func (self *List[T]) Iterate(cb func(v T)) {
	for s := self.after(BackwardEnd); s != ForwardEnd; s = self.links.Get(s).next {
		cb(*self.elements.Get(s))
	}
}

// ToSlice returns the values in logical order.
func (self *List[T]) ToSlice() []T {
	r := make([]T, 0, self.GetCount())
	self.Iterate(func(v T) {
		r = append(r, v)
	})
	return r
}

// Contains returns true if some element compares equal to v.
func (self *List[T]) Contains(v T) bool {
	return self.IndexOf(v) != IndexNotFound
}

// IndexOf returns index of the first element equal to v, or
// IndexNotFound.
func (self *List[T]) IndexOf(v T) int {
	if self.IsEmpty() {
		return IndexNotFound
	}
	return self.IndexOfFrom(v, 0)
}

// IndexOfFrom is IndexOf that starts looking from index start, which
// has to be within [0, count).
func (self *List[T]) IndexOfFrom(v T, start int) int {
	count := self.GetCount()
	if start < 0 || start >= count {
		mlog.Panicf("list.IndexOfFrom %d (count %d): %w", start, count, ErrOutOfRange)
	}
	s := self.slotAt(start)
	for i := start; i < count; i++ {
		if self.compare(*self.elements.Get(s), v) == 0 {
			return i
		}
		s = self.links.Get(s).next
	}
	return IndexNotFound
}

// PositionOf returns iterator to the first element equal to v, or
// the ForwardEnd iterator.
func (self *List[T]) PositionOf(v T) Iterator[T] {
	return self.positionOf(v, self.after(BackwardEnd))
}

// PositionOfFrom is PositionOf starting from the given (non-end)
// position.
func (self *List[T]) PositionOfFrom(v T, start Position[T]) Iterator[T] {
	c := self.own(start)
	self.mustBeValid(c)
	return self.positionOf(v, c.slot)
}

func (self *List[T]) positionOf(v T, s Slot) Iterator[T] {
	for ; s != ForwardEnd; s = self.links.Get(s).next {
		if self.compare(*self.elements.Get(s), v) == 0 {
			break
		}
	}
	return self.iteratorAt(s)
}

// Equal returns true if both lists have the same number of elements
// and they compare equal pairwise in logical order.
func (self *List[T]) Equal(other *List[T]) bool {
	if self == other {
		return true
	}
	if self.GetCount() != other.GetCount() {
		return false
	}
	s, o := self.after(BackwardEnd), other.after(BackwardEnd)
	for s != ForwardEnd {
		if self.compare(*self.elements.Get(s), *other.elements.Get(o)) != 0 {
			return false
		}
		s = self.links.Get(s).next
		o = other.links.Get(o).next
	}
	return true
}

// Clone returns an independent copy with the same capacity and
// configuration. Slot layout is the same as in the original; every
// element is copied with Copy.
func (self *List[T]) Clone() *List[T] {
	clone := self.empty(self.GetCapacity())
	if self.IsEmpty() {
		return clone
	}
	// links are plain data; elements have to go through Copy
	if err := self.links.CopyTo(clone.links); err != nil {
		mlog.Panicf("list.Clone links: %w", err)
	}
	if err := self.elements.CopyLayoutTo(clone.elements); err != nil {
		mlog.Panicf("list.Clone elements: %w", err)
	}
	for s := self.first; s != ForwardEnd; s = self.links.Get(s).next {
		*clone.elements.Get(s) = self.copyValue(*self.elements.Get(s))
	}
	clone.first = self.first
	clone.last = self.last
	return clone
}

// Assign makes this list contain copies of the elements of src.
// Existing elements are overwritten in place, surplus ones removed,
// and missing ones appended. Configuration is not copied.
func (self *List[T]) Assign(src *List[T]) error {
	if self == src {
		return nil
	}
	if src.GetCapacity() > self.GetCapacity() {
		want := src.GetCapacity()
		if self.MaximumCapacity > 0 {
			want = util.IMax(src.GetCount(), util.IMin(want, self.MaximumCapacity))
		}
		if err := self.Reserve(want); err != nil {
			return err
		}
	}
	s, o := self.after(BackwardEnd), src.after(BackwardEnd)
	for s != ForwardEnd && o != ForwardEnd {
		*self.elements.Get(s) = self.copyValue(*src.elements.Get(o))
		s = self.links.Get(s).next
		o = src.links.Get(o).next
	}
	for s != ForwardEnd {
		s = self.unlink(s)
	}
	for ; o != ForwardEnd; o = src.links.Get(o).next {
		if err := self.Add(*src.elements.Get(o)); err != nil {
			return err
		}
	}
	return nil
}

// checkInvariants walks the list in both directions and ensures the
// links, ends and count agree.
func (self *List[T]) checkInvariants() error {
	count := self.GetCount()
	if count > self.GetCapacity() {
		return fmt.Errorf("count %d > capacity %d", count, self.GetCapacity())
	}
	if self.links.GetAllocated() != count {
		return fmt.Errorf("links %d != count %d", self.links.GetAllocated(), count)
	}
	if (self.first == BackwardEnd) != (self.last == ForwardEnd) || (count == 0) != (self.first == BackwardEnd) {
		return fmt.Errorf("inconsistent ends first:%d last:%d count:%d", self.first, self.last, count)
	}
	n := 0
	prev := BackwardEnd
	for s := self.after(BackwardEnd); s != ForwardEnd; s = self.links.Get(s).next {
		if !self.elements.IsAllocated(s) || !self.links.IsAllocated(s) {
			return fmt.Errorf("slot %d in order but not allocated", s)
		}
		if self.links.Get(s).prev != prev {
			return fmt.Errorf("slot %d prev %d != %d", s, self.links.Get(s).prev, prev)
		}
		prev = s
		n++
		if n > count {
			return fmt.Errorf("forward walk longer than count %d", count)
		}
	}
	if n != count || (count > 0 && prev != self.last) {
		return fmt.Errorf("forward walk %d ended at %d, count %d last %d", n, prev, count, self.last)
	}
	n = 0
	for s := self.before(ForwardEnd); s != BackwardEnd; s = self.links.Get(s).prev {
		n++
		if n > count {
			return fmt.Errorf("backward walk longer than count %d", count)
		}
	}
	if n != count {
		return fmt.Errorf("backward walk %d != count %d", n, count)
	}
	return nil
}
