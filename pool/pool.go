/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Thu Mar 16 10:02:45 2023 mstenber
 * Last modified: Mon Mar 20 11:31:08 2023 mstenber
 * Edit time:     96 min
 *
 */

// pool provides fixed-slot arenas. A Pool hands out slots of a single
// type from one contiguous backing slice, and remembers freed slots
// so that they are reused before any never-used slot is touched. The
// pool never grows on its own; the owner decides when to Reallocate.
//
// Slots are addressed by index, so growing the backing slice keeps
// every slot number valid even though pointers obtained with Get are
// not.
//
// Pools are not threadsafe.
package pool

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/QThund/Zunderbolt-sub017/mlog"
)

// Slot is the index of a single slot within a Pool.
type Slot uint32

// MaxSlots is the largest number of slots a pool may have. The top of
// the Slot range is left for users that need sentinel values.
const MaxSlots = math.MaxUint32 - 2

var (
	// ErrFull is returned by Allocate when every slot is in use.
	ErrFull = errors.New("pool is full")

	// ErrExhausted is returned by Reallocate when the requested
	// size is above MaximumSlots (or MaxSlots).
	ErrExhausted = errors.New("pool size limit reached")

	// ErrTooSmall is returned by CopyTo / CopyLayoutTo when the
	// target pool cannot hold the source pool.
	ErrTooSmall = errors.New("target pool too small")

	// ErrNotAllocated is the panic cause when a free or
	// nonexistent slot is accessed or freed.
	ErrNotAllocated = errors.New("slot not allocated")

	// ErrShrink is the panic cause when Reallocate would drop
	// slots that have been handed out.
	ErrShrink = errors.New("reallocation would drop used slots")
)

type Pool[T any] struct {
	// MaximumSlots limits how large Reallocate may make the pool;
	// zero means MaxSlots.
	MaximumSlots int

	slots       []T
	used        []bool
	generations []uint32

	// freed slots, most recently freed last
	free []Slot

	// next is the first slot that has never been handed out since
	// the last Clear
	next Slot

	allocated int
}

// Init reserves the given number of slots.
func (self Pool[T]) Init(slots int) *Pool[T] {
	if slots < 0 || slots > self.limit() {
		mlog.Panicf("pool.Init %d: %w", slots, ErrExhausted)
	}
	self.slots = make([]T, slots)
	self.used = make([]bool, slots)
	self.generations = make([]uint32, slots)
	return &self
}

func (self *Pool[T]) limit() int {
	if self.MaximumSlots > 0 && self.MaximumSlots < MaxSlots {
		return self.MaximumSlots
	}
	return MaxSlots
}

func (self *Pool[T]) String() string {
	return fmt.Sprintf("Pool<%d/%d slots, %d free>", self.allocated, len(self.slots), len(self.free))
}

// Allocate returns a slot for use. Most recently freed slots are
// returned first.
func (self *Pool[T]) Allocate() (Slot, error) {
	var s Slot
	if n := len(self.free); n > 0 {
		s = self.free[n-1]
		self.free = self.free[:n-1]
	} else if int(self.next) < len(self.slots) {
		s = self.next
		self.next++
	} else {
		return 0, ErrFull
	}
	self.used[s] = true
	self.allocated++
	return s, nil
}

// Deallocate returns the slot to the pool. The stored value is
// zeroed so that the pool does not keep garbage alive.
func (self *Pool[T]) Deallocate(s Slot) {
	self.mustBeAllocated(s)
	var zero T
	self.slots[s] = zero
	self.used[s] = false
	self.generations[s]++
	self.free = append(self.free, s)
	self.allocated--
}

func (self *Pool[T]) mustBeAllocated(s Slot) {
	if s >= self.next || !self.used[s] {
		mlog.Panicf("pool slot %d: %w", s, ErrNotAllocated)
	}
}

// Get returns pointer to the value stored in the slot. The pointer
// is invalidated by Reallocate.
func (self *Pool[T]) Get(s Slot) *T {
	self.mustBeAllocated(s)
	return &self.slots[s]
}

// IsAllocated returns true if the slot is currently handed out.
func (self *Pool[T]) IsAllocated(s Slot) bool {
	return s < self.next && self.used[s]
}

// GetGeneration returns counter that changes every time the slot is
// freed. It can be used to detect reuse of a slot.
func (self *Pool[T]) GetGeneration(s Slot) uint32 {
	if int(s) >= len(self.generations) {
		return 0
	}
	return self.generations[s]
}

// GetPoolSize returns the number of slots in the pool.
func (self *Pool[T]) GetPoolSize() int {
	return len(self.slots)
}

// GetAllocated returns the number of slots in use.
func (self *Pool[T]) GetAllocated() int {
	return self.allocated
}

// SlotSize returns the size of single slot in bytes.
func (self *Pool[T]) SlotSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func (self *Pool[T]) GetPoolBytes() uintptr {
	return uintptr(len(self.slots)) * self.SlotSize()
}

func (self *Pool[T]) GetAllocatedBytes() uintptr {
	return uintptr(self.allocated) * self.SlotSize()
}

// Reallocate resizes the pool to the given number of slots. Slot
// numbers and their contents are preserved; pointers from Get are
// not. On error the pool is left untouched.
func (self *Pool[T]) Reallocate(slots int) error {
	if slots < int(self.next) {
		mlog.Panicf("pool.Reallocate %d < %d: %w", slots, self.next, ErrShrink)
	}
	if slots > self.limit() {
		mlog.Printf2("pool/pool", "pool.Reallocate %d over limit %d", slots, self.limit())
		return ErrExhausted
	}
	if slots == len(self.slots) {
		return nil
	}
	mlog.Printf2("pool/pool", "pool.Reallocate %d -> %d", len(self.slots), slots)
	nslots := make([]T, slots)
	copy(nslots, self.slots)
	nused := make([]bool, slots)
	copy(nused, self.used)
	ngenerations := make([]uint32, slots)
	copy(ngenerations, self.generations)
	self.slots = nslots
	self.used = nused
	self.generations = ngenerations
	return nil
}

// CopyTo copies both the contents and the bookkeeping of this pool to
// other, which must have at least as many slots. Whatever other had
// allocated is discarded.
func (self *Pool[T]) CopyTo(other *Pool[T]) error {
	if err := self.CopyLayoutTo(other); err != nil {
		return err
	}
	copy(other.slots, self.slots[:self.next])
	return nil
}

// CopyLayoutTo copies only the bookkeeping (which slots are in use,
// free order) to other; the values in other are all zero afterwards.
// This is for contents that must not be copied bit by bit.
func (self *Pool[T]) CopyLayoutTo(other *Pool[T]) error {
	if len(other.slots) < len(self.slots) {
		return ErrTooSmall
	}
	other.Clear()
	copy(other.used, self.used)
	other.free = append(other.free[:0], self.free...)
	other.next = self.next
	other.allocated = self.allocated
	return nil
}

// Clear releases every slot at once.
func (self *Pool[T]) Clear() {
	var zero T
	for i := Slot(0); i < self.next; i++ {
		if self.used[i] {
			self.used[i] = false
			self.generations[i]++
		}
		self.slots[i] = zero
	}
	self.free = self.free[:0]
	self.next = 0
	self.allocated = 0
}
