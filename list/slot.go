/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Fri Mar 17 09:02:11 2023 mstenber
 * Last modified: Tue Mar 21 14:08:37 2023 mstenber
 * Edit time:     22 min
 *
 */

package list

import (
	"errors"
	"math"

	"github.com/QThund/Zunderbolt-sub017/pool"
)

// Slot is the physical position of an element; the same index is
// used in both the element and the link table.
type Slot = pool.Slot

const (
	// ForwardEnd is the position one past the last element.
	ForwardEnd Slot = math.MaxUint32

	// BackwardEnd is the position one before the first element.
	BackwardEnd Slot = math.MaxUint32 - 1
)

// DefaultCapacity is the number of slots reserved when no capacity
// is given.
const DefaultCapacity = 1

// ReallocationFactor is how much capacity grows when a full list has
// to take more elements. Must be >= 1.
const ReallocationFactor = 1.5

// IndexNotFound is returned by the index searches when nothing
// matches.
const IndexNotFound = -1

var (
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrNilSource       = errors.New("nil source")
	ErrOutOfRange      = errors.New("index out of range")
	ErrEndPosition     = errors.New("end position")
	ErrInvalidIterator = errors.New("invalid iterator")
	ErrForeignIterator = errors.New("iterator of another list")
	ErrInvalidRange    = errors.New("invalid range")
	ErrNoComparator    = errors.New("no comparator configured")
)

// link describes neighbors of a slot in logical order. At the ends
// prev is BackwardEnd and next is ForwardEnd.
type link struct {
	prev, next Slot
}

func isEnd(s Slot) bool {
	return s == ForwardEnd || s == BackwardEnd
}
