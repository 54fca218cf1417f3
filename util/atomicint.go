/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Wed Mar 21 11:19:49 2018 mstenber
 * Last modified: Mon Mar 27 12:24:02 2023 mstenber
 * Edit time:     11 min
 *
 */

package util

import "sync/atomic"

// AtomicInt is an int counter safe for concurrent use.
type AtomicInt struct {
	v atomic.Int64
}

func (self *AtomicInt) Get() int {
	return int(self.v.Load())
}

func (self *AtomicInt) Add(value int) int {
	return int(self.v.Add(int64(value)))
}

func (self *AtomicInt) Set(value int) {
	self.v.Store(int64(value))
}

// SetMax sets the value to value if it is larger than the current one.
func (self *AtomicInt) SetMax(value int) {
	for {
		old := self.v.Load()
		if old >= int64(value) || self.v.CompareAndSwap(old, int64(value)) {
			return
		}
	}
}
