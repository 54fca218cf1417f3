/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Thu Jan 11 07:40:22 2018 mstenber
 * Last modified: Mon Mar 27 12:31:09 2023 mstenber
 * Edit time:     29 min
 *
 */

package util

import (
	"runtime"
	"sync"
)

const DefaultPerCPU = 1

// ParallelLimiter ensures that at most N things run at the same
// time. It is a counting semaphore: either defer Limited()(), or
// Go(cb).
type ParallelLimiter struct {
	// How many things are allowed per CPU (defaults to DefaultPerCPU)
	LimitPerCPU int

	// How many things are allowed in total; if zero, computed from
	// LimitPerCPU and number of CPUs
	LimitTotal int

	lock        MutexLocked
	cond        sync.Cond
	running     int
	initialized bool
}

func (self *ParallelLimiter) init() {
	if self.LimitTotal <= 0 {
		if self.LimitPerCPU <= 0 {
			self.LimitPerCPU = DefaultPerCPU
		}
		self.LimitTotal = runtime.NumCPU() * self.LimitPerCPU
	}
	self.cond.L = &self.lock
	self.initialized = true
}

// Limited2 reserves count execution slots, blocking until they are
// available. The returned function releases them.
func (self *ParallelLimiter) Limited2(count int) func() {
	defer self.lock.Locked()()
	if !self.initialized {
		self.init()
	}
	count = IMin(count, self.LimitTotal)
	for self.running+count > self.LimitTotal {
		self.cond.Wait()
	}
	self.running += count
	return func() {
		defer self.lock.Locked()()
		self.running -= count
		self.cond.Broadcast()
	}
}

func (self *ParallelLimiter) Limited() func() {
	return self.Limited2(1)
}

// Running returns the number of currently reserved slots.
func (self *ParallelLimiter) Running() int {
	defer self.lock.Locked()()
	return self.running
}

// Go runs cb in a new goroutine once a slot is available.
func (self *ParallelLimiter) Go(cb func()) {
	unlock := self.Limited()
	go func() {
		defer unlock()
		cb()
	}()
}

// Exclusive runs cb with every slot reserved.
func (self *ParallelLimiter) Exclusive(cb func()) {
	defer self.Limited2(self.limitTotal())()
	cb()
}

func (self *ParallelLimiter) limitTotal() int {
	defer self.lock.Locked()()
	if !self.initialized {
		self.init()
	}
	return self.LimitTotal
}
