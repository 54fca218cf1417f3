/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Thu Jan 25 13:30:51 2018 mstenber
 * Last modified: Mon Mar 27 12:20:14 2023 mstenber
 * Edit time:     4 min
 *
 */

package util

import "sync"

// SimpleWaitGroup is sync.WaitGroup that also starts the goroutines;
// optionally through a ParallelLimiter.
type SimpleWaitGroup struct {
	sync.WaitGroup

	Limiter *ParallelLimiter
}

func (self *SimpleWaitGroup) Go(cb func()) {
	self.Add(1)
	wrapped := func() {
		defer self.Done()
		cb()
	}
	if self.Limiter != nil {
		self.Limiter.Go(wrapped)
		return
	}
	go wrapped()
}
