/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 27 12:33:17 2023 mstenber
 * Last modified: Mon Mar 27 12:47:52 2023 mstenber
 * Edit time:     9 min
 *
 */

package util

import (
	"testing"
	"time"

	"github.com/stvp/assert"
)

func TestParallelLimiter(t *testing.T) {
	t.Parallel()
	limiter := &ParallelLimiter{LimitTotal: 3}
	var running, peak, done AtomicInt
	wg := SimpleWaitGroup{Limiter: limiter}
	for i := 0; i < 20; i++ {
		wg.Go(func() {
			peak.SetMax(running.Add(1))
			time.Sleep(time.Millisecond)
			running.Add(-1)
			done.Add(1)
		})
	}
	wg.Wait()
	assert.Equal(t, done.Get(), 20)
	assert.True(t, peak.Get() <= 3, "peak ", peak.Get())
	assert.True(t, peak.Get() >= 1)
	assert.Equal(t, limiter.Running(), 0)

	ran := false
	limiter.Exclusive(func() {
		assert.Equal(t, limiter.Running(), 3)
		ran = true
	})
	assert.True(t, ran)
}

func TestParallelLimiterDefaults(t *testing.T) {
	t.Parallel()
	var limiter ParallelLimiter
	unlock := limiter.Limited2(1 << 20)
	assert.Equal(t, limiter.Running(), limiter.LimitTotal)
	unlock()
	assert.Equal(t, limiter.Running(), 0)

	var wg SimpleWaitGroup
	var ai AtomicInt
	for i := 0; i < 5; i++ {
		wg.Go(func() { ai.Add(1) })
	}
	wg.Wait()
	assert.Equal(t, ai.Get(), 5)
}
