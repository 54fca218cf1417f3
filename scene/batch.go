/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 27 12:50:12 2023 mstenber
 * Last modified: Mon Mar 27 13:14:38 2023 mstenber
 * Edit time:     19 min
 *
 */

package scene

import (
	"github.com/QThund/Zunderbolt-sub017/geometry"
	"github.com/QThund/Zunderbolt-sub017/mlog"
	"github.com/QThund/Zunderbolt-sub017/util"
)

// BatchCaster casts many rays against a scene in parallel. The scene
// must not be modified while CastAll is running; lists are not
// threadsafe but concurrent reads are fine.
type BatchCaster struct {
	Scene *Scene

	// RaysPerJob is the number of rays handled by one goroutine
	// (default DefaultRaysPerJob)
	RaysPerJob int

	// Limiter bounds the number of concurrent jobs; defaults to one
	// per CPU
	Limiter *util.ParallelLimiter

	hits *util.AtomicInt
}

const DefaultRaysPerJob = 64

func (self BatchCaster) Init() *BatchCaster {
	if self.RaysPerJob <= 0 {
		self.RaysPerJob = DefaultRaysPerJob
	}
	if self.Limiter == nil {
		self.Limiter = &util.ParallelLimiter{}
	}
	self.hits = &util.AtomicInt{}
	return &self
}

// Hits returns the total number of hits produced so far.
func (self *BatchCaster) Hits() int {
	return self.hits.Get()
}

// CastAll returns Cast(rays[i]) in result[i].
func (self *BatchCaster) CastAll(rays []geometry.Ray2D) [][]Hit {
	result := make([][]Hit, len(rays))
	wg := util.SimpleWaitGroup{Limiter: self.Limiter}
	for start := 0; start < len(rays); start += self.RaysPerJob {
		start := start
		end := util.IMin(start+self.RaysPerJob, len(rays))
		wg.Go(func() {
			n := 0
			for i := start; i < end; i++ {
				result[i] = self.Scene.Cast(rays[i])
				n += len(result[i])
			}
			self.hits.Add(n)
		})
	}
	wg.Wait()
	mlog.Printf2("scene/batch", "CastAll %d rays: %d hits total", len(rays), self.hits.Get())
	return result
}
