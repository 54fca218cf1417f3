/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 27 11:20:04 2023 mstenber
 * Last modified: Tue Mar 28 11:02:51 2023 mstenber
 * Edit time:     37 min
 *
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/QThund/Zunderbolt-sub017/cache"
	"github.com/QThund/Zunderbolt-sub017/codec"
	"github.com/QThund/Zunderbolt-sub017/geometry"
	"github.com/QThund/Zunderbolt-sub017/list"
	"github.com/QThund/Zunderbolt-sub017/mlog"
	"github.com/QThund/Zunderbolt-sub017/scene"
	"github.com/QThund/Zunderbolt-sub017/util"
)

func timed(name string, cb func() string) {
	t0 := time.Now()
	result := cb()
	fmt.Printf("%-10s %12v %s\n", name, time.Since(t0), result)
}

func benchList(rng *rand.Rand, n, capacity int) {
	l := list.New[int]()
	if capacity > 0 {
		l = list.NewWithCapacity[int](capacity)
	}
	timed("add", func() string {
		for i := 0; i < n; i++ {
			if err := l.Add(rng.Intn(n)); err != nil {
				log.Panic(err)
			}
		}
		return l.String()
	})
	timed("insert", func() string {
		for i := 0; i < n/10; i++ {
			if err := l.InsertAt(rng.Intn(n), rng.Intn(l.GetCount()+1)); err != nil {
				log.Panic(err)
			}
		}
		return l.String()
	})
	timed("search", func() string {
		found := 0
		for i := 0; i < 100; i++ {
			if l.Contains(rng.Intn(n)) {
				found++
			}
		}
		return fmt.Sprintf("%d/100 found", found)
	})
	timed("remove", func() string {
		for it := l.GetFirst(); !it.IsEnd(); {
			if it.Value()%2 == 0 {
				it = l.Remove(it)
			} else {
				it.Next()
			}
		}
		return l.String()
	})
}

func randomScene(rng *rand.Rand, n int) *scene.Scene {
	pt := func() geometry.Vector2 {
		return geometry.Vector2{X: rng.Float64()*1000 - 500, Y: rng.Float64()*1000 - 500}
	}
	s := scene.Scene{}.Init(n)
	for i := 0; i < n; i++ {
		s.AddCircle(geometry.Circle{Center: pt(), Radius: rng.Float64() * 10})
		s.AddTriangle(geometry.Triangle{A: pt(), B: pt(), C: pt()})
		s.AddSegment(geometry.LineSegment2D{A: pt(), B: pt()})
	}
	return s
}

func benchScene(rng *rand.Rand, n, rays int) *scene.Scene {
	var s *scene.Scene
	timed("scene", func() string {
		s = randomScene(rng, n/10)
		return s.String()
	})
	batch := make([]geometry.Ray2D, rays)
	for i := range batch {
		angle := rng.Float64() * 2 * math.Pi
		batch[i] = geometry.NewRay2D(geometry.Vector2{}, geometry.Vector2{X: 1}.Rotate(angle))
	}
	timed("cast", func() string {
		hits := 0
		for _, ray := range batch {
			hits += len(s.Cast(ray))
		}
		return fmt.Sprintf("%d hits", hits)
	})
	timed("castall", func() string {
		bc := scene.BatchCaster{Scene: s}.Init()
		bc.CastAll(batch)
		return fmt.Sprintf("%d hits", bc.Hits())
	})
	return s
}

func benchCache(rng *rand.Rand, n, size int) {
	c := cache.Cart[int, int]{}.Init(size)
	timed("cache", func() string {
		var hits, misses int
		for i := 0; i < n; i++ {
			k := rng.Intn(size*3 + 1)
			if _, ok := c.Get(k); ok {
				hits++
			} else {
				c.Set(k, k)
				misses++
			}
		}
		return fmt.Sprintf("%v %d hits %d misses", c, hits, misses)
	})
}

// snapshotCodec is checksummed or, given a password, encrypted (and
// authenticated) compression.
func snapshotCodec(password, salt string, iter int) codec.Codec {
	var outer codec.Codec = &codec.ChecksumCodec{}
	if password != "" {
		outer = codec.EncryptingCodec{}.Init([]byte(password), []byte(salt), iter)
	}
	return codec.CodecChain{}.Init(outer, &codec.CompressingCodec{})
}

func writeSnapshot(s *scene.Scene, filename string, chain codec.Codec) {
	timed("snapshot", func() string {
		b, err := s.MarshalSnapshot(chain)
		if err != nil {
			log.Panic(err)
		}
		if err = os.WriteFile(filename, b, 0644); err != nil {
			log.Panic(err)
		}
		return fmt.Sprintf("%d bytes to %s", len(b), filename)
	})
	timed("verify", func() string {
		b, err := os.ReadFile(filename)
		if err != nil {
			log.Panic(err)
		}
		s2, err := scene.UnmarshalSnapshot(b, chain)
		if err != nil {
			log.Panic(err)
		}
		return s2.String()
	})
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n\n%s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	n := flag.Int("n", 100000, "Number of list elements")
	rays := flag.Int("rays", 1000, "Number of rays to cast")
	capacity := flag.Int("capacity", 0, "Initial list capacity (0 = grow from default)")
	cachesize := flag.Int("cache", 1000, "Number of entries in the cache")
	snapshot := flag.String("snapshot", "", "File to write the encoded scene to")
	password := flag.String("password", "", "Password to encrypt the snapshot with (default: checksum only)")
	salt := flag.String("salt", "salt", "Salt")
	iter := flag.Int("iter", codec.DefaultIterations, "Key derivation iterations")
	cpuprofile := flag.String("cpuprofile", "", "CPU profile file")
	memprofile := flag.String("memprofile", "", "Memory profile file")

	flag.Parse()

	if *n < 10 || *capacity < 0 || *cachesize < 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	mlog.Printf2("cmd/zbench/zbench", "n:%d rays:%d capacity:%d cache:%d", *n, *rays, *capacity, *cachesize)

	rng := util.GetSeededRng()
	benchList(rng, *n, *capacity)
	s := benchScene(rng, *n, *rays)
	benchCache(rng, *n, *cachesize)
	if *snapshot != "" {
		writeSnapshot(s, *snapshot, snapshotCodec(*password, *salt, *iter))
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
