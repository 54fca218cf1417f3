/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2017 Markus Stenberg
 *
 * Created:       Sat Dec 30 14:31:18 2017 mstenber
 * Last modified: Tue Mar 14 10:20:05 2023 mstenber
 * Edit time:     37 min
 *
 */

package mlog

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stvp/assert"
)

func withoutGids() func() {
	old := DumpGoroutineIDs
	DumpGoroutineIDs = false
	return func() {
		DumpGoroutineIDs = old
	}
}

func TestMlog(t *testing.T) {
	defer withoutGids()()
	add := func(pattern string, outputted bool) {
		t.Run(pattern, func(t *testing.T) {
			var b bytes.Buffer
			logger := log.New(&b, "", 0)
			defer SetLogger(logger)()
			defer SetPattern(pattern)()
			Printf("foo %s", "bar")
			assert.Equal(t, b.Len() != 0, outputted)
			if outputted {
				assert.Equal(t, b.String(), "foo bar\n")
			}
		})
	}
	add("", false)
	add("zzzglorb", false)
	add("mlog_test", true)
}

func TestPrintf2Key(t *testing.T) {
	defer withoutGids()()
	var b bytes.Buffer
	defer SetLogger(log.New(&b, "", 0))()
	defer SetPattern("^list/")()
	Printf2("list/list", "grow %d", 3)
	Printf2("pool/pool", "nope")
	assert.Equal(t, b.String(), "grow 3\n")
	assert.True(t, IsEnabled())
}

func TestMlogRecursion(t *testing.T) {
	defer withoutGids()()
	var b bytes.Buffer
	logger := log.New(&b, "", 0)
	Reset()
	defer SetLogger(logger)()
	defer SetPattern(".")()
	Printf("d0")
	func() {
		Printf("d1")
		func() {
			Printf("d2")
		}()
		Printf("D1")
	}()
	Printf("D0")
	assert.Equal(t, b.String(), "d0\n.d1\n..d2\n.D1\nD0\n")
}

var errTest = errors.New("test error")

func TestPanicf(t *testing.T) {
	defer SetPattern("")()
	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, errTest))
		assert.Equal(t, err.Error(), "bad 42: test error")
	}()
	Panicf("bad %d: %w", 42, errTest)
}

func BenchmarkMlogDisabled(b *testing.B) {
	defer SetPattern("")()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Printf("x")
	}
}

func BenchmarkMlogDisabled2(b *testing.B) {
	defer SetPattern("")()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Printf2("x", "y", 42)
	}
}

func BenchmarkMlogNotMatching(b *testing.B) {
	defer SetPattern("zzglorb")()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Printf("x")
	}
}
