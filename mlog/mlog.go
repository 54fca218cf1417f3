/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2017 Markus Stenberg
 *
 * Created:       Sat Dec 30 13:41:33 2017 mstenber
 * Last modified: Tue Mar 14 10:02:51 2023 mstenber
 * Edit time:     131 min
 *
 */

// mlog is maybe-log. It is a small wrapper around the standard 'log'
// package with two additions:
//
// - environment variable (MLOG) and 'flag' (-mlog) based choice of
// what to print; what is not printed costs next to nothing (by
// default, everything is off)
//
// - call stack depth is used to indent the output, so nested calls
// are easy to follow
//
// The containers in this module log their slow paths (growth,
// fallbacks, ignored no-op calls) with Printf2, and signal contract
// violations with Panicf.
package mlog

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/QThund/Zunderbolt-sub017/util/gid"
)

var logMode = log.Ltime | log.Lmicroseconds
var logger = log.New(os.Stderr, "", logMode)

const (
	StateUninitialized int32 = iota
	StateInitializing
	StateDisabled
	StateEnabled
)

// status may be read by anyone, with atomic access
var status int32 = StateUninitialized

var mutex sync.Mutex

// Everything below must be used only with mutex held
var flagPattern *string
var pattern string
var patternRegexp *regexp.Regexp
var key2Debug map[string]bool
var minDepth int
var callers []uintptr

const maxDepth = 100

// DumpGoroutineIDs controls whether the output lines are prefixed
// with the id of the logging goroutine.
var DumpGoroutineIDs = true

func init() {
	flagPattern = flag.String("mlog", "", "Enable logging based on the given file/key regular expression")
	Reset()
}

// Reset returns the module to its initial state. The next log call
// re-reads the environment (and flag) and behaves as if it was the
// first call.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	atomic.StoreInt32(&status, StateUninitialized)
	minDepth = maxDepth
	callers = make([]uintptr, maxDepth)
}

// IsEnabled can be used to check if mlog is in use at all before
// doing something expensive (such as full structural sanity checks).
func IsEnabled() bool {
	st := atomic.LoadInt32(&status)
	if st == StateUninitialized {
		mutex.Lock()
		initialize()
		mutex.Unlock()
		st = atomic.LoadInt32(&status)
	}
	return st == StateEnabled
}

// SetLogger overrides the logger used for output. The returned undo
// function restores the previous logger.
func SetLogger(l *log.Logger) (undo func()) {
	mutex.Lock()
	defer mutex.Unlock()
	oldLogger := logger
	logger = l
	return func() {
		mutex.Lock()
		defer mutex.Unlock()
		logger = oldLogger
	}
}

// SetPattern sets the pattern by hand, overriding the environment
// variable and flag. The returned undo function restores the
// previous pattern.
func SetPattern(p string) (undo func()) {
	mutex.Lock()
	defer mutex.Unlock()
	oldPattern := pattern
	initializeWithPattern(p)
	return func() {
		mutex.Lock()
		defer mutex.Unlock()
		initializeWithPattern(oldPattern)
	}
}

func initializeWithPattern(p string) {
	pattern = p
	if p == "" {
		atomic.StoreInt32(&status, StateDisabled)
		return
	}
	patternRegexp = regexp.MustCompile(p)
	key2Debug = make(map[string]bool)
	minDepth = maxDepth
	atomic.StoreInt32(&status, StateEnabled)
}

func initialize() {
	if !atomic.CompareAndSwapInt32(&status, StateUninitialized, StateInitializing) {
		return
	}
	p := os.Getenv("MLOG")
	if *flagPattern != "" {
		p = *flagPattern
	}
	initializeWithPattern(p)
}

// Printf is drop-in replacement of log.Printf. The caller's file name
// is used as the key matched against the pattern, which costs a
// runtime.Caller() call whenever mlog is enabled at all.
func Printf(format string, args ...interface{}) {
	if atomic.LoadInt32(&status) == StateDisabled {
		return
	}
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return
	}
	Printf2(file, format, args...)
}

// Printf2 is the cheap variant of Printf; the key (typically
// "package/file") is given explicitly.
func Printf2(key string, format string, args ...interface{}) {
	st := atomic.LoadInt32(&status)
	if st == StateDisabled {
		return
	}
	mutex.Lock()
	defer mutex.Unlock()
	if st < StateDisabled {
		initialize()
		if atomic.LoadInt32(&status) != StateEnabled {
			return
		}
	}
	if !keyEnabled(key) {
		return
	}
	depth := runtime.Callers(1, callers)
	if depth < minDepth {
		minDepth = depth
	}
	depth -= minDepth
	if depth > 0 {
		format = strings.Repeat(".", depth) + format
	}
	if DumpGoroutineIDs {
		format = fmt.Sprintf("%8d %s", gid.GetGoroutineID(), format)
	}
	logger.Printf(format, args...)
}

func keyEnabled(key string) bool {
	debug, ok := key2Debug[key]
	if !ok {
		debug = patternRegexp.MatchString(key)
		key2Debug[key] = debug
	}
	return debug
}

// Panicf formats the message as fmt.Errorf does (so %w wraps), logs
// it if mlog is enabled, and panics with the resulting error.
func Panicf(format string, args ...interface{}) {
	err := fmt.Errorf(format, args...)
	if atomic.LoadInt32(&status) != StateDisabled {
		_, file, _, ok := runtime.Caller(1)
		if ok {
			Printf2(file, "panic: %v", err)
		}
	}
	panic(err)
}
