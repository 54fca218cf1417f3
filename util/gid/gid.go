/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Thu Jan  4 12:59:55 2018 mstenber
 * Last modified: Tue Mar 14 09:41:12 2023 mstenber
 * Edit time:     6 min
 *
 */

// gid extracts the current goroutine id. It is used only for
// decorating debug output; nothing should ever depend on the value.
package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

var stackPrefix = []byte("goroutine ")

// GetGoroutineID parses the id from the first line of the goroutine
// stack dump ("goroutine 123 [running]:"). Returns 0 if the format is
// not what we expect.
//
// Idea from http://blog.sgmansfield.com/2015/12/goroutine-ids/
func GetGoroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	if !bytes.HasPrefix(b, stackPrefix) {
		return 0
	}
	b = b[len(stackPrefix):]
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
