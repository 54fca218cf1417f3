/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2017 Markus Stenberg
 *
 * Created:       Fri Dec 29 09:04:44 2017 mstenber
 * Last modified: Wed Mar 15 16:14:02 2023 mstenber
 * Edit time:     3 min
 *
 */

package util

import (
	"testing"

	"github.com/stvp/assert"
)

func TestConcatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ConcatBytes([]byte("foo"), []byte("bar")), []byte("foobar"))
	assert.Equal(t, len(ConcatBytes()), 0)
}

func TestIMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, IMin(3, 1, 2), 1)
	assert.Equal(t, IMin(3), 3)
	assert.Equal(t, IMax(3, 7, 2), 7)
	assert.Equal(t, IMax(-1), -1)
	assert.Equal(t, IClamp(5, 0, 3), 3)
	assert.Equal(t, IClamp(-5, 0, 3), 0)
	assert.Equal(t, IClamp(2, 0, 3), 2)
}

func TestGetSeededRng(t *testing.T) {
	t.Setenv("SEED", "42")
	r1 := GetSeededRng()
	r2 := GetSeededRng()
	for i := 0; i < 10; i++ {
		assert.Equal(t, r1.Int(), r2.Int())
	}
}
